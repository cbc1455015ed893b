// Copyright 2026 The Routed Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package routed

import (
	"fmt"
	"strconv"
)

// ParamInt parses a path parameter as an int.
func (c *Context) ParamInt(name string) (int, error) {
	s := c.Param(name)
	if s == "" {
		return 0, fmt.Errorf("%w: %s", ErrParamMissing, name)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrParamInvalid, name, err)
	}
	return v, nil
}

// ParamInt64 parses a path parameter as an int64.
func (c *Context) ParamInt64(name string) (int64, error) {
	s := c.Param(name)
	if s == "" {
		return 0, fmt.Errorf("%w: %s", ErrParamMissing, name)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrParamInvalid, name, err)
	}
	return v, nil
}

// ParamUint64 parses a path parameter as a uint64.
func (c *Context) ParamUint64(name string) (uint64, error) {
	s := c.Param(name)
	if s == "" {
		return 0, fmt.Errorf("%w: %s", ErrParamMissing, name)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrParamInvalid, name, err)
	}
	return v, nil
}

// ParamUUID returns a path parameter after validating it is a canonical
// UUID, or an error.
func (c *Context) ParamUUID(name string) (string, error) {
	s := c.Param(name)
	if s == "" {
		return "", fmt.Errorf("%w: %s", ErrParamMissing, name)
	}
	if !uuidPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %s", ErrParamInvalid, name)
	}
	return s, nil
}

// MustGetParam returns a path parameter as a string, panicking with
// ErrParamMissing if it was not extracted by route matching (§4.5,
// literal scenario 8: the dispatcher maps this to a 500 unless the
// handler recovers it itself).
func (c *Context) MustGetParam(name string) string {
	v, ok := c.Request.params[name]
	if !ok {
		panic(requestPanic{fmt.Errorf("%w: %s", ErrParamMissing, name)})
	}
	return v
}

// MustParamInt is the typed counterpart of MustGetParam.
func (c *Context) MustParamInt(name string) int {
	v, err := c.ParamInt(name)
	if err != nil {
		panic(requestPanic{err})
	}
	return v
}

// QueryInt parses a query parameter as an int, returning def if the
// parameter is absent or malformed.
func (c *Context) QueryInt(name string, def int) int {
	s := c.QueryParam(name)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// QueryBool parses a query parameter as a bool, returning def if the
// parameter is absent or malformed.
func (c *Context) QueryBool(name string, def bool) bool {
	s := c.QueryParam(name)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}

// QueryDefault returns a query parameter's first value, or def if absent.
func (c *Context) QueryDefault(name, def string) string {
	if vs, ok := c.queryValues()[name]; ok && len(vs) > 0 {
		return vs[0]
	}
	return def
}

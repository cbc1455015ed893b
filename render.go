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
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Status sets the response status code, failing if headers are already
// flushed (§4.5).
func (c *Context) Status(code int) error {
	return c.Response.Status(code)
}

// Header sets a response header.
func (c *Context) Header(key, value string) {
	c.Response.Header().Set(key, value)
}

// Write appends raw bytes to the response body, flushing headers on the
// first call (§4.5).
func (c *Context) Write(p []byte) (int, error) {
	return c.Response.Write(p)
}

// String renders a plain-text response with the given status.
func (c *Context) String(status int, text string) error {
	if c.Response.Header().Get("Content-Type") == "" {
		c.Header("Content-Type", "text/plain; charset=utf-8")
	}
	if err := c.Response.Status(status); err != nil {
		return err
	}
	_, err := c.Response.Write([]byte(text))
	return err
}

// JSON renders obj as a JSON response with the given status.
func (c *Context) JSON(status int, obj any) error {
	c.Header("Content-Type", "application/json; charset=utf-8")
	if err := c.Response.Status(status); err != nil {
		return err
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("routed: encode json response: %w", err)
	}
	_, err = c.Response.Write(data)
	return err
}

// Redirect sets Location and the given status (§4.5). status defaults to
// 302 when 0 is passed; 301 is the conventional choice for a trailing
// slash redirect on GET/HEAD, 307/308 preserve method and body.
func (c *Context) Redirect(status int, location string) error {
	if status == 0 {
		status = http.StatusFound
	}
	c.Header("Location", location)
	return c.Response.Status(status)
}

// QueryParam returns the first value of a query parameter, or "" if absent.
func (c *Context) QueryParam(name string) string {
	return c.queryValues().Get(name)
}

// QueryAll returns every value of a query parameter.
func (c *Context) QueryAll(name string) []string {
	return c.queryValues()[name]
}

func (c *Context) queryValues() url.Values {
	if !c.queryOnce {
		c.query = c.Request.raw.URL.Query()
		c.queryOnce = true
	}
	return c.query
}

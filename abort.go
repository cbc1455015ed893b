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

import "strconv"

// AbortError is the single documented "abort to status X" exception
// pathway (§9 Design Notes: "Exceptions for HTTP redirects"). Panicking
// with it from a handler or middleware is caught by the dispatcher before
// falling through to the generic 500 path.
type AbortError struct {
	Status int
	Body   []byte
}

func (a *AbortError) Error() string {
	return "routed: aborted with status " + strconv.Itoa(a.Status)
}

// AbortWithStatus panics with an *AbortError carrying status and body,
// short-circuiting the remainder of the chain. Distinct from Abort/
// IsAborted (which only prevent further Next() delegation): this
// unwinds the Go call stack immediately, for the rare case of aborting
// from deep inside nested helper calls rather than at a Next() boundary.
func (c *Context) AbortWithStatus(status int, body []byte) {
	panic(&AbortError{Status: status, Body: body})
}

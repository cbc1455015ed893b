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
	"net/http"
	"time"
)

// acquireContext pulls a Context from the pool (or allocates one) and
// wires it up for a single request (§4.8 step 3, §9 Design Notes pooling).
func (e *Engine) acquireContext(w http.ResponseWriter, req *http.Request, params map[string]string) *Context {
	c := e.ctxPool.Get().(*Context)

	c.Request = &Request{raw: req, params: params, maxBodySize: e.config.maxRequestSize}
	c.Response = newResponse(w)
	c.engine = e
	c.index = -1
	c.aborted = false
	c.id = e.newRequestID()
	c.startedAt = time.Now()
	return c
}

// releaseContext resets c and returns it to the pool. Must only be called
// once the response has been flushed/closed and nothing else retains c.
func (e *Engine) releaseContext(c *Context) {
	c.reset()
	c.index = -1
	e.ctxPool.Put(c)
}

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
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ServeHTTP implements the full dispatch loop of §4.8: route lookup,
// redirect/405/404 short-circuits, context construction, chain execution
// with panic recovery, and body drain/response flush.
func (e *Engine) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if e.state != StateBuilt && e.state != StateServing {
		http.Error(w, "engine not built", http.StatusInternalServerError)
		return
	}

	outcome := e.routeTable.resolve(req.Method, req.URL.Path, e.config.redirectTrailingSlash, e.config.handleMethodNotAllowed)

	switch outcome.Kind {
	case OutcomeRedirect:
		location := outcome.Location
		if req.URL.RawQuery != "" {
			location += "?" + req.URL.RawQuery
		}
		w.Header().Set("Location", location)
		w.WriteHeader(outcome.Status)
		return
	case OutcomeMethodNotAllowed:
		w.Header().Set("Allow", strings.Join(outcome.Allow, ", "))
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	case OutcomeNotFound:
		http.NotFound(w, req)
		return
	}

	route := outcome.Route
	c := e.acquireContext(w, req, outcome.Params)
	c.routeName = route.Name
	c.routePattern = route.pattern.raw
	c.logger = requestLogger(e.logger, req.Method, route.pattern.raw, c.id)

	e.notifyRequestStart(c)

	e.dispatch(c, route)

	if !c.Request.BodyConsumed() && req.Body != nil {
		io.Copy(io.Discard, io.LimitReader(req.Body, 1<<20))
	}
	c.Response.Close()
	for _, err := range c.Errors() {
		e.notifyObservers(c, err)
		e.notifyRecorderError(c, err)
	}

	e.notifyRequestEnd(c, c.Response.StatusCode(), time.Since(c.startedAt))

	e.releaseContext(c)
}

// dispatch executes the route's pre-folded chain, recovering both
// RequestError-class panics (requestPanic) and *AbortError from arbitrary
// handler panics (§7 HandlerError, §9 "Exceptions for HTTP redirects").
func (e *Engine) dispatch(c *Context, route *RegisteredRoute) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch v := r.(type) {
		case requestPanic:
			e.notifyObservers(c, v.err)
			e.notifyRecorderError(c, v.err)
			if !c.Response.Flushed() {
				c.Response.Status(http.StatusInternalServerError)
				c.Response.Write(nil)
			}
		case *AbortError:
			if !c.Response.Flushed() {
				c.Response.Status(v.Status)
				c.Response.Write(v.Body)
			}
		case error:
			e.notifyObservers(c, v)
			e.notifyRecorderError(c, v)
			if !c.Response.Flushed() {
				if errors.Is(v, ErrNotFound) {
					c.Response.Status(http.StatusNotFound)
				} else {
					c.Response.Status(http.StatusInternalServerError)
				}
				c.Response.Write(nil)
			}
		default:
			err := fmt.Errorf("routed: handler panic: %v", v)
			e.notifyObservers(c, err)
			e.notifyRecorderError(c, err)
			if !c.Response.Flushed() {
				c.Response.Status(http.StatusInternalServerError)
				c.Response.Write(nil)
			}
		}
	}()

	route.chain(c)
}

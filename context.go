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
	"log/slog"
	"net/url"
	"time"
)

// Context is the per-request façade over the request and response. It is
// created by the dispatcher for each incoming request and returned to a
// pool once the response has been flushed (§3, §4.5).
//
// A Context is bound to the goroutine handling its request; it must not
// be retained or read from another goroutine after the handler returns.
type Context struct {
	Request  *Request
	Response *Response

	engine *Engine

	handlers []HandlerFunc
	index    int
	// nextCalled tracks, per position in handlers, whether that middleware
	// has already invoked Next(); a second invocation from the same frame
	// is a RequestError (§4.4, §7) rather than silently re-entering the
	// chain at the wrong position.
	nextCalled []bool
	aborted    bool

	routeName    string
	routePattern string

	query     url.Values
	queryOnce bool

	attributes map[string]any

	errs []error

	id        string
	startedAt time.Time

	overrideIP    string
	hasOverrideIP bool

	logger *slog.Logger
}

// ensureNextCalledCap grows c.nextCalled to at least n entries, all false.
func ensureNextCalledCap(c *Context, n int) {
	if cap(c.nextCalled) < n {
		c.nextCalled = make([]bool, n)
		return
	}
	c.nextCalled = c.nextCalled[:n]
	for i := range c.nextCalled {
		c.nextCalled[i] = false
	}
}

// Next invokes the remainder of the middleware chain. A middleware calls
// Next exactly once to delegate and optionally post-process after it
// returns; not calling Next at all short-circuits the chain, because no
// deeper handler is ever invoked for this request (§4.4). Calling Next
// more than once from the same middleware panics with ErrDoubleNext,
// recovered by the dispatcher into a 500 (§7 RequestError).
func (c *Context) Next() {
	if c.aborted {
		return
	}

	cur := c.index
	if cur >= 0 && cur < len(c.nextCalled) && c.nextCalled[cur] {
		panic(requestPanic{ErrDoubleNext})
	}
	if cur >= 0 && cur < len(c.nextCalled) {
		c.nextCalled[cur] = true
	}

	next := cur + 1
	if next >= len(c.handlers) {
		return
	}

	c.index = next
	c.handlers[next](c)
	c.index = cur
}

// Abort prevents any further handler in the chain from running, even if
// an ancestor middleware's own code would otherwise call Next again. Most
// middleware achieve short-circuiting simply by not calling Next; Abort
// is for the rarer case of deciding to stop after already being several
// frames deep.
func (c *Context) Abort() {
	c.aborted = true
}

// IsAborted reports whether Abort has been called for this request.
func (c *Context) IsAborted() bool {
	return c.aborted
}

// requestPanic wraps a RequestError-class sentinel so the dispatcher's
// recover can distinguish it from an arbitrary handler panic.
type requestPanic struct{ err error }

// Param returns the raw string value of a path parameter, or "" if absent.
func (c *Context) Param(name string) string {
	return c.Request.params[name]
}

// Set stores an arbitrary value in the per-request attribute bag.
func (c *Context) Set(key string, value any) {
	if c.attributes == nil {
		c.attributes = make(map[string]any)
	}
	c.attributes[key] = value
}

// Get retrieves a value previously stored with Set.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.attributes[key]
	return v, ok
}

// AddError appends err to the request's error list, observed by the
// engine's error-observer registry at the end of dispatch (§4.5, §7).
func (c *Context) AddError(err error) {
	if err == nil {
		return
	}
	c.errs = append(c.errs, err)
}

// Errors returns every error collected so far during this request.
func (c *Context) Errors() []error {
	return c.errs
}

// ID returns the request identifier (secure variant if the engine was
// configured with features.enableSecureRequestIds).
func (c *Context) ID() string { return c.id }

// StartedAt returns the time dispatch began for this request.
func (c *Context) StartedAt() time.Time { return c.startedAt }

// RouteName returns the matched route's dotted name, or "" if unnamed.
func (c *Context) RouteName() string { return c.routeName }

// RoutePattern returns the matched route's path pattern text (e.g.
// "/users/{id:int}").
func (c *Context) RoutePattern() string { return c.routePattern }

// Logger returns a request-scoped structured logger carrying method,
// route, and request-ID fields, derived from the engine's base logger.
func (c *Context) Logger() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// OverrideClientIP forces subsequent ClientIP reads to return ip,
// bypassing trusted-proxy resolution (§4.7 "Override").
func (c *Context) OverrideClientIP(ip string) {
	c.overrideIP = ip
	c.hasOverrideIP = true
}

// ClientIP resolves the effective client IP under the engine's
// trusted-proxy / trusted-platform policy (§4.7), or returns an explicit
// override set via OverrideClientIP.
func (c *Context) ClientIP() string {
	if c.hasOverrideIP {
		return c.overrideIP
	}
	if c.engine == nil {
		return c.Request.RemoteIP()
	}
	return c.engine.resolveClientIP(c.Request)
}

// reset clears per-request state so the Context can be returned to the
// pool and reused by a future request.
func (c *Context) reset() {
	c.Request = nil
	c.Response = nil
	c.engine = nil
	c.handlers = c.handlers[:0]
	c.index = -1
	c.nextCalled = c.nextCalled[:0]
	c.aborted = false
	c.routeName = ""
	c.routePattern = ""
	c.query = nil
	c.queryOnce = false
	c.attributes = nil
	c.errs = nil
	c.id = ""
	c.startedAt = time.Time{}
	c.overrideIP = ""
	c.hasOverrideIP = false
	c.logger = nil
}

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

import "fmt"

// HandlerFunc is the terminal function invoked for a matched route.
//
//	r.GET("/ping", func(c *routed.Context) {
//	    c.String(http.StatusOK, "pong")
//	})
type HandlerFunc func(c *Context)

// Middleware is anything that can sit in a route's middleware chain: either
// a MiddlewareFunc or a named reference produced by MiddlewareRef. The
// unexported marker method keeps the set closed so Use(...) can accept
// either without an empty interface.
type Middleware interface {
	middleware()
}

// MiddlewareFunc wraps a handler or another middleware. A middleware calls
// c.Next() to delegate to the remainder of the chain; code after the call
// runs during the chain's unwind (post-processing). Not calling c.Next()
// short-circuits the chain and the middleware is responsible for the
// response. Calling c.Next() more than once is a RequestError.
//
//	func Logger() routed.MiddlewareFunc {
//	    return func(c *routed.Context) {
//	        start := time.Now()
//	        c.Next()
//	        c.Logger().Info("request", "status", c.Response.StatusCode(), "took", time.Since(start))
//	    }
//	}
type MiddlewareFunc func(c *Context)

func (MiddlewareFunc) middleware() {}

// namedMiddlewareRef is an unresolved, named reference to a middleware.
// Resolution happens at Engine.Build against the engine's middleware
// registry; an unresolved reference is a ConfigurationError raised at
// Build, never a runtime surprise (§4.3, §9).
type namedMiddlewareRef struct {
	name string
}

func (*namedMiddlewareRef) middleware() {}

// MiddlewareRef returns a placeholder that is resolved by name against the
// engine's middleware registry during Build. Register the implementation
// with Engine.RegisterMiddleware before calling Build.
//
//	r.Use(routed.MiddlewareRef("auth"))
//	...
//	e.RegisterMiddleware("auth", AuthMiddleware())
func MiddlewareRef(name string) Middleware {
	return &namedMiddlewareRef{name: name}
}

// middlewareRegistry resolves named middleware references at Build time.
type middlewareRegistry struct {
	byName map[string]MiddlewareFunc
}

func newMiddlewareRegistry() *middlewareRegistry {
	return &middlewareRegistry{byName: make(map[string]MiddlewareFunc)}
}

func (reg *middlewareRegistry) register(name string, fn MiddlewareFunc) {
	reg.byName[name] = fn
}

// resolve turns a slice of Middleware (funcs and/or refs) into a flat
// slice of MiddlewareFunc, or returns a ConfigurationError naming the
// first unresolved reference.
func (reg *middlewareRegistry) resolve(list []Middleware) ([]MiddlewareFunc, error) {
	out := make([]MiddlewareFunc, 0, len(list))
	for _, m := range list {
		switch v := m.(type) {
		case MiddlewareFunc:
			out = append(out, v)
		case *namedMiddlewareRef:
			fn, ok := reg.byName[v.name]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnresolvedMiddlewareRef, v.name)
			}
			out = append(out, fn)
		default:
			return nil, fmt.Errorf("%w: unrecognized middleware entry %T", ErrUnresolvedMiddlewareRef, m)
		}
	}
	return out, nil
}

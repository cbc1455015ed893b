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

// mountPoint records one Engine.Use(prefix, router, middlewares) call,
// awaiting resolution at Build.
type mountPoint struct {
	prefix     string
	router     *Router
	middleware []Middleware
}

// Use mounts router under the given prefix, with optional mount-level
// middleware that runs after engine-level middleware but before the
// router's own middleware (§4.3). Use is only valid while the engine is
// Configuring; calling it after Build panics.
func (e *Engine) Use(prefix string, router *Router, middleware ...Middleware) *Engine {
	if e.state != StateConfiguring {
		panic(ErrEngineAlreadyBuilt)
	}
	e.mounts = append(e.mounts, mountPoint{prefix: prefix, router: router, middleware: middleware})
	return e
}

// buildRoutes walks every mounted router's routeDefs and emits the fully
// resolved RegisteredRoute set, per the resolution algorithm of §4.3:
//
//  1. path = mountPrefix ++ routerPrefix ++ groupPrefixes ++ routePath
//     (the engine itself has no path prefix)
//  2. name = non-empty(routerName, groupName, routeName) joined by "."
//     (neither the engine nor a mount contributes a name fragment)
//  3. middleware = engineMW ++ mountMW ++ routerMW ++ groupMW ++ routeMW
//  4. constraints are per-route only
func (e *Engine) buildRoutes() ([]*RegisteredRoute, error) {
	var out []*RegisteredRoute
	names := map[string]int{} // name -> index into out, for duplicate-replace policy

	for _, mp := range e.mounts {
		mp.router.built = true

		for _, rd := range mp.router.routes {
			path := joinPath(joinPath(mp.prefix, mp.router.prefix), rd.path)
			name := joinName(mp.router.name, rd.groupName, rd.name)

			middleware := make([]Middleware, 0,
				len(e.middleware)+len(mp.middleware)+len(mp.router.middleware)+len(rd.groupMiddleware)+len(rd.middleware))
			middleware = append(middleware, e.middleware...)
			middleware = append(middleware, mp.middleware...)
			middleware = append(middleware, mp.router.middleware...)
			middleware = append(middleware, rd.groupMiddleware...)
			middleware = append(middleware, rd.middleware...)

			resolved, err := e.middlewareRegistry.resolve(middleware)
			if err != nil {
				return nil, err
			}

			pattern, err := parsePattern(path, rd.constraints, e.customTypes)
			if err != nil {
				return nil, err
			}

			rr := &RegisteredRoute{
				Method:      rd.method,
				Path:        path,
				Name:        name,
				pattern:     pattern,
				handler:     rd.handler,
				constraints: rd.constraints,
				middlewares: resolved,
			}
			rr.chain = foldChain(resolved, rd.handler)

			if name != "" {
				if i, dup := names[name]; dup {
					e.logger.Warn("duplicate route name, replacing", "name", name, "path", path)
					e.emitDiagnostic(DiagnosticEvent{Kind: "duplicate_route_name", Message: "route name replaced by a later registration", Route: name})
					out[i] = rr
					continue
				}
				names[name] = len(out)
			}
			out = append(out, rr)
		}
	}

	return out, nil
}

// foldChain combines a middleware list and terminal handler into a single
// invokable that runs them outer-to-inner (§4.4). The returned function
// installs the handler slice on the Context and starts the chain with one
// Context.Next() call.
func foldChain(middleware []MiddlewareFunc, handler HandlerFunc) HandlerFunc {
	return func(c *Context) {
		c.handlers = append(c.handlers[:0], asHandlerSlice(middleware, handler)...)
		c.index = -1
		ensureNextCalledCap(c, len(c.handlers))
		c.Next()
	}
}

func asHandlerSlice(middleware []MiddlewareFunc, handler HandlerFunc) []HandlerFunc {
	out := make([]HandlerFunc, 0, len(middleware)+1)
	for _, mw := range middleware {
		mw := mw
		out = append(out, HandlerFunc(mw))
	}
	out = append(out, handler)
	return out
}

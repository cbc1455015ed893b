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
	"strings"
)

// Router is a pure builder: it accumulates a prefix, a dotted name, route
// middleware, and the leaf routes registered directly on it or through
// nested Groups. It holds no back-reference to any Engine (§9 Design
// Notes: "break cyclic references by making Router a pure builder").
//
//	r := routed.NewRouter()
//	r.GET("/health", healthHandler).Name("health")
//	api := r.Group("/api")
//	api.Use(authMiddleware)
//	api.GET("/users/{id:int}", getUser).Name("users.get")
type Router struct {
	prefix     string
	name       string
	middleware []Middleware
	routes     []*routeDef
	built      bool
}

// NewRouter creates an empty Router builder.
func NewRouter() *Router {
	return &Router{}
}

// SetPrefix sets the router-level path prefix, prepended ahead of every
// group and route prefix at Build.
func (r *Router) SetPrefix(prefix string) *Router {
	r.prefix = prefix
	return r
}

// SetName sets the router-level dotted name fragment.
func (r *Router) SetName(name string) *Router {
	r.name = name
	return r
}

// Use appends router-level middleware, run after engine and mount
// middleware but before any group or route middleware (§4.3 step 3).
func (r *Router) Use(mw ...Middleware) *Router {
	r.middleware = append(r.middleware, mw...)
	return r
}

// Group returns a nested builder scope contributing prefix, and
// (via Group.Name/Group.Use) further name and middleware fragments.
func (r *Router) Group(prefix string) *Group {
	return &Group{router: r, prefix: prefix}
}

// RouteExists reports whether method+path has already been registered on
// this router (relative to the router's own prefix), for pre-Build
// collision diagnostics.
func (r *Router) RouteExists(method, path string) bool {
	for _, rd := range r.routes {
		if rd.method == method && rd.path == path {
			return true
		}
	}
	return false
}

func (r *Router) addRoute(method, path string, handler HandlerFunc) *routeDef {
	if r.built {
		panic(ErrEngineAlreadyBuilt)
	}
	rd := &routeDef{method: method, path: path, handler: handler}
	r.routes = append(r.routes, rd)
	return rd
}

// GET registers a GET route.
func (r *Router) GET(path string, handler HandlerFunc) *routeDef {
	return r.addRoute(http.MethodGet, path, handler)
}

// POST registers a POST route.
func (r *Router) POST(path string, handler HandlerFunc) *routeDef {
	return r.addRoute(http.MethodPost, path, handler)
}

// PUT registers a PUT route.
func (r *Router) PUT(path string, handler HandlerFunc) *routeDef {
	return r.addRoute(http.MethodPut, path, handler)
}

// PATCH registers a PATCH route.
func (r *Router) PATCH(path string, handler HandlerFunc) *routeDef {
	return r.addRoute(http.MethodPatch, path, handler)
}

// DELETE registers a DELETE route.
func (r *Router) DELETE(path string, handler HandlerFunc) *routeDef {
	return r.addRoute(http.MethodDelete, path, handler)
}

// HEAD registers a HEAD route.
func (r *Router) HEAD(path string, handler HandlerFunc) *routeDef {
	return r.addRoute(http.MethodHead, path, handler)
}

// OPTIONS registers an OPTIONS route.
func (r *Router) OPTIONS(path string, handler HandlerFunc) *routeDef {
	return r.addRoute(http.MethodOptions, path, handler)
}

// Handle registers a route for an arbitrary method, including the ANY
// sentinel consulted when no method-specific route matches (§4.2).
func (r *Router) Handle(method, path string, handler HandlerFunc) *routeDef {
	return r.addRoute(strings.ToUpper(method), path, handler)
}

// Any registers a route matched regardless of method, as a fallback
// beneath any method-specific route at the same path.
func (r *Router) Any(path string, handler HandlerFunc) *routeDef {
	return r.addRoute(methodAny, path, handler)
}

// Group is a nested scope inside a Router, contributing further prefix,
// name, and middleware fragments. Each call to Group/GET/POST/... derives
// a new frame from the current one, so ancestor contributions are baked
// in eagerly and independent nested branches never interfere.
type Group struct {
	router     *Router
	prefix     string
	name       string
	middleware []Middleware
}

// Use appends group-level middleware, run after router middleware but
// before route middleware, and before any middleware of a route declared
// in a nested Group.
func (g *Group) Use(mw ...Middleware) *Group {
	g.middleware = append(g.middleware, mw...)
	return g
}

// Name appends a dotted name fragment to this group's name. A nested
// Group starts from a copy of its parent's name at creation time, so the
// fragment follows those of its ancestor groups; calling Name again on the
// same group appends a further fragment.
func (g *Group) Name(name string) *Group {
	g.name = joinName(g.name, name)
	return g
}

// Group returns a nested scope under this one, inheriting prefix, name,
// and middleware.
func (g *Group) Group(prefix string) *Group {
	return &Group{
		router:     g.router,
		prefix:     joinPath(g.prefix, prefix),
		name:       g.name,
		middleware: append([]Middleware(nil), g.middleware...),
	}
}

func (g *Group) addRoute(method, path string, handler HandlerFunc) *routeDef {
	if g.router.built {
		panic(ErrEngineAlreadyBuilt)
	}
	rd := &routeDef{
		method:          method,
		path:            joinPath(g.prefix, path),
		handler:         handler,
		groupName:       g.name,
		groupMiddleware: append([]Middleware(nil), g.middleware...),
	}
	g.router.routes = append(g.router.routes, rd)
	return rd
}

// GET registers a GET route under this group's prefix.
func (g *Group) GET(path string, handler HandlerFunc) *routeDef {
	return g.addRoute(http.MethodGet, path, handler)
}

// POST registers a POST route under this group's prefix.
func (g *Group) POST(path string, handler HandlerFunc) *routeDef {
	return g.addRoute(http.MethodPost, path, handler)
}

// PUT registers a PUT route under this group's prefix.
func (g *Group) PUT(path string, handler HandlerFunc) *routeDef {
	return g.addRoute(http.MethodPut, path, handler)
}

// PATCH registers a PATCH route under this group's prefix.
func (g *Group) PATCH(path string, handler HandlerFunc) *routeDef {
	return g.addRoute(http.MethodPatch, path, handler)
}

// DELETE registers a DELETE route under this group's prefix.
func (g *Group) DELETE(path string, handler HandlerFunc) *routeDef {
	return g.addRoute(http.MethodDelete, path, handler)
}

// HEAD registers a HEAD route under this group's prefix.
func (g *Group) HEAD(path string, handler HandlerFunc) *routeDef {
	return g.addRoute(http.MethodHead, path, handler)
}

// OPTIONS registers an OPTIONS route under this group's prefix.
func (g *Group) OPTIONS(path string, handler HandlerFunc) *routeDef {
	return g.addRoute(http.MethodOptions, path, handler)
}

// Handle registers a route for an arbitrary method under this group's prefix.
func (g *Group) Handle(method, path string, handler HandlerFunc) *routeDef {
	return g.addRoute(strings.ToUpper(method), path, handler)
}

// joinPath concatenates a prefix and a path fragment with exactly one
// separating slash, normalizing duplicate slashes but preserving a
// trailing slash the leaf explicitly requested (§4.3 step 1).
func joinPath(prefix, path string) string {
	switch {
	case prefix == "":
		if path == "" {
			return "/"
		}
		return normalizeSlashes(path)
	case path == "":
		return normalizeSlashes(prefix)
	default:
		return normalizeSlashes(prefix + "/" + path)
	}
}

func normalizeSlashes(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

// joinName concatenates dotted name fragments, skipping empty ones
// (§4.3 step 2).
func joinName(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ".")
}

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

// RegisteredRoute is a fully resolved, immutable route record emitted by
// Engine.Build (§3). Every field has already absorbed its contribution
// from the engine, mount, router, and group chain.
type RegisteredRoute struct {
	Method      string
	Path        string
	Name        string
	pattern     PathPattern
	handler     HandlerFunc
	constraints map[string]string
	middlewares []MiddlewareFunc
	chain       HandlerFunc // pre-folded middlewares ∘ handler, built once at Build
}

// Pattern returns the route's parsed path pattern.
func (rr *RegisteredRoute) Pattern() PathPattern { return rr.pattern }

// routeDef is the builder-time, pre-Build representation of a route: a
// path, method, handler, and accumulated per-route constraints/name,
// plus a local middleware list that may still hold unresolved
// MiddlewareRef entries (resolution and merging with ancestor middleware
// happens in Build).
type routeDef struct {
	method      string
	path        string
	handler     HandlerFunc
	name        string
	constraints map[string]string
	middleware  []Middleware

	// ancestry captures the name/middleware contributed by the Group
	// chain this route was declared under (its prefix is already folded
	// into path by Group.addRoute); assembled at registration time.
	groupName       string
	groupMiddleware []Middleware
}

// Where attaches a regular-expression constraint to a named parameter of
// this route. The constraint is independent of any inline type tag and is
// anchored with ^…$ at Build if not already anchored (§4.1).
func (r *routeDef) Where(param, pattern string) *routeDef {
	if r.constraints == nil {
		r.constraints = make(map[string]string)
	}
	r.constraints[param] = pattern
	return r
}

// WhereInt constrains param to decimal digits (optionally signed).
func (r *routeDef) WhereInt(param string) *routeDef {
	return r.Where(param, `-?[0-9]+`)
}

// WhereUUID constrains param to canonical 8-4-4-4-12 UUID form.
func (r *routeDef) WhereUUID(param string) *routeDef {
	return r.Where(param, `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
}

// WhereSlug constrains param to `[A-Za-z0-9_-]+`.
func (r *routeDef) WhereSlug(param string) *routeDef {
	return r.Where(param, `[A-Za-z0-9_-]+`)
}

// Name attaches a dotted route name (e.g. "api.v1.books.list") used for
// reverse routing via Engine.URLFor. Concatenated with any group/router
// name prefix at Build.
func (r *routeDef) Name(name string) *routeDef {
	r.name = name
	return r
}

// Use attaches route-local middleware, appended after every ancestor
// middleware in the final chain (§4.3 step 3).
func (r *routeDef) Use(mw ...Middleware) *routeDef {
	r.middleware = append(r.middleware, mw...)
	return r
}

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
	"testing"

	"github.com/stretchr/testify/assert"
)

func noop(c *Context) {}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "/", joinPath("", ""))
	assert.Equal(t, "/api", joinPath("", "/api"))
	assert.Equal(t, "/api", joinPath("/api", ""))
	assert.Equal(t, "/api/users", joinPath("/api", "/users"))
	assert.Equal(t, "/api/users", joinPath("/api/", "/users"))
	assert.Equal(t, "/api/users/", joinPath("/api", "/users/"))
}

func TestJoinName(t *testing.T) {
	assert.Equal(t, "api.v1.users", joinName("api", "v1", "users"))
	assert.Equal(t, "api.users", joinName("api", "", "users"))
	assert.Equal(t, "", joinName("", ""))
}

func TestGroupInheritsPrefixNameMiddleware(t *testing.T) {
	r := NewRouter()
	outer := r.Group("/api").Name("api")
	outer.Use(MiddlewareFunc(noop))
	inner := outer.Group("/v1").Name("v1")

	rd := inner.GET("/users", noop).Name("list")

	assert.Equal(t, "/api/v1/users", rd.path)
	assert.Equal(t, "api.v1", rd.groupName)
	assert.Equal(t, "list", rd.name)
	assert.Len(t, rd.groupMiddleware, 1)
}

func TestNestedGroupsDoNotShareMiddlewareSlice(t *testing.T) {
	r := NewRouter()
	base := r.Group("/api")
	base.Use(MiddlewareFunc(noop))

	child1 := base.Group("/v1")
	child2 := base.Group("/v2")
	child1.Use(MiddlewareFunc(noop))

	assert.Len(t, child1.middleware, 2)
	assert.Len(t, child2.middleware, 1, "child2 must not see child1's appended middleware")
}

func TestRouteExists(t *testing.T) {
	r := NewRouter()
	r.GET("/users", noop)
	assert.True(t, r.RouteExists("GET", "/users"))
	assert.False(t, r.RouteExists("POST", "/users"))
}

func TestAddRouteAfterBuiltPanics(t *testing.T) {
	r := NewRouter()
	r.built = true
	assert.Panics(t, func() { r.GET("/x", noop) })

	g := r.Group("/api")
	assert.Panics(t, func() { g.GET("/x", noop) })
}

func TestWhereConstraintHelpers(t *testing.T) {
	r := NewRouter()
	rd := r.GET("/users/{id}", noop).WhereInt("id")
	assert.Equal(t, `-?[0-9]+`, rd.constraints["id"])

	rd2 := r.GET("/items/{slug}", noop).WhereSlug("slug")
	assert.Equal(t, `[A-Za-z0-9_-]+`, rd2.constraints["slug"])
}

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
	"github.com/stretchr/testify/require"
)

func mustRoute(t *testing.T, method, path string) *RegisteredRoute {
	t.Helper()
	pp, err := parsePattern(path, nil, nil)
	require.NoError(t, err)
	return &RegisteredRoute{Method: method, Path: path, pattern: pp, handler: func(c *Context) {}}
}

func TestRouteTableExactMatch(t *testing.T) {
	table := newRouteTable(nil)
	r := mustRoute(t, "GET", "/users")
	table.add(r)

	outcome := table.resolve("GET", "/users", false, false)
	assert.Equal(t, OutcomeMatch, outcome.Kind)
	assert.Same(t, r, outcome.Route)
}

func TestRouteTableTypedParamBeatsUntyped(t *testing.T) {
	table := newRouteTable(nil)
	typed := mustRoute(t, "GET", "/users/{id:int}")
	untyped := mustRoute(t, "GET", "/users/{name}")
	table.add(typed)
	table.add(untyped)

	outcome := table.resolve("GET", "/users/42", false, false)
	require.Equal(t, OutcomeMatch, outcome.Kind)
	assert.Same(t, typed, outcome.Route)
	assert.Equal(t, "42", outcome.Params["id"])

	outcome = table.resolve("GET", "/users/bob", false, false)
	require.Equal(t, OutcomeMatch, outcome.Kind)
	assert.Same(t, untyped, outcome.Route)
	assert.Equal(t, "bob", outcome.Params["name"])
}

func TestRouteTableBacktracksAcrossSiblings(t *testing.T) {
	table := newRouteTable(nil)
	// "42" satisfies {id:int}, but that branch has no "settings" child; the
	// lookup must backtrack off the typed branch onto the untyped {name} branch.
	table.add(mustRoute(t, "GET", "/users/{id:int}/profile"))
	fallback := mustRoute(t, "GET", "/users/{name}/settings")
	table.add(fallback)

	outcome := table.resolve("GET", "/users/42/settings", false, false)
	require.Equal(t, OutcomeMatch, outcome.Kind)
	assert.Same(t, fallback, outcome.Route)
	assert.Equal(t, "42", outcome.Params["name"])
}

func TestRouteTableWildcard(t *testing.T) {
	table := newRouteTable(nil)
	r := mustRoute(t, "GET", "/files/{*path}")
	table.add(r)

	outcome := table.resolve("GET", "/files/a/b/c.txt", false, false)
	require.Equal(t, OutcomeMatch, outcome.Kind)
	assert.Equal(t, "a/b/c.txt", outcome.Params["path"])
}

func TestRouteTableANYFallback(t *testing.T) {
	table := newRouteTable(nil)
	specific := mustRoute(t, "GET", "/ping")
	any := mustRoute(t, methodAny, "/ping")
	table.add(any)
	table.add(specific)

	outcome := table.resolve("GET", "/ping", false, false)
	require.Equal(t, OutcomeMatch, outcome.Kind)
	assert.Same(t, specific, outcome.Route, "method-specific route must beat ANY")

	outcome = table.resolve("POST", "/ping", false, false)
	require.Equal(t, OutcomeMatch, outcome.Kind)
	assert.Same(t, any, outcome.Route)
}

func TestRouteTableTrailingSlashRedirect(t *testing.T) {
	table := newRouteTable(nil)
	table.add(mustRoute(t, "GET", "/users"))
	table.add(mustRoute(t, "POST", "/users"))

	outcome := table.resolve("GET", "/users/", true, false)
	require.Equal(t, OutcomeRedirect, outcome.Kind)
	assert.Equal(t, 301, outcome.Status)
	assert.Equal(t, "/users", outcome.Location)

	outcome = table.resolve("POST", "/users/", true, false)
	require.Equal(t, OutcomeRedirect, outcome.Kind)
	assert.Equal(t, 307, outcome.Status)
}

func TestRouteTableTrailingSlashDisabledFallsThrough(t *testing.T) {
	table := newRouteTable(nil)
	table.add(mustRoute(t, "GET", "/users"))

	outcome := table.resolve("GET", "/users/", false, false)
	assert.Equal(t, OutcomeNotFound, outcome.Kind)
}

func TestRouteTableMethodNotAllowed(t *testing.T) {
	table := newRouteTable(nil)
	table.add(mustRoute(t, "GET", "/users"))
	table.add(mustRoute(t, "POST", "/users"))

	outcome := table.resolve("DELETE", "/users", false, true)
	require.Equal(t, OutcomeMethodNotAllowed, outcome.Kind)
	assert.Equal(t, []string{"GET", "POST"}, outcome.Allow)
}

func TestRouteTableNotFound(t *testing.T) {
	table := newRouteTable(nil)
	table.add(mustRoute(t, "GET", "/users"))

	outcome := table.resolve("GET", "/nope", false, false)
	assert.Equal(t, OutcomeNotFound, outcome.Kind)
}

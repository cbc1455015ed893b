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

// Package routed is a small HTTP serving framework built around a
// radix-tree router, a composable middleware pipeline, and a typed
// per-request context.
//
// An Engine owns configuration and a merged route table. Routers and
// Groups are builders that accumulate prefix, name, and middleware;
// Engine.Use mounts a Router (with an optional prefix and mount-level
// middleware) on an Engine. Build walks every mounted Router and compiles
// a flat, immutable route table; Serve binds a listener and dispatches
// requests into the table.
//
// Example:
//
//	e := routed.New()
//	r := routed.NewRouter()
//	r.GET("/users/{id:int}", func(c *routed.Context) {
//	    c.JSON(http.StatusOK, map[string]any{"id": c.MustParamInt("id")})
//	})
//	e.Use("", r)
//	log.Fatal(e.Serve(":8080"))
package routed

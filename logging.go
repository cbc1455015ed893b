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
	"context"
	"log/slog"
)

// discardHandler is a slog.Handler that drops every record; it backs the
// engine's default logger so a host that never calls WithLogger pays
// nothing for logging calls on the hot path.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

func newDiscardLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

// requestLogger derives a per-request logger carrying method, route pattern,
// and request-ID fields from the engine's base logger (§4.5 "Logging").
func requestLogger(base *slog.Logger, method, routePattern, requestID string) *slog.Logger {
	return base.With(
		slog.String("method", method),
		slog.String("route", routePattern),
		slog.String("request_id", requestID),
	)
}

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

// DiagnosticEvent is a non-fatal observation, surfaced so a host can log
// it without the core forcing a logger dependency on every caller
// (§SUPPLEMENTED FEATURES "Diagnostic event hooks"). "duplicate_route_name"
// is emitted during Build; "long_proxy_chain" is emitted while resolving a
// request's client IP, on the goroutine serving that request.
type DiagnosticEvent struct {
	Kind    string // e.g. "duplicate_route_name", "long_proxy_chain"
	Message string
	Route   string // route name for duplicate_route_name; header name for long_proxy_chain
}

// DiagnosticHandler receives DiagnosticEvents emitted during Build and
// during client-IP resolution.
type DiagnosticHandler func(DiagnosticEvent)

// WithDiagnostics installs a handler for non-fatal diagnostics.
func WithDiagnostics(h DiagnosticHandler) Option {
	return func(e *Engine) { e.diag = h }
}

// emitDiagnostic calls the installed handler, if any.
func (e *Engine) emitDiagnostic(evt DiagnosticEvent) {
	if e.diag != nil {
		e.diag(evt)
	}
}

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
	"time"
)

// Option configures an Engine at construction time (§6 "Configuration").
type Option func(*Engine)

// WithRedirectTrailingSlash enables/disables the trailing-slash redirect
// described in §4.2. Enabled by default.
func WithRedirectTrailingSlash(enabled bool) Option {
	return func(e *Engine) { e.config.redirectTrailingSlash = enabled }
}

// WithRedirectFixedPath records the redirectFixedPath setting in the
// engine configuration. Route resolution does not consult it: a request
// path that differs from a registered route only by duplicate slashes or
// letter case is not redirected.
func WithRedirectFixedPath(enabled bool) Option {
	return func(e *Engine) { e.config.redirectFixedPath = enabled }
}

// WithHandleMethodNotAllowed enables/disables 405 responses (§4.2).
// Enabled by default.
func WithHandleMethodNotAllowed(enabled bool) Option {
	return func(e *Engine) { e.config.handleMethodNotAllowed = enabled }
}

// WithTrustedProxies sets the set of exact IPs and CIDR blocks trusted to
// supply forwarding headers (§4.7). Also implies forwardedByClientIP and
// features.enableProxySupport, matching the corpus's WithTrustedProxies.
func WithTrustedProxies(entries ...string) Option {
	return func(e *Engine) {
		e.config.trustedProxiesRaw = append(e.config.trustedProxiesRaw, entries...)
		e.config.forwardedByClientIP = true
		e.config.enableProxySupport = true
	}
}

// WithProxyHeaders overrides the ordered list of headers consulted for
// client-IP resolution (default: X-Forwarded-For, X-Real-IP).
func WithProxyHeaders(headers ...string) Option {
	return func(e *Engine) { e.config.remoteIPHeaders = headers }
}

// WithTrustedPlatform enables trusted-platform header resolution (e.g.
// Cloudflare's CF-Connecting-IP, App Engine's X-Appengine-Remote-Addr),
// taking priority over the proxy-header walk when the peer is trusted
// (§4.7 step 1).
func WithTrustedPlatform(header string) Option {
	return func(e *Engine) {
		e.config.enableTrustedPlatform = true
		e.config.trustedPlatform = header
		e.config.forwardedByClientIP = true
	}
}

// WithForwardedByClientIP is a low-level switch gating all header-based
// client-IP resolution, independent of which headers/platform are
// configured. WithTrustedProxies and WithTrustedPlatform already enable
// it; this is for hosts wiring the pieces individually.
func WithForwardedByClientIP(enabled bool) Option {
	return func(e *Engine) { e.config.forwardedByClientIP = enabled }
}

// WithSecureRequestIDs switches request-ID generation from crypto/rand
// bytes to github.com/google/uuid (features.enableSecureRequestIds).
func WithSecureRequestIDs(enabled bool) Option {
	return func(e *Engine) { e.config.enableSecureRequestIds = enabled }
}

// WithMaxRequestSize caps the request body size enforced by
// Request.BodyBytes/BodyStream (security.maxRequestSize); 0 means
// unbounded.
func WithMaxRequestSize(bytes int64) Option {
	return func(e *Engine) { e.config.maxRequestSize = bytes }
}

// WithCSRFCookieName names the cookie the core passes through to a CSRF
// collaborator (security.csrfCookieName); the core itself performs no
// CSRF enforcement (§3: "concrete enforcement is a collaborator").
func WithCSRFCookieName(name string) Option {
	return func(e *Engine) { e.config.csrfCookieName = name }
}

// WithCSRFProtection records whether CSRF protection is expected to be
// layered in by a collaborator (security.csrfProtection); advisory only.
func WithCSRFProtection(enabled bool) Option {
	return func(e *Engine) { e.config.csrfProtection = enabled }
}

// WithH2C enables cleartext HTTP/2 serving via golang.org/x/net/http2/h2c.
func WithH2C(enabled bool) Option {
	return func(e *Engine) { e.config.enableH2C = enabled }
}

// WithShutdownTimeout bounds how long Close waits for in-flight requests
// to drain before forcing connections closed (§4.6 "close()").
func WithShutdownTimeout(d time.Duration) Option {
	return func(e *Engine) { e.config.shutdownTimeout = d }
}

// WithLogger sets the engine's base structured logger, from which
// Context.Logger derives per-request loggers (§Logging). Defaults to a
// discard handler.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMiddleware attaches engine-level middleware at construction time,
// equivalent to calling Use after New.
func WithMiddleware(mw ...Middleware) Option {
	return func(e *Engine) { e.middleware = append(e.middleware, mw...) }
}

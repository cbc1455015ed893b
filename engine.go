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
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// EngineState is one stage of the engine lifecycle (§4.6):
//
//	Configuring -> Built -> Serving -> ShuttingDown -> Stopped
type EngineState uint8

const (
	StateConfiguring EngineState = iota
	StateBuilt
	StateServing
	StateShuttingDown
	StateStopped
)

func (s EngineState) String() string {
	switch s {
	case StateConfiguring:
		return "configuring"
	case StateBuilt:
		return "built"
	case StateServing:
		return "serving"
	case StateShuttingDown:
		return "shutting_down"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ErrorObserver is notified of every error collected on a Context's error
// list, plus uncaught handler panics recovered by the dispatcher (other
// than an AbortWithStatus abort) (§7
// propagation policy: "notifies the observer registry ... observer
// failures swallowed").
type ErrorObserver func(c *Context, err error)

// EngineConfig is the engine's immutable-after-build configuration surface
// (§3 Data model). It is populated exclusively through functional options
// (options.go) and validated eagerly by Build.
type EngineConfig struct {
	redirectTrailingSlash  bool
	redirectFixedPath      bool
	handleMethodNotAllowed bool

	forwardedByClientIP   bool
	enableProxySupport    bool
	enableTrustedPlatform bool
	trustedPlatform       string
	remoteIPHeaders       []string
	trustedProxiesRaw     []string

	enableSecureRequestIds bool

	csrfCookieName string
	maxRequestSize int64
	csrfProtection bool

	enableH2C       bool
	shutdownTimeout time.Duration
}

func defaultEngineConfig() EngineConfig {
	return EngineConfig{
		redirectTrailingSlash:  true,
		handleMethodNotAllowed: true,
		remoteIPHeaders:        []string{"X-Forwarded-For", "X-Real-IP"},
		shutdownTimeout:        30 * time.Second,
	}
}

// Engine is the top-level server object: it owns configuration, the
// mounted router tree, the resolved route table, and the HTTP listener.
// Engine is safe for concurrent use once Built; mutation methods
// (Use, RegisterMiddleware, RegisterType, options) are only valid while
// Configuring (§4.6, §5 "Shared resources").
type Engine struct {
	mu    sync.RWMutex
	state EngineState

	config         EngineConfig
	trustedProxies *trustedProxyConfig

	mounts             []mountPoint
	middleware         []Middleware
	middlewareRegistry *middlewareRegistry
	customTypes        map[string]customTypeValidator

	routeTable   *RouteTable
	routes       []*RegisteredRoute
	routesByName map[string]*RegisteredRoute

	observers []ErrorObserver
	recorders []ObservabilityRecorder
	diag      DiagnosticHandler

	logger *slog.Logger

	ctxPool sync.Pool

	server *http.Server
}

// New creates an Engine in the Configuring state, with the given options
// applied in order.
func New(opts ...Option) *Engine {
	e := &Engine{
		state:              StateConfiguring,
		config:             defaultEngineConfig(),
		middlewareRegistry: newMiddlewareRegistry(),
		customTypes:        make(map[string]customTypeValidator),
		routesByName:       make(map[string]*RegisteredRoute),
		logger:             newDiscardLogger(),
	}
	e.ctxPool.New = func() any { return &Context{index: -1} }
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegisterMiddleware binds a name to a middleware implementation so routes
// may reference it indirectly via MiddlewareRef (§4.3 "Named middleware
// references"). Valid only while Configuring.
func (e *Engine) RegisterMiddleware(name string, fn MiddlewareFunc) *Engine {
	if e.state != StateConfiguring {
		panic(ErrEngineAlreadyBuilt)
	}
	e.middlewareRegistry.register(name, fn)
	return e
}

// RegisterType binds a name to a custom path-parameter type validator,
// referenced in patterns as `{name:customTypeName}` (§4.1). Valid only
// while Configuring.
func (e *Engine) RegisterType(name string, fn customTypeValidator) *Engine {
	if e.state != StateConfiguring {
		panic(ErrEngineAlreadyBuilt)
	}
	e.customTypes[name] = fn
	return e
}

// RegisterErrorObserver appends an observer notified of every error
// collected during a request (§7). Observer panics are recovered and
// swallowed by the dispatcher so one misbehaving observer cannot break
// another or the response.
func (e *Engine) RegisterErrorObserver(fn ErrorObserver) *Engine {
	if e.state != StateConfiguring {
		panic(ErrEngineAlreadyBuilt)
	}
	e.observers = append(e.observers, fn)
	return e
}

// notifyObservers runs every registered error observer, recovering and
// discarding any observer panic (§7 "observer failures swallowed").
func (e *Engine) notifyObservers(c *Context, err error) {
	for _, obs := range e.observers {
		func() {
			defer func() { recover() }()
			obs(c, err)
		}()
	}
}

// Build resolves the mounted router tree into a frozen route table,
// validates configuration, resolves named middleware references, and
// transitions the engine to Built. Build is idempotent: calling it again
// once Built is a no-op returning nil (§4.6, §8 "build(build(e)) == build(e)").
func (e *Engine) Build() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateConfiguring {
		return nil
	}

	if len(e.config.trustedProxiesRaw) > 0 {
		compiled, err := compileTrustedProxies(e.config.trustedProxiesRaw)
		if err != nil {
			return err
		}
		e.trustedProxies = compiled
	}

	routes, err := e.buildRoutes()
	if err != nil {
		return err
	}

	table := newRouteTable(e.customTypes)
	byName := make(map[string]*RegisteredRoute, len(routes))
	for _, rr := range routes {
		table.add(rr)
		if rr.Name != "" {
			byName[rr.Name] = rr
		}
	}

	e.routes = routes
	e.routeTable = table
	e.routesByName = byName
	e.state = StateBuilt
	return nil
}

// GetAllRoutes returns a copy of the frozen, merged route list. Valid only
// after Build; returns an empty slice beforehand.
func (e *Engine) GetAllRoutes() []*RegisteredRoute {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*RegisteredRoute, len(e.routes))
	copy(out, e.routes)
	return out
}

// URLFor reverses a named route into a concrete path, substituting params
// into the pattern and appending query as a query string (§4.6
// "routes.named", extended per SUPPLEMENTED FEATURES with query
// passthrough). Fails with ErrRouteNotFound or ErrMissingRouteParam.
func (e *Engine) URLFor(name string, params map[string]string, query url.Values) (string, error) {
	e.mu.RLock()
	rr, ok := e.routesByName[name]
	e.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRouteNotFound, name)
	}

	var b strings.Builder
	for _, seg := range rr.pattern.segments {
		b.WriteByte('/')
		switch seg.kind {
		case segLiteral:
			b.WriteString(seg.literal)
		case segParam, segWildcard:
			v, ok := params[seg.name]
			if !ok {
				return "", fmt.Errorf("%w: %q needs %q", ErrMissingRouteParam, name, seg.name)
			}
			b.WriteString(v)
		}
	}
	path := b.String()
	if path == "" {
		path = "/"
	}

	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return path, nil
}

// MustURLFor is URLFor, panicking on error.
func (e *Engine) MustURLFor(name string, params map[string]string, query url.Values) string {
	u, err := e.URLFor(name, params, query)
	if err != nil {
		panic(err)
	}
	return u
}

// allowedMethodsFor returns RouteTable.allowedMethods for path, or nil
// before Build. Dispatch computes its 405 Allow set through
// RouteTable.resolve instead.
func (e *Engine) allowedMethodsFor(path string) []string {
	if e.routeTable == nil {
		return nil
	}
	return e.routeTable.allowedMethods(path)
}

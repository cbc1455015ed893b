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
	"errors"
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Serve builds the engine if needed, binds addr, and blocks serving
// requests until Close is called (§4.6 "serve(port)"). When
// WithH2C(true) was set, requests may additionally negotiate cleartext
// HTTP/2 via the h2c upgrade path, grounded on the corpus's WithH2C.
func (e *Engine) Serve(addr string) error {
	if err := e.Build(); err != nil {
		return err
	}

	e.mu.Lock()
	if e.state != StateBuilt {
		e.mu.Unlock()
		return ErrEngineAlreadyBuilt
	}
	e.state = StateServing

	var handler http.Handler = e
	if e.config.enableH2C {
		h2s := &http2.Server{}
		handler = h2c.NewHandler(e, h2s)
	}

	e.server = &http.Server{Addr: addr, Handler: handler}
	e.mu.Unlock()

	err := e.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Close transitions the engine through ShuttingDown to Stopped, draining
// in-flight requests up to the configured shutdown timeout (§4.6
// "close()"). Close is idempotent.
func (e *Engine) Close(ctx context.Context) error {
	e.mu.Lock()
	if e.state == StateStopped {
		e.mu.Unlock()
		return nil
	}
	e.state = StateShuttingDown
	server := e.server
	e.mu.Unlock()

	var err error
	if server != nil {
		if e.config.shutdownTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, e.config.shutdownTimeout)
			defer cancel()
		}
		err = server.Shutdown(ctx)
		if err != nil {
			server.Close()
		}
	}

	e.mu.Lock()
	e.state = StateStopped
	e.mu.Unlock()

	return err
}

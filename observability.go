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

import "time"

// ObservabilityRecorder is the core's minimal observability hook contract:
// request-scoped span/metric lifecycle plus error notification. It is
// intentionally smaller than a full metrics+tracing+logging facade (that
// belongs to a collaborator); for every matched request the core calls
// OnRequestStart first and OnRequestEnd last, with one OnError call in
// between for each error the request produced.
//
// Implementations must be safe for concurrent use.
type ObservabilityRecorder interface {
	// OnRequestStart is called once routing has matched a route, before the
	// middleware chain runs.
	OnRequestStart(c *Context)

	// OnRequestEnd is called after the chain completes (successfully or via
	// recovered panic), with the final status code and request duration.
	OnRequestEnd(c *Context, status int, duration time.Duration)

	// OnError is called for every error collected on the context, and for
	// recovered panics other than an AbortWithStatus abort, in addition to
	// any registered ErrorObserver.
	OnError(c *Context, err error)
}

// UseObservability attaches a recorder, run for every matched request in
// registration order. Valid only while Configuring.
func (e *Engine) UseObservability(rec ObservabilityRecorder) *Engine {
	if e.state != StateConfiguring {
		panic(ErrEngineAlreadyBuilt)
	}
	e.recorders = append(e.recorders, rec)
	return e
}

func (e *Engine) notifyRequestStart(c *Context) {
	for _, rec := range e.recorders {
		rec.OnRequestStart(c)
	}
}

func (e *Engine) notifyRequestEnd(c *Context, status int, duration time.Duration) {
	for _, rec := range e.recorders {
		rec.OnRequestEnd(c, status, duration)
	}
}

func (e *Engine) notifyRecorderError(c *Context, err error) {
	for _, rec := range e.recorders {
		rec.OnError(c, err)
	}
}

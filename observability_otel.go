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
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// otelRecorder is the default ObservabilityRecorder implementation: one
// span per matched request, named after the route pattern (not the raw
// path, to keep cardinality bounded), with the request's errors recorded
// against the span and its status set to Error when the final HTTP status
// is 500 or above.
//
// It deliberately does not configure an exporter or TracerProvider — that
// wiring belongs to the host application (§DOMAIN STACK: "without
// importing the SDK's exporter machinery, which is a collaborator
// concern").
type otelRecorder struct {
	tracer trace.Tracer
}

// NewOTelRecorder returns an ObservabilityRecorder backed by
// go.opentelemetry.io/otel, using the globally configured TracerProvider.
func NewOTelRecorder() ObservabilityRecorder {
	return &otelRecorder{tracer: otel.Tracer("github.com/routed-dev/routed")}
}

const otelSpanAttrKey = "routed.otel.span"

func (r *otelRecorder) OnRequestStart(c *Context) {
	ctx, span := r.tracer.Start(c.Request.raw.Context(), c.routePattern)
	span.SetAttributes(
		attribute.String("http.method", c.Request.Method()),
		attribute.String("http.route", c.routePattern),
		attribute.String("request.id", c.ID()),
	)
	c.Request.raw = c.Request.raw.WithContext(ctx)
	c.Set(otelSpanAttrKey, span)
}

func (r *otelRecorder) OnRequestEnd(c *Context, status int, duration time.Duration) {
	span := spanFromContext(c)
	if span == nil {
		return
	}
	span.SetAttributes(
		attribute.Int("http.status_code", status),
		attribute.Int64("duration_ms", duration.Milliseconds()),
	)
	if status >= 500 {
		span.SetStatus(codes.Error, "handler error")
	}
	span.End()
}

func (r *otelRecorder) OnError(c *Context, err error) {
	span := spanFromContext(c)
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
}

func spanFromContext(c *Context) trace.Span {
	v, ok := c.Get(otelSpanAttrKey)
	if !ok {
		return nil
	}
	span, ok := v.(trace.Span)
	if !ok {
		return nil
	}
	return span
}

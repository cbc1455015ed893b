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
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// promRecorder is an ObservabilityRecorder recording request counts and
// latency histograms labeled by method, route, and status code, grounded
// on the corpus's Prometheus metrics provider. It exercises the same hook
// contract as otelRecorder, demonstrating the interface is genuinely
// pluggable rather than tracing-specific.
type promRecorder struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewPrometheusRecorder returns an ObservabilityRecorder registering its
// collectors on registry (pass prometheus.DefaultRegisterer to publish on
// the global registry, or a dedicated *prometheus.Registry to isolate it).
func NewPrometheusRecorder(registry prometheus.Registerer) ObservabilityRecorder {
	r := &promRecorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "routed_requests_total",
			Help: "Total requests processed, labeled by method, route, and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "routed_request_duration_seconds",
			Help:    "Request latency in seconds, labeled by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "routed_request_errors_total",
			Help: "Total errors collected on a request's error list, labeled by route.",
		}, []string{"route"}),
	}
	registry.MustRegister(r.requests, r.duration, r.errors)
	return r
}

func (r *promRecorder) OnRequestStart(c *Context) {}

func (r *promRecorder) OnRequestEnd(c *Context, status int, duration time.Duration) {
	method := c.Request.Method()
	route := c.RoutePattern()
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (r *promRecorder) OnError(c *Context, err error) {
	if err == nil {
		return
	}
	r.errors.WithLabelValues(c.RoutePattern()).Inc()
}

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
	"net/http"
)

// Response wraps the underlying http.ResponseWriter with the status and
// header-flush bookkeeping §4.5 requires: status and headers may be
// mutated freely until the first byte is written (or Close is called),
// after which they are frozen. Body writes append until Close; writes
// after Close are no-ops (§4.8 "Idempotence / safety").
type Response struct {
	raw http.ResponseWriter

	status    int
	flushed   bool
	isClosed  bool
	bytesSent int64
}

func newResponse(w http.ResponseWriter) *Response {
	return &Response{raw: w, status: http.StatusOK}
}

// Header returns the response header map. Mutations after the headers
// have been flushed have no effect on what was already sent, matching
// net/http's own semantics.
func (r *Response) Header() http.Header {
	return r.raw.Header()
}

// Status sets the status code, provided headers have not yet been
// flushed; otherwise it fails with ErrResponseClosed (§4.5).
func (r *Response) Status(code int) error {
	if r.flushed {
		return ErrResponseClosed
	}
	r.status = code
	return nil
}

// StatusCode returns the status code that will be (or was) sent.
func (r *Response) StatusCode() int { return r.status }

// Flushed reports whether headers have already been written to the wire.
func (r *Response) Flushed() bool { return r.flushed }

// BytesWritten returns the number of body bytes written so far.
func (r *Response) BytesWritten() int64 { return r.bytesSent }

// flush writes the status line and headers exactly once. Called
// internally on the first Write or explicit flush request.
func (r *Response) flush() {
	if r.flushed {
		return
	}
	r.flushed = true
	r.raw.WriteHeader(r.status)
}

// Write appends bytes to the response body, flushing headers on first
// call. Writing after Close is a no-op per §4.8.
func (r *Response) Write(p []byte) (int, error) {
	if r.isClosed {
		return 0, nil
	}
	r.flush()
	n, err := r.raw.Write(p)
	r.bytesSent += int64(n)
	return n, err
}

// Close marks the response closed; further writes are no-ops. Close is
// idempotent (§4.8).
func (r *Response) Close() {
	if r.isClosed {
		return
	}
	r.flush()
	r.isClosed = true
}

// IsClosed reports whether Close has been called.
func (r *Response) IsClosed() bool { return r.isClosed }

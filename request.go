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
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// Request is an immutable view over an incoming HTTP request's method,
// URI, headers, cookies, remote address, and TLS state, plus the raw
// path-parameter map extracted by route matching (§3).
//
// The body may be read at most once, as bytes, a string, or a stream
// (§4.5, §5); a second read fails with ErrBodyAlreadyConsumed.
type Request struct {
	raw    *http.Request
	params map[string]string

	bodyConsumed bool
	maxBodySize  int64
}

// Raw returns the underlying *http.Request for interop with stdlib and
// third-party middleware that expect one. Treat it as read-only; use the
// Context/Request accessors to mutate request-scoped state.
func (r *Request) Raw() *http.Request { return r.raw }

// Method returns the HTTP method, upper-cased by the host's HTTP layer.
func (r *Request) Method() string { return r.raw.Method }

// Path returns the request URI's path component.
func (r *Request) Path() string { return r.raw.URL.Path }

// Header returns the joined value of a request header, or "" if absent
// (§4.5).
func (r *Request) Header(name string) string {
	return strings.Join(r.raw.Header.Values(name), ", ")
}

// Cookie returns the named cookie's value, or "" if absent.
func (r *Request) Cookie(name string) string {
	c, err := r.raw.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// RemoteIP returns the direct peer address (no trusted-proxy resolution),
// stripped of its port.
func (r *Request) RemoteIP() string {
	host, _, err := net.SplitHostPort(r.raw.RemoteAddr)
	if err != nil {
		return r.raw.RemoteAddr
	}
	return host
}

// TLS returns the connection's TLS state, or nil for a cleartext request.
func (r *Request) TLS() *tls.ConnectionState { return r.raw.TLS }

// AllParams returns a copy of every extracted path parameter.
func (r *Request) AllParams() map[string]string {
	out := make(map[string]string, len(r.params))
	for k, v := range r.params {
		out[k] = v
	}
	return out
}

// BodyBytes reads and returns the entire request body, consuming it.
// Reading more than maxBodySize (if configured) fails with
// ErrBodyTooLarge; reading after the body has already been consumed
// fails with ErrBodyAlreadyConsumed (§4.5, §5).
func (r *Request) BodyBytes() ([]byte, error) {
	stream, err := r.BodyStream()
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if ok := asMaxBytesError(err, &tooLarge); ok {
			return nil, fmt.Errorf("%w: %v", ErrBodyTooLarge, err)
		}
		return nil, err
	}
	return data, nil
}

// BodyString is a convenience wrapper around BodyBytes.
func (r *Request) BodyString() (string, error) {
	b, err := r.BodyBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BodyStream returns the request body as a lazy byte stream and marks it
// consumed. A second call, or a call after BodyBytes/BodyString, fails
// with ErrBodyAlreadyConsumed.
func (r *Request) BodyStream() (io.ReadCloser, error) {
	if r.bodyConsumed {
		return nil, ErrBodyAlreadyConsumed
	}
	r.bodyConsumed = true
	if r.raw.Body == nil {
		return http.NoBody, nil
	}
	if r.maxBodySize > 0 {
		r.raw.Body = http.MaxBytesReader(nil, r.raw.Body, r.maxBodySize)
	}
	return r.raw.Body, nil
}

// BodyConsumed reports whether the body has already been read.
func (r *Request) BodyConsumed() bool { return r.bodyConsumed }

func asMaxBytesError(err error, target **http.MaxBytesError) bool {
	for err != nil {
		if mbe, ok := err.(*http.MaxBytesError); ok {
			*target = mbe
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}

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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBodyReadOnce(t *testing.T) {
	raw := httptest.NewRequest("POST", "/x", strings.NewReader("hello"))
	r := &Request{raw: raw}

	b, err := r.BodyBytes()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	_, err = r.BodyBytes()
	assert.ErrorIs(t, err, ErrBodyAlreadyConsumed)
}

func TestRequestBodyStreamThenBytesFails(t *testing.T) {
	raw := httptest.NewRequest("POST", "/x", strings.NewReader("hello"))
	r := &Request{raw: raw}

	_, err := r.BodyStream()
	require.NoError(t, err)

	_, err = r.BodyBytes()
	assert.ErrorIs(t, err, ErrBodyAlreadyConsumed)
}

func TestRequestBodyTooLarge(t *testing.T) {
	raw := httptest.NewRequest("POST", "/x", strings.NewReader("this is definitely too long"))
	r := &Request{raw: raw, maxBodySize: 4}

	_, err := r.BodyBytes()
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestRequestRemoteIPStripsPort(t *testing.T) {
	raw := httptest.NewRequest("GET", "/x", nil)
	raw.RemoteAddr = "203.0.113.7:54321"
	r := &Request{raw: raw}
	assert.Equal(t, "203.0.113.7", r.RemoteIP())
}

func TestRequestHeaderAndCookie(t *testing.T) {
	raw := httptest.NewRequest("GET", "/x", nil)
	raw.Header.Set("X-Test", "value")
	raw.AddCookie(&http.Cookie{Name: "session", Value: "abc123"})
	r := &Request{raw: raw}

	assert.Equal(t, "value", r.Header("X-Test"))
	assert.Equal(t, "", r.Header("X-Missing"))
	assert.Equal(t, "abc123", r.Cookie("session"))
	assert.Equal(t, "", r.Cookie("missing"))
}

func TestRequestAllParamsIsCopy(t *testing.T) {
	r := &Request{params: map[string]string{"id": "1"}}
	cp := r.AllParams()
	cp["id"] = "2"
	assert.Equal(t, "1", r.params["id"])
}

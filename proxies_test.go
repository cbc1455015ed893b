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
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileTrustedProxies(t *testing.T) {
	cfg, err := compileTrustedProxies([]string{"10.0.0.1", "192.168.0.0/16"})
	require.NoError(t, err)
	assert.True(t, cfg.isTrusted("10.0.0.1"))
	assert.True(t, cfg.isTrusted("192.168.5.5"))
	assert.False(t, cfg.isTrusted("8.8.8.8"))
}

func TestCompileTrustedProxiesInvalidEntry(t *testing.T) {
	_, err := compileTrustedProxies([]string{"not-an-ip"})
	assert.ErrorIs(t, err, ErrInvalidTrustedProxy)
}

func TestResolveClientIPUntrustedPeerIgnoresHeaders(t *testing.T) {
	e := New(WithTrustedProxies("10.0.0.1"))
	require.NoError(t, e.Build())

	raw := httptest.NewRequest("GET", "/x", nil)
	raw.RemoteAddr = "8.8.8.8:1234"
	raw.Header.Set("X-Forwarded-For", "1.2.3.4")
	r := &Request{raw: raw}

	assert.Equal(t, "8.8.8.8", e.resolveClientIP(r))
}

func TestResolveClientIPTrustedPeerUsesForwardedFor(t *testing.T) {
	e := New(WithTrustedProxies("10.0.0.1"))
	require.NoError(t, e.Build())

	raw := httptest.NewRequest("GET", "/x", nil)
	raw.RemoteAddr = "10.0.0.1:1234"
	raw.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	r := &Request{raw: raw}

	assert.Equal(t, "203.0.113.9", e.resolveClientIP(r))
}

func TestResolveClientIPTrustedPlatformTakesPriority(t *testing.T) {
	e := New(WithTrustedProxies("10.0.0.1"), WithTrustedPlatform("CF-Connecting-IP"))
	require.NoError(t, e.Build())

	raw := httptest.NewRequest("GET", "/x", nil)
	raw.RemoteAddr = "10.0.0.1:1234"
	raw.Header.Set("CF-Connecting-IP", "198.51.100.2")
	raw.Header.Set("X-Forwarded-For", "203.0.113.9")
	r := &Request{raw: raw}

	assert.Equal(t, "198.51.100.2", e.resolveClientIP(r))
}

func TestResolveClientIPWithoutProxyConfigReturnsDirect(t *testing.T) {
	e := New()
	require.NoError(t, e.Build())

	raw := httptest.NewRequest("GET", "/x", nil)
	raw.RemoteAddr = "203.0.113.9:1234"
	r := &Request{raw: raw}

	assert.Equal(t, "203.0.113.9", e.resolveClientIP(r))
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseStatusFailsAfterFlush(t *testing.T) {
	r := newResponse(httptest.NewRecorder())
	_, err := r.Write([]byte("x"))
	require.NoError(t, err)

	err = r.Status(http.StatusTeapot)
	assert.ErrorIs(t, err, ErrResponseClosed)
}

func TestResponseWriteAfterCloseIsNoop(t *testing.T) {
	rec := httptest.NewRecorder()
	r := newResponse(rec)
	r.Close()

	n, err := r.Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, rec.Body.String())
}

func TestResponseCloseIdempotent(t *testing.T) {
	r := newResponse(httptest.NewRecorder())
	r.Close()
	assert.NotPanics(t, func() { r.Close() })
	assert.True(t, r.IsClosed())
}

func TestResponseBytesWrittenTracksWrites(t *testing.T) {
	r := newResponse(httptest.NewRecorder())
	r.Write([]byte("hello"))
	r.Write([]byte(" world"))
	assert.EqualValues(t, len("hello world"), r.BytesWritten())
}

func TestResponseDefaultStatusOK(t *testing.T) {
	rec := httptest.NewRecorder()
	r := newResponse(rec)
	r.flush()
	assert.Equal(t, http.StatusOK, rec.Code)
}

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
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// newRequestID produces a request identifier (§4.8 step 1). When
// features.enableSecureRequestIds is set, it uses a random (v4) UUID;
// otherwise a cheaper 16-byte crypto/rand hex token, grounded on the
// corpus's requestid.generateRandomID.
func (e *Engine) newRequestID() string {
	if e.config.enableSecureRequestIds {
		return uuid.New().String()
	}
	return generateRandomID()
}

func generateRandomID() string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is broken;
		// fall back to an all-zero ID rather than panicking the request.
		return hex.EncodeToString(buf[:])
	}
	return hex.EncodeToString(buf[:])
}

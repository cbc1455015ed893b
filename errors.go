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

import "errors"

// Sentinel errors for the core's error taxonomy. Concrete failures are
// produced by wrapping one of these with fmt.Errorf("%w: ...") so callers
// can test with errors.Is while still getting a useful message.
var (
	// Configuration errors (§7 ConfigurationError). Raised during route
	// registration or Build; fatal, never reach dispatch.
	ErrInvalidPattern          = errors.New("routed: invalid path pattern")
	ErrWildcardNotLast         = errors.New("routed: wildcard segment must be last")
	ErrMultipleWildcards       = errors.New("routed: pattern may contain at most one wildcard")
	ErrDuplicateParamName      = errors.New("routed: duplicate parameter name in pattern")
	ErrInvalidConstraint       = errors.New("routed: constraint regex failed to compile")
	ErrUnknownTypeTag          = errors.New("routed: unknown parameter type tag")
	ErrUnresolvedMiddlewareRef = errors.New("routed: unresolved middleware reference")
	ErrInvalidTrustedProxy     = errors.New("routed: invalid trusted proxy entry")
	ErrEngineAlreadyBuilt      = errors.New("routed: engine already built")
	ErrEngineNotBuilt          = errors.New("routed: engine not built")
	ErrRouteNotFound           = errors.New("routed: named route not found")
	ErrMissingRouteParam       = errors.New("routed: missing parameter for route reversal")

	// Request errors (§7 RequestError). Surfaced to handlers/middleware;
	// typically mapped to a 4xx by a thin collaborator, or left to the
	// handler to catch.
	ErrBodyAlreadyConsumed = errors.New("routed: request body already consumed")
	ErrBodyTooLarge        = errors.New("routed: request body exceeds maximum size")
	ErrResponseClosed      = errors.New("routed: response already closed")
	ErrDoubleNext          = errors.New("routed: next() invoked more than once by the same middleware")
	ErrParamMissing        = errors.New("routed: path parameter not found")
	ErrParamInvalid        = errors.New("routed: path parameter could not be decoded")

	// NotFoundError (§7): a domain-level "resource missing" a handler can
	// raise by panicking with it; the dispatcher maps it to 404 before flush.
	ErrNotFound = errors.New("routed: resource not found")
)

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePatternLiteralAndParam(t *testing.T) {
	pp, err := parsePattern("/users/{id:int}/posts/{slug}", nil, nil)
	require.NoError(t, err)
	require.Len(t, pp.segments, 4)

	assert.Equal(t, segLiteral, pp.segments[0].kind)
	assert.Equal(t, "users", pp.segments[0].literal)

	assert.Equal(t, segParam, pp.segments[1].kind)
	assert.Equal(t, "id", pp.segments[1].name)
	assert.Equal(t, TypeInt, pp.segments[1].typeTag)

	assert.Equal(t, segParam, pp.segments[3].kind)
	assert.Equal(t, TypeString, pp.segments[3].typeTag)
}

func TestParsePatternWildcardMustBeLast(t *testing.T) {
	_, err := parsePattern("/files/{*path}/more", nil, nil)
	assert.ErrorIs(t, err, ErrWildcardNotLast)
}

func TestParsePatternMultipleWildcards(t *testing.T) {
	_, err := parsePattern("/{*a}/{*b}", nil, nil)
	// the first wildcard not being last is caught first
	assert.Error(t, err)
}

func TestParsePatternDuplicateParamName(t *testing.T) {
	_, err := parsePattern("/users/{id}/friends/{id}", nil, nil)
	assert.ErrorIs(t, err, ErrDuplicateParamName)
}

func TestParsePatternRequiresLeadingSlash(t *testing.T) {
	_, err := parsePattern("users/{id}", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestParsePatternUnknownTypeTag(t *testing.T) {
	_, err := parsePattern("/users/{id:binary}", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownTypeTag)
}

func TestParsePatternCustomType(t *testing.T) {
	customTypes := map[string]customTypeValidator{
		"sku": func(v string) bool { return len(v) == 6 },
	}
	pp, err := parsePattern("/items/{code:sku}", nil, customTypes)
	require.NoError(t, err)
	assert.True(t, pp.segments[1].matches("ABC123", customTypes))
	assert.False(t, pp.segments[1].matches("AB", customTypes))
}

func TestParsePatternConstraintAnchored(t *testing.T) {
	pp, err := parsePattern("/users/{id}", map[string]string{"id": "[0-9]+"}, nil)
	require.NoError(t, err)
	seg := pp.segments[1]
	assert.True(t, seg.constraint.MatchString("123"))
	assert.False(t, seg.constraint.MatchString("abc123"))
}

func TestParsePatternInvalidConstraint(t *testing.T) {
	_, err := parsePattern("/users/{id}", map[string]string{"id": "("}, nil)
	assert.ErrorIs(t, err, ErrInvalidConstraint)
}

func TestTypeMatches(t *testing.T) {
	assert.True(t, typeMatches(TypeInt, "-42"))
	assert.False(t, typeMatches(TypeInt, "4.2"))
	assert.True(t, typeMatches(TypeUint, "42"))
	assert.False(t, typeMatches(TypeUint, "-42"))
	assert.True(t, typeMatches(TypeSlug, "hello-world_1"))
	assert.False(t, typeMatches(TypeSlug, "hello world"))
	assert.True(t, typeMatches(TypeUUID, "550e8400-e29b-41d4-a716-446655440000"))
	assert.False(t, typeMatches(TypeUUID, "not-a-uuid"))
	assert.True(t, typeMatches(TypeEmail, "a@b.com"))
	assert.False(t, typeMatches(TypeEmail, "not-an-email"))
}

func TestSpecificityOrdering(t *testing.T) {
	literal := PathSegment{kind: segLiteral}
	typedParam := PathSegment{kind: segParam, typeTag: TypeInt}
	untypedParam := PathSegment{kind: segParam, typeTag: TypeString}
	wildcard := PathSegment{kind: segWildcard}

	assert.Greater(t, literal.specificity(), typedParam.specificity())
	assert.Greater(t, typedParam.specificity(), untypedParam.specificity())
	assert.Greater(t, untypedParam.specificity(), wildcard.specificity())
}

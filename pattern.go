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
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TypeTag names the built-in parameter types a path segment can be
// constrained to. The zero value "" is treated the same as TypeString.
type TypeTag string

const (
	TypeString TypeTag = "string"
	TypeInt    TypeTag = "int"
	TypeUint   TypeTag = "uint"
	TypeSlug   TypeTag = "slug"
	TypeEmail  TypeTag = "email"
	TypeUUID   TypeTag = "uuid"
)

var (
	slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	// emailPattern is the practical RFC-5322 subset: local@domain.tld, no
	// comments, no quoted strings, no IP-literal domains.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?)+$`)
)

// customTypeValidator is the shape of a custom type tag registered on an
// Engine via RegisterType.
type customTypeValidator func(value string) bool

// typeMatches reports whether value satisfies the built-in type tag. An
// unrecognized tag is handled by the caller against the custom-type
// registry; typeMatches itself never sees one.
func typeMatches(tag TypeTag, value string) bool {
	switch tag {
	case "", TypeString:
		return value != ""
	case TypeInt:
		if value == "" {
			return false
		}
		_, err := strconv.ParseInt(value, 10, 64)
		return err == nil
	case TypeUint:
		if value == "" {
			return false
		}
		_, err := strconv.ParseUint(value, 10, 64)
		return err == nil
	case TypeSlug:
		return slugPattern.MatchString(value)
	case TypeUUID:
		return uuidPattern.MatchString(value)
	case TypeEmail:
		return emailPattern.MatchString(value)
	default:
		return false
	}
}

// segmentKind discriminates the three shapes a PathSegment can take.
type segmentKind uint8

const (
	segLiteral segmentKind = iota
	segParam
	segWildcard
)

// PathSegment is one `/`-separated token of a PathPattern: a literal, a
// named (optionally typed) parameter, or a trailing wildcard.
type PathSegment struct {
	kind       segmentKind
	literal    string
	name       string
	typeTag    TypeTag
	customType string         // set when typeTag names a registered custom type
	constraint *regexp.Regexp // per-route constraint, anchored; nil if none
}

// specificity orders segments for sibling disambiguation: literal is most
// specific, then typed/constrained params, then untyped params, then
// wildcard (§4.1).
func (s PathSegment) specificity() int {
	switch s.kind {
	case segLiteral:
		return 3
	case segParam:
		if s.typeTag != "" && s.typeTag != TypeString || s.constraint != nil {
			return 2
		}
		return 1
	default:
		return 0
	}
}

// PathPattern is a parsed, ordered sequence of PathSegment values.
type PathPattern struct {
	raw          string
	segments     []PathSegment
	hasWildcard  bool
	staticPrefix string
}

// String returns the original pattern text the PathPattern was parsed from.
func (p PathPattern) String() string { return p.raw }

// parsePattern parses a slash-separated route pattern into a PathPattern.
// constraints supplies an additional per-parameter regex, independent of
// any inline type tag; it is anchored with ^…$ if not already anchored.
func parsePattern(pattern string, constraints map[string]string, customTypes map[string]customTypeValidator) (PathPattern, error) {
	if pattern == "" || pattern[0] != '/' {
		return PathPattern{}, fmt.Errorf("%w: pattern %q must start with '/'", ErrInvalidPattern, pattern)
	}

	trimmed := strings.TrimPrefix(pattern, "/")
	var rawSegments []string
	if trimmed != "" {
		rawSegments = strings.Split(trimmed, "/")
	}

	pp := PathPattern{raw: pattern}
	seen := map[string]bool{}
	staticDone := false

	for i, raw := range rawSegments {
		seg, err := parseSegment(raw, constraints, customTypes)
		if err != nil {
			return PathPattern{}, err
		}

		if seg.kind == segWildcard {
			if pp.hasWildcard {
				return PathPattern{}, fmt.Errorf("%w: pattern %q", ErrMultipleWildcards, pattern)
			}
			if i != len(rawSegments)-1 {
				return PathPattern{}, fmt.Errorf("%w: pattern %q", ErrWildcardNotLast, pattern)
			}
			pp.hasWildcard = true
		}

		if seg.kind == segParam || seg.kind == segWildcard {
			if seen[seg.name] {
				return PathPattern{}, fmt.Errorf("%w: %q in pattern %q", ErrDuplicateParamName, seg.name, pattern)
			}
			seen[seg.name] = true
			staticDone = true
		} else if !staticDone {
			if pp.staticPrefix != "" {
				pp.staticPrefix += "/"
			}
			pp.staticPrefix += seg.literal
		}

		pp.segments = append(pp.segments, seg)
	}

	return pp, nil
}

func parseSegment(raw string, constraints map[string]string, customTypes map[string]customTypeValidator) (PathSegment, error) {
	if raw == "" {
		return PathSegment{kind: segLiteral, literal: ""}, nil
	}
	if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
		return PathSegment{kind: segLiteral, literal: raw}, nil
	}

	inner := raw[1 : len(raw)-1]
	if inner == "" {
		return PathSegment{}, fmt.Errorf("%w: empty parameter name in %q", ErrInvalidPattern, raw)
	}

	if strings.HasPrefix(inner, "*") {
		name := inner[1:]
		if name == "" {
			return PathSegment{}, fmt.Errorf("%w: empty wildcard name in %q", ErrInvalidPattern, raw)
		}
		return PathSegment{kind: segWildcard, name: name}, nil
	}

	name, typeTag := inner, TypeString
	if idx := strings.IndexByte(inner, ':'); idx >= 0 {
		name = inner[:idx]
		typeTag = TypeTag(inner[idx+1:])
	}
	if name == "" {
		return PathSegment{}, fmt.Errorf("%w: empty parameter name in %q", ErrInvalidPattern, raw)
	}

	seg := PathSegment{kind: segParam, name: name, typeTag: typeTag}

	switch typeTag {
	case "", TypeString, TypeInt, TypeUint, TypeSlug, TypeEmail, TypeUUID:
	default:
		if customTypes == nil || customTypes[string(typeTag)] == nil {
			return PathSegment{}, fmt.Errorf("%w: %q", ErrUnknownTypeTag, typeTag)
		}
		seg.customType = string(typeTag)
	}

	if raw, ok := constraints[name]; ok {
		anchored := raw
		if !strings.HasPrefix(anchored, "^") {
			anchored = "^" + anchored
		}
		if !strings.HasSuffix(anchored, "$") {
			anchored += "$"
		}
		re, err := regexp.Compile(anchored)
		if err != nil {
			return PathSegment{}, fmt.Errorf("%w: param %q: %v", ErrInvalidConstraint, name, err)
		}
		seg.constraint = re
	}

	return seg, nil
}

// matches reports whether value satisfies this segment's type tag and
// constraint. Only meaningful for segParam segments.
func (s PathSegment) matches(value string, customTypes map[string]customTypeValidator) bool {
	if s.customType != "" {
		fn := customTypes[s.customType]
		if fn == nil || !fn(value) {
			return false
		}
	} else if !typeMatches(s.typeTag, value) {
		return false
	}
	if s.constraint != nil && !s.constraint.MatchString(value) {
		return false
	}
	return true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"strings"
)

// Coerce converts raw into the representation of t:
//   - TypeString: raw verbatim (string);
//   - TypeBoolean: [ParseBool] (bool), never fails;
//   - TypeInteger: base-10 32-bit integer (int), surrounding whitespace
//     ignored;
//   - TypeList: [ParseList] ([]string), never fails.
//
// Only TypeInteger can fail, with an [*InvalidValueError] whose Key is empty;
// the resolver fills it in.
func Coerce(raw string, t ValueType) (any, error) {
	switch t {
	case TypeBoolean:
		return ParseBool(raw), nil
	case TypeInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			return nil, &InvalidValueError{Raw: raw, Type: t, Err: err}
		}
		return int(n), nil
	case TypeList:
		return ParseList(raw), nil
	default:
		return raw, nil
	}
}

// ParseBool reports whether raw equals "true", ignoring case.
// Any other input, including surrounding whitespace, is false.
func ParseBool(raw string) bool {
	return strings.EqualFold(raw, "true")
}

// ParseList splits raw on commas, trims every element and drops the ones
// left empty. Order and duplicates are kept. The result is never nil.
//
//	ParseList("  foo,bar , baz") // [foo bar baz]
//	ParseList("foo,,bar")        // [foo bar]
func ParseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

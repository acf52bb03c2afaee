// ============================================================================
// strvec - Vectorized string primitives
// ============================================================================
//
// Package:     coerce
// Description: Converts decoded document values and command line arguments
//              into validated sequences for the vector operations
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package coerce

import (
	"math"
	"strconv"

	mdwerrors "github.com/msto63/strvec/foundation/core/errors"
	"github.com/msto63/strvec/foundation/utils/stringx"
)

// ToStringSeq converts a decoded value into a StringSeq. A list becomes one
// element per entry, a scalar a single element and nil an empty sequence.
// nil list entries are NA. Numbers and booleans are formatted; nested
// lists and maps fail with CodeTypeMismatch.
func ToStringSeq(raw any) (stringx.StringSeq, error) {
	items, ok := asList(raw)
	if !ok {
		items = []any{raw}
	}

	out := make(stringx.StringSeq, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		s, ok := scalarString(item)
		if !ok {
			return nil, mdwerrors.TypeError(mdwerrors.ModuleCoerce, "to_string_seq", i, item, "string")
		}
		out[i] = stringx.Some(s)
	}
	return out, nil
}

// ToIntSeq converts a decoded value into an IntSeq. Floats must be whole
// numbers, strings must parse as integers and booleans map to 0 and 1.
func ToIntSeq(raw any) (stringx.IntSeq, error) {
	items, ok := asList(raw)
	if !ok {
		items = []any{raw}
	}

	out := make(stringx.IntSeq, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		n, ok := scalarInt(item)
		if !ok {
			return nil, mdwerrors.TypeError(mdwerrors.ModuleCoerce, "to_int_seq", i, item, "integer")
		}
		out[i] = stringx.Some(n)
	}
	return out, nil
}

// ParseStrings converts command line arguments; arguments equal to na are
// NA. An empty na disables the marker.
func ParseStrings(args []string, na string) stringx.StringSeq {
	out := make(stringx.StringSeq, len(args))
	for i, arg := range args {
		if na != "" && arg == na {
			continue
		}
		out[i] = stringx.Some(arg)
	}
	return out
}

// ParseInts converts command line arguments into counts; arguments equal
// to na are NA.
func ParseInts(args []string, na string) (stringx.IntSeq, error) {
	out := make(stringx.IntSeq, len(args))
	for i, arg := range args {
		if na != "" && arg == na {
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, mdwerrors.TypeError(mdwerrors.ModuleCoerce, "parse_ints", i, arg, "integer").
				WithDetail("value", arg)
		}
		out[i] = stringx.Some(n)
	}
	return out, nil
}

func asList(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case nil:
		return []any{}, true
	case []any:
		return v, true
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, true
	case []int:
		items := make([]any, len(v))
		for i, n := range v {
			items[i] = n
		}
		return items, true
	case []map[string]any:
		items := make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
		return items, true
	default:
		return nil, false
	}
}

func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		if x {
			return "TRUE", true
		}
		return "FALSE", true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'g', 15, 64), true
	default:
		return "", false
	}
}

func scalarInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case uint64:
		if x > math.MaxInt {
			return 0, false
		}
		return int(x), true
	case float64:
		if x != math.Trunc(x) || x < math.MinInt || x >= math.MaxInt {
			return 0, false
		}
		return int(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.Atoi(x)
		return n, err == nil
	default:
		return 0, false
	}
}

// File: compare.go
// Title: Code Point Comparison and Ordering
// Description: Vectorized three-way comparison, relational operators and
//              stable ordering by code point. NA handling is explicit.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package stringx

import (
	"slices"
	"strings"

	"github.com/msto63/strvec/foundation/core/errors"
)

// CompareOp is a relational operator for CompareWith
type CompareOp int

const (
	OpEqual CompareOp = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

// String returns the operator symbol
func (op CompareOp) String() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// ParseCompareOp accepts a symbol (==, !=, <, <=, >, >=) or a mnemonic
// (eq, ne, lt, le, gt, ge).
func ParseCompareOp(s string) (CompareOp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "==", "eq":
		return OpEqual, nil
	case "!=", "ne":
		return OpNotEqual, nil
	case "<", "lt":
		return OpLess, nil
	case "<=", "le":
		return OpLessEqual, nil
	case ">", "gt":
		return OpGreater, nil
	case ">=", "ge":
		return OpGreaterEqual, nil
	default:
		return OpEqual, errors.InputError(errors.ModuleStringx, "parse_compare_op", s, "one of == != < <= > >=")
	}
}

func (op CompareOp) holds(cmp int) bool {
	switch op {
	case OpEqual:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	case OpLess:
		return cmp < 0
	case OpLessEqual:
		return cmp <= 0
	case OpGreater:
		return cmp > 0
	case OpGreaterEqual:
		return cmp >= 0
	default:
		panic("stringx: invalid CompareOp")
	}
}

// Compare returns -1, 0 or 1 for every element pair, recycling the shorter
// operand. Byte order equals code point order for valid UTF-8.
func Compare(a, b StringSeq, opts ...Option) IntSeq {
	out := make(IntSeq, 0)
	compareEach(a, b, newOptions(opts), func(i int, cmp Value[int]) {
		out = append(out, cmp)
	})
	return out
}

// CompareWith evaluates a op b for every element pair
func CompareWith(a, b StringSeq, op CompareOp, opts ...Option) LogicalSeq {
	out := make(LogicalSeq, 0)
	compareEach(a, b, newOptions(opts), func(i int, cmp Value[int]) {
		if !cmp.Valid {
			out = append(out, Missing[bool]())
			return
		}
		out = append(out, Some(op.holds(cmp.V)))
	})
	return out
}

func compareEach(a, b StringSeq, o *options, emit func(i int, cmp Value[int])) {
	plan := NewPlan(len(a), len(b))
	if plan.Empty() {
		return
	}
	if plan.Mismatch() {
		o.warnRecycling(opCompare, plan)
	}
	for i := 0; i < plan.N; i++ {
		x, y := a[plan.Index(0, i)], b[plan.Index(1, i)]
		if !x.Valid || !y.Valid {
			emit(i, Missing[int]())
			continue
		}
		emit(i, Some(strings.Compare(x.V, y.V)))
	}
}

// NAPlacement controls where Order and Sort put missing elements
type NAPlacement int

const (
	NALast NAPlacement = iota
	NAFirst
	NARemove
)

// ParseNAPlacement accepts last, first or remove
func ParseNAPlacement(s string) (NAPlacement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "last", "":
		return NALast, nil
	case "first":
		return NAFirst, nil
	case "remove":
		return NARemove, nil
	default:
		return NALast, errors.InputError(errors.ModuleStringx, "parse_na_placement", s, "one of last, first, remove")
	}
}

// Order returns the 0-based positions of strs in sorted order. Equal
// elements keep their input order, also when decreasing is set.
func Order(strs StringSeq, decreasing bool, na NAPlacement) []int {
	present := make([]int, 0, len(strs))
	var missing []int
	for i, s := range strs {
		if s.Valid {
			present = append(present, i)
		} else {
			missing = append(missing, i)
		}
	}

	slices.SortStableFunc(present, func(x, y int) int {
		c := strings.Compare(strs[x].V, strs[y].V)
		if decreasing {
			return -c
		}
		return c
	})

	switch na {
	case NAFirst:
		return append(missing, present...)
	case NARemove:
		return present
	default:
		return append(present, missing...)
	}
}

// Sort returns strs in the order given by Order
func Sort(strs StringSeq, decreasing bool, na NAPlacement) StringSeq {
	order := Order(strs, decreasing, na)
	out := make(StringSeq, len(order))
	for i, idx := range order {
		out[i] = strs[idx]
	}
	return out
}

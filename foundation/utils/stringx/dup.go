// File: dup.go
// Title: String Duplication
// Description: Dup repeats every string a per-element number of times,
//              reusing already written repetitions when consecutive elements
//              share the same backing string.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package stringx

import (
	"unsafe"
)

// Dup returns strs[i] repeated counts[i] times for every element, recycling
// the shorter operand. NA strings, NA counts and negative counts yield NA;
// a zero count or an empty string yields "".
//
// The result has length NewPlan(len(strs), len(counts)).N.
func Dup(strs StringSeq, counts IntSeq, opts ...Option) (StringSeq, error) {
	o := newOptions(opts)

	ns, nc := len(strs), len(counts)
	plan := NewPlan(ns, nc)
	if plan.Empty() {
		return StringSeq{}, nil
	}
	if plan.Mismatch() {
		o.warnRecycling(opDup, plan)
	}

	size := 0
	for i := 0; i < plan.N; i++ {
		s, c := strs[i%ns], counts[i%nc]
		if !s.Valid || !c.Valid || c.V <= 0 {
			continue
		}
		need := mulSize(len(s.V), c.V)
		if need == overflowed {
			size = overflowed
			break
		}
		if need > size {
			size = need
		}
	}

	sc, err := acquire(o, opDup, size)
	if err != nil {
		return nil, err
	}
	defer sc.release()

	out := make(StringSeq, plan.N)

	// Output positions are visited grouped by source string so that equal
	// sources are adjacent. buf[:filled] always holds whole repetitions of
	// last.
	var last string
	filled := 0
	for k := 0; k < ns; k++ {
		s := strs[k]
		for i := k; i < plan.N; i += ns {
			c := counts[i%nc]
			if !s.Valid || !c.Valid || c.V < 0 {
				out[i] = Missing[string]()
				continue
			}
			need := len(s.V) * c.V
			if need == 0 {
				out[i] = Some("")
				continue
			}
			if !sameString(s.V, last) {
				last = s.V
				filled = sc.writeAt(0, s.V)
			}
			filled = sc.extend(filled, need)
			out[i] = Some(string(sc.buf[:need]))
		}
	}
	return out, nil
}

// sameString reports whether a and b share backing data and length
func sameString(a, b string) bool {
	return len(a) == len(b) && len(a) > 0 && unsafe.StringData(a) == unsafe.StringData(b)
}

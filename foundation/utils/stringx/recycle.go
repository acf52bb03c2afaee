// File: recycle.go
// Title: Length Recycling
// Description: Plan computes the common result length of several operands
//              and maps result positions back to operand positions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package stringx

// Plan is the recycling plan of one call. N is the result length: the
// largest operand length, or 0 when any operand is empty.
type Plan struct {
	N       int
	lengths []int
}

// NewPlan returns the plan for operands of the given lengths.
// Without any length the plan is empty.
func NewPlan(lengths ...int) Plan {
	if len(lengths) == 0 {
		return Plan{}
	}
	n := 0
	for _, l := range lengths {
		if l == 0 {
			return Plan{lengths: lengths}
		}
		if l > n {
			n = l
		}
	}
	return Plan{N: n, lengths: lengths}
}

// Empty reports whether the plan produces no elements
func (p Plan) Empty() bool {
	return p.N == 0
}

// Index returns the position in operand k used for result element i.
// It must not be called on an empty plan.
func (p Plan) Index(k, i int) int {
	return i % p.lengths[k]
}

// Mismatch reports whether some operand length does not divide N
func (p Plan) Mismatch() bool {
	if p.N == 0 {
		return false
	}
	for _, l := range p.lengths {
		if p.N%l != 0 {
			return true
		}
	}
	return false
}

// Lengths returns a copy of the operand lengths
func (p Plan) Lengths() []int {
	out := make([]int, len(p.lengths))
	copy(out, p.lengths)
	return out
}

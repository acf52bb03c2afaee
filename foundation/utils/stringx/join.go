// File: join.go
// Title: Element-wise Concatenation
// Description: Join2 and Join concatenate sequences element by element under
//              length recycling, writing into one scratch buffer per call.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package stringx

// Join2 returns a[i] + b[i] for every element, recycling the shorter
// operand. An element is NA when either operand is NA.
//
// An empty a returns b unchanged and an empty b returns a unchanged.
func Join2(a, b StringSeq, opts ...Option) (StringSeq, error) {
	if len(a) == 0 {
		return b, nil
	}
	if len(b) == 0 {
		return a, nil
	}
	return join(opJoin2, []StringSeq{a, b}, newOptions(opts))
}

// Join concatenates any number of sequences element by element, left to
// right, under one recycling plan. Empty sequences are skipped; with no
// sequence left the result is empty and a single remaining sequence is
// returned unchanged.
func Join(seqs []StringSeq, opts ...Option) (StringSeq, error) {
	operands := make([]StringSeq, 0, len(seqs))
	for _, seq := range seqs {
		if len(seq) > 0 {
			operands = append(operands, seq)
		}
	}

	switch len(operands) {
	case 0:
		return StringSeq{}, nil
	case 1:
		return operands[0], nil
	case 2:
		return Join2(operands[0], operands[1], opts...)
	}
	return join(opJoin, operands, newOptions(opts))
}

// join requires at least two non-empty operands
func join(operation string, seqs []StringSeq, o *options) (StringSeq, error) {
	lengths := make([]int, len(seqs))
	for k, seq := range seqs {
		lengths[k] = len(seq)
	}
	plan := NewPlan(lengths...)
	if plan.Mismatch() {
		o.warnRecycling(operation, plan)
	}

	size := 0
	for i := 0; i < plan.N && size != overflowed; i++ {
		total := 0
		for k, seq := range seqs {
			total = addSize(total, len(seq[plan.Index(k, i)].V))
		}
		if total == overflowed || total > size {
			size = total
		}
	}

	sc, err := acquire(o, operation, size)
	if err != nil {
		return nil, err
	}
	defer sc.release()

	out := make(StringSeq, plan.N)
	head, rest := seqs[0], seqs[1:]

	// The head element is written once per head position, and only when a
	// result element actually uses it. Each result then appends the
	// remaining operands after it.
	for k := range head {
		h := head[k]
		written := false
		for i := k; i < plan.N; i += len(head) {
			if !h.Valid || missingAt(rest, i) {
				out[i] = Missing[string]()
				continue
			}
			if !written {
				sc.writeAt(0, h.V)
				written = true
			}
			n := len(h.V)
			for _, seq := range rest {
				n += sc.writeAt(n, seq[i%len(seq)].V)
			}
			out[i] = Some(string(sc.buf[:n]))
		}
	}
	return out, nil
}

func missingAt(seqs []StringSeq, i int) bool {
	for _, seq := range seqs {
		if !seq[i%len(seq)].Valid {
			return true
		}
	}
	return false
}

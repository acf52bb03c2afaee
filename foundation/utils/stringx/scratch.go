// File: scratch.go
// Title: Scratch Buffer
// Description: Per-call byte buffer sized once for the whole batch, with
//              overflow-checked size arithmetic and limit enforcement.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"math"

	mdwerror "github.com/msto63/strvec/foundation/core/error"
	"github.com/msto63/strvec/foundation/core/errors"
)

// overflowed marks a size computation that did not fit into an int
const overflowed = -1

type scratch struct {
	buf   []byte
	stats *Stats
}

// acquire allocates the scratch buffer for one call. size is the largest
// output the call will write, or overflowed.
func acquire(o *options, operation string, size int) (sc *scratch, err error) {
	if size < 0 || size > o.maxBufferBytes {
		return nil, errors.ResourceError(errors.ModuleStringx, operation, size, o.maxBufferBytes)
	}

	defer func() {
		if r := recover(); r != nil {
			sc = nil
			err = errors.ResourceError(errors.ModuleStringx, operation, size, o.maxBufferBytes).
				WithSeverity(mdwerror.SeverityCritical).
				WithDetail("panic", fmt.Sprint(r))
		}
	}()

	sc = &scratch{buf: make([]byte, size), stats: o.stats}
	if sc.stats != nil {
		sc.stats.BufferBytes = size
		sc.stats.Allocations++
	}
	return sc, nil
}

// release drops the buffer. It is safe to call on a nil scratch.
func (sc *scratch) release() {
	if sc != nil {
		sc.buf = nil
	}
}

// writeAt copies s into the buffer at off and returns the bytes written
func (sc *scratch) writeAt(off int, s string) int {
	n := copy(sc.buf[off:], s)
	sc.count(n)
	return n
}

// extend doubles the periodic prefix buf[:filled] until it reaches need
// bytes. filled and need must both be multiples of the period.
func (sc *scratch) extend(filled, need int) int {
	for filled < need {
		n := copy(sc.buf[filled:need], sc.buf[:filled])
		sc.count(n)
		filled += n
	}
	return filled
}

func (sc *scratch) count(n int) {
	if sc.stats != nil {
		sc.stats.BytesCopied += n
	}
}

// addSize returns a+b, or overflowed when either operand already overflowed
// or the sum does not fit.
func addSize(a, b int) int {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return overflowed
	}
	return a + b
}

// mulSize returns a*b for non-negative operands, or overflowed
func mulSize(a, b int) int {
	if a < 0 || b < 0 {
		return overflowed
	}
	if a != 0 && b > math.MaxInt/a {
		return overflowed
	}
	return a * b
}

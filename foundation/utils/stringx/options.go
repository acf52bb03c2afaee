// File: options.go
// Title: Operation Options
// Description: Functional options shared by the vector operations: warning
//              sink, scratch buffer limit and allocation statistics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package stringx

import (
	"math"
)

// DefaultMaxBufferBytes is the largest scratch buffer a call may allocate
// unless WithMaxBufferBytes says otherwise.
const DefaultMaxBufferBytes = math.MaxInt32

const (
	opDup        = "dup"
	opJoin2      = "join2"
	opJoin       = "join"
	opFlatten    = "flatten"
	opFlattenSep = "flatten_sep"
	opLength     = "length"
	opCompare    = "compare"
)

// Stats receives buffer statistics of a single call. A Stats value must not
// be shared by concurrent calls.
type Stats struct {
	// BufferBytes is the size of the scratch buffer allocated by the call
	BufferBytes int
	// BytesCopied counts bytes written into the scratch buffer
	BytesCopied int
	// Allocations counts scratch buffer allocations
	Allocations int
}

// Option configures a single operation call
type Option func(*options)

type options struct {
	warner         Warner
	maxBufferBytes int
	stats          *Stats
}

// WithWarner sets the sink for soft warnings
func WithWarner(w Warner) Option {
	return func(o *options) {
		if w != nil {
			o.warner = w
		}
	}
}

// WithMaxBufferBytes limits the scratch buffer size. Values <= 0 select
// DefaultMaxBufferBytes.
func WithMaxBufferBytes(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxBufferBytes
		}
		o.maxBufferBytes = n
	}
}

// WithStats records buffer statistics into s. s is reset at the start of
// the call.
func WithStats(s *Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		warner:         discardWarner{},
		maxBufferBytes: DefaultMaxBufferBytes,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.stats != nil {
		*o.stats = Stats{}
	}
	return o
}

func (o *options) warn(w Warning) {
	o.warner.Warn(w)
}

func (o *options) warnRecycling(operation string, p Plan) {
	o.warn(Warning{
		Kind:      WarnRecyclingMismatch,
		Operation: operation,
		Message:   "longer object length is not a multiple of shorter object length",
		Details: map[string]interface{}{
			"lengths": p.Lengths(),
			"result":  p.N,
		},
	})
}

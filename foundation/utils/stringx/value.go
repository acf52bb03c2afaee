// File: value.go
// Title: Nullable Values and Sequences
// Description: Value wraps an element that may be missing (NA). StringSeq,
//              IntSeq and LogicalSeq are the sequence types consumed and
//              produced by the vector operations.
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
	"strings"
)

// Value is an element that is either present (Valid) or missing.
// The zero Value is missing.
type Value[T any] struct {
	V     T
	Valid bool
}

// Some returns a present value
func Some[T any](v T) Value[T] {
	return Value[T]{V: v, Valid: true}
}

// Missing returns the NA value of type T
func Missing[T any]() Value[T] {
	return Value[T]{}
}

// IsNA reports whether the value is missing
func (v Value[T]) IsNA() bool {
	return !v.Valid
}

// Get returns the value and whether it is present
func (v Value[T]) Get() (T, bool) {
	return v.V, v.Valid
}

// Or returns the value, or def when it is missing
func (v Value[T]) Or(def T) T {
	if !v.Valid {
		return def
	}
	return v.V
}

// String renders the value; missing values render as NA
func (v Value[T]) String() string {
	if !v.Valid {
		return "NA"
	}
	if s, ok := any(v.V).(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v.V)
}

// StringSeq is a sequence of strings that may contain NA
type StringSeq []Value[string]

// IntSeq is a sequence of integers that may contain NA
type IntSeq []Value[int]

// LogicalSeq is a sequence of booleans that may contain NA
type LogicalSeq []Value[bool]

// Strings builds a StringSeq without missing elements
func Strings(values ...string) StringSeq {
	seq := make(StringSeq, len(values))
	for i, v := range values {
		seq[i] = Some(v)
	}
	return seq
}

// Ints builds an IntSeq without missing elements
func Ints(values ...int) IntSeq {
	seq := make(IntSeq, len(values))
	for i, v := range values {
		seq[i] = Some(v)
	}
	return seq
}

// HasNA reports whether any element is missing
func (s StringSeq) HasNA() bool {
	for _, v := range s {
		if !v.Valid {
			return true
		}
	}
	return false
}

// Values returns the elements as plain strings, substituting na for NA
func (s StringSeq) Values(na string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = v.Or(na)
	}
	return out
}

// String renders the sequence as [e1 e2 ...]
func (s StringSeq) String() string {
	return renderSeq(s)
}

// String renders the sequence as [e1 e2 ...]
func (s IntSeq) String() string {
	return renderSeq(s)
}

// String renders the sequence as [e1 e2 ...]
func (s LogicalSeq) String() string {
	return renderSeq(s)
}

func renderSeq[T any](seq []Value[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}

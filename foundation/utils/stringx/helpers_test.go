// File: helpers_test.go
// Title: Test Helpers
// Description: Shorthand constructors for sequences with NA elements.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12

package stringx

// na marks a missing element in seq and iseq literals
const na = "\x00NA"

func seq(values ...string) StringSeq {
	out := make(StringSeq, len(values))
	for i, v := range values {
		if v != na {
			out[i] = Some(v)
		}
	}
	return out
}

// iseq builds an IntSeq; nil entries are NA
func iseq(values ...interface{}) IntSeq {
	out := make(IntSeq, len(values))
	for i, v := range values {
		if n, ok := v.(int); ok {
			out[i] = Some(n)
		}
	}
	return out
}

func lseq(values ...interface{}) LogicalSeq {
	out := make(LogicalSeq, len(values))
	for i, v := range values {
		if b, ok := v.(bool); ok {
			out[i] = Some(b)
		}
	}
	return out
}

// File: length.go
// Title: Element Sizes
// Description: Byte length, code point length and emptiness of every
//              element of a sequence.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package stringx

import (
	"unicode/utf8"
)

// NumBytes returns the byte length of every element
func NumBytes(strs StringSeq) IntSeq {
	out := make(IntSeq, len(strs))
	for i, s := range strs {
		if s.Valid {
			out[i] = Some(len(s.V))
		}
	}
	return out
}

// Length returns the number of code points of every element. Elements that
// are not valid UTF-8 yield NA, reported by a single WarnInvalidUTF8
// warning per call.
func Length(strs StringSeq, opts ...Option) IntSeq {
	out := make(IntSeq, len(strs))
	var invalid []int
	for i, s := range strs {
		if !s.Valid {
			continue
		}
		if !utf8.ValidString(s.V) {
			invalid = append(invalid, i)
			continue
		}
		out[i] = Some(utf8.RuneCountInString(s.V))
	}

	if len(invalid) > 0 {
		newOptions(opts).warn(Warning{
			Kind:      WarnInvalidUTF8,
			Operation: opLength,
			Message:   "invalid UTF-8 in input, length is NA",
			Details:   map[string]interface{}{"positions": invalid},
		})
	}
	return out
}

// IsEmpty reports for every element whether it has zero length
func IsEmpty(strs StringSeq) LogicalSeq {
	out := make(LogicalSeq, len(strs))
	for i, s := range strs {
		if s.Valid {
			out[i] = Some(len(s.V) == 0)
		}
	}
	return out
}

// MaxNumBytes returns the largest byte length among present elements, or
// -1 when there is none.
func MaxNumBytes(strs StringSeq) int {
	max := -1
	for _, s := range strs {
		if s.Valid && len(s.V) > max {
			max = len(s.V)
		}
	}
	return max
}

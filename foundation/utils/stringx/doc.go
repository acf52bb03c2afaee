// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides vectorized string primitives with
//              missing-value propagation, length recycling and single
//              scratch-buffer allocation per call.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-02-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-02-12 v0.3.0: Rebuilt around vectorized sequences (Dup, Join2, Join, Flatten)

// Package stringx provides vectorized string operations.
//
// Overview
//
// Every operation works on whole sequences. A sequence element is either a
// UTF-8 string or missing (NA); the empty string is a valid value and is never
// confused with NA. Results are fresh sequences owned by the caller.
//
// Key capabilities include:
//   - Dup: repeat every string a per-element number of times
//   - Join2 and Join: element-wise concatenation of two or more sequences
//   - Flatten and FlattenSep: concatenate a sequence into a single string
//   - NumBytes, Length, IsEmpty: per-element size predicates
//   - Compare, CompareWith, Order, Sort: code point ordering
//
// Recycling
//
// When operands have different lengths, the result has the length of the
// longest operand and shorter operands are cycled (element i of operand k is
// k[i mod len(k)]). If any operand is empty the result is empty. A length that
// does not divide the result length produces a WarnRecyclingMismatch warning;
// the call still succeeds.
//
// Missing values
//
// A result element is NA if any operand contributing to it is NA. Negative
// counts in Dup are treated as NA. A zero count or an empty string contributes
// zero bytes and yields "".
//
// Buffers
//
// Each call computes the largest output it can produce, checks it against the
// configured limit (WithMaxBufferBytes) and allocates one scratch buffer for
// the whole batch. Sizes that overflow or exceed the limit fail the call with
// a CodeResourceExhausted error; this is the only error the operations return.
// Buffers are never shared between calls, so all operations are safe for
// concurrent use.
//
// Warnings
//
// Soft conditions are reported through a Warner (WithWarner). The default
// drops them. WarningCollector gathers them, LogWarner writes them to a
// foundation logger and StrictWarner lets a caller treat them as failures.
//
// Usage Examples
//
//	out, err := stringx.Dup(stringx.Strings("ab", "c"), stringx.Ints(3, 2))
//	// out: ["ababab", "cc"]
//
//	var warnings stringx.WarningCollector
//	out, err = stringx.Join2(
//		stringx.Strings("a", "b", "c"),
//		stringx.Strings("x", "y"),
//		stringx.WithWarner(&warnings),
//	)
//	// out: ["ax", "by", "cx"], one recycling warning
package stringx

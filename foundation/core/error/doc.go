// Package error provides the structured error type used across strvec.
//
// Package: error
// Title: strvec Error Handling Framework
// Description: Structured errors with codes, severities, operation context,
//              details and stack traces. The type stays compatible with the
//              standard error interface so callers can use errors.As/Is.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-02-11 v0.2.0: Reduced to the codes used by the vector primitives and CLI
//
// Usage:
//
//	err := error.New("scratch buffer exceeds limit").
//		WithCode(error.CodeResourceExhausted).
//		WithOperation("stringx.Dup").
//		WithDetail("requested", size)
//
//	if error.HasCode(err, error.CodeResourceExhausted) {
//		// hard failure, nothing was produced
//	}
package error

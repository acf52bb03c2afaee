// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              vector primitives, the input coercion layer, configuration
//              loading and the command line front end.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-02-11 v0.2.0: Added resource, type and encoding codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Resource limits
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"

	// Input coercion
	CodeTypeMismatch  Code = "TYPE_MISMATCH"
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeEncodingError Code = "ENCODING_ERROR"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeResourceExhausted,
		CodeTypeMismatch, CodeInvalidFormat, CodeEncodingError,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeValueOutOfRange:
		return true
	}
	return false
}

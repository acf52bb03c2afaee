// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps them to
//              log levels when an error is written with LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-02-11 v0.2.0: Severity mapping for the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad input that the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure with a known workaround
	SeverityMedium

	// SeverityHigh indicates that an operation could not produce any result
	SeverityHigh

	// SeverityCritical indicates a broken installation or environment
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeResourceExhausted, CodeConfigError:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeTypeMismatch, CodeInvalidFormat,
		CodeEncodingError, CodeValidationFailed, CodeValueOutOfRange,
		CodeMissingConfig, CodeInvalidConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

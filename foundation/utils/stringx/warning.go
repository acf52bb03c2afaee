// File: warning.go
// Title: Soft Warnings
// Description: Warning channel for non-fatal conditions: recycling length
//              mismatch, multiple separators and invalid UTF-8. Provides a
//              collector, a logging sink and a strict sink.
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
	"sync"

	mdwerror "github.com/msto63/strvec/foundation/core/error"
	"github.com/msto63/strvec/foundation/core/log"
)

// WarningKind identifies a soft condition
type WarningKind int

const (
	// WarnRecyclingMismatch: an operand length does not divide the result length
	WarnRecyclingMismatch WarningKind = iota + 1

	// WarnMultipleSeparators: more than one separator given, the first is used
	WarnMultipleSeparators

	// WarnInvalidUTF8: an element is not valid UTF-8
	WarnInvalidUTF8
)

// String returns the string representation of the kind
func (k WarningKind) String() string {
	switch k {
	case WarnRecyclingMismatch:
		return "recycling_mismatch"
	case WarnMultipleSeparators:
		return "multiple_separators"
	case WarnInvalidUTF8:
		return "invalid_utf8"
	default:
		return "unknown"
	}
}

// Warning describes a soft condition. The operation that raised it still
// returns a result.
type Warning struct {
	Kind      WarningKind
	Operation string
	Message   string
	Details   map[string]interface{}
}

// String returns "operation: message"
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Operation, w.Message)
}

// Warner receives warnings. Operations call Warn synchronously on the
// calling goroutine.
type Warner interface {
	Warn(w Warning)
}

// WarnerFunc adapts a function to the Warner interface
type WarnerFunc func(w Warning)

// Warn calls f(w)
func (f WarnerFunc) Warn(w Warning) {
	f(w)
}

type discardWarner struct{}

func (discardWarner) Warn(Warning) {}

// WarningCollector records every warning. It is safe for concurrent use.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []Warning
}

// Warn records w
func (c *WarningCollector) Warn(w Warning) {
	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	c.mu.Unlock()
}

// Warnings returns a copy of the recorded warnings
func (c *WarningCollector) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Len returns the number of recorded warnings
func (c *WarningCollector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.warnings)
}

// Reset drops all recorded warnings
func (c *WarningCollector) Reset() {
	c.mu.Lock()
	c.warnings = nil
	c.mu.Unlock()
}

// LogWarner returns a Warner that writes warn-level entries to logger
func LogWarner(logger *log.Logger) Warner {
	return WarnerFunc(func(w Warning) {
		fields := log.Fields{
			"operation": w.Operation,
			"kind":      w.Kind.String(),
		}
		for k, v := range w.Details {
			fields[k] = v
		}
		logger.Warn(w.Message, fields)
	})
}

// StrictWarner remembers the first warning and forwards every warning to
// an optional next Warner. Err turns the first warning into an error.
type StrictWarner struct {
	next Warner

	mu    sync.Mutex
	first *Warning
}

// NewStrictWarner returns a StrictWarner forwarding to next (may be nil)
func NewStrictWarner(next Warner) *StrictWarner {
	return &StrictWarner{next: next}
}

// Warn implements Warner
func (s *StrictWarner) Warn(w Warning) {
	s.mu.Lock()
	if s.first == nil {
		first := w
		s.first = &first
	}
	s.mu.Unlock()

	if s.next != nil {
		s.next.Warn(w)
	}
}

// Err returns a CodeValidationFailed error for the first warning, or nil
func (s *StrictWarner) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.first == nil {
		return nil
	}
	return mdwerror.New(fmt.Sprintf("warning treated as error: %s", s.first)).
		WithCode(mdwerror.CodeValidationFailed).
		WithOperation(s.first.Operation).
		WithDetail("kind", s.first.Kind.String())
}

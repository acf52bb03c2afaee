// ============================================================================
// strvec - Vectorized string primitives
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from the
//              application configuration
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/strvec/foundation/core/log"
	"github.com/msto63/strvec/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (json, text, console, logfmt; default: text)
	Format string

	// Output destination (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// Correlation ID stamped on every entry; empty generates a new one
	CorrelationID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a foundation logger carrying a correlation ID
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  parseLevel(cfg.Level),
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}).WithCorrelationID(correlationID)
}

// FromConfig creates the logger described by the [general] section
func FromConfig(cfg *config.Config, output io.Writer) *mdwlog.Logger {
	lc := DefaultLoggerConfig(cfg.General.Name)
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	lc.Output = output
	return NewLogger(lc)
}

// NewCorrelationID returns a random ID identifying one invocation
func NewCorrelationID() string {
	return uuid.NewString()
}

// parseLevel converts a string level to mdwlog.Level
func parseLevel(level string) mdwlog.Level {
	parsed, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelWarn
	}
	return parsed
}

// Package log provides structured logging for strvec.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with persistent fields, correlation IDs,
//              pluggable formatters (JSON, text, console, logfmt) and
//              operation timers. Structured errors are expanded into
//              error_* fields by LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-02-11 v0.2.0: Removed async mode and audit level, stable field order
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelInfo, Format: log.FormatText})
//	logger = logger.WithName("strvec").WithCorrelationID(id)
//	logger.Warn("recycling mismatch", log.Fields{"operation": "join2"})
//
//	timer := logger.StartTimer("dup")
//	defer timer.Stop()
package log

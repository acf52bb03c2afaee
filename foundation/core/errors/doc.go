// Package errors provides module-scoped constructors on top of the
// structured error type, so every strvec component reports failures with the
// same codes and the same "module" / "operation" details.
//
// Package: errors
// Title: Standardized Error Constructors
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-11
//
// Usage:
//
//	if size > limit {
//		return nil, errors.ResourceError(errors.ModuleStringx, "dup", size, limit)
//	}
//
//	if errors.IsModuleError(err, errors.ModuleCoerce) {
//		// input could not be converted
//	}
package errors

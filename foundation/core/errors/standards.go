// File: standards.go
// Title: Error Standards for strvec
// Description: Standardized error constructors shared by the vector
//              primitives, the coercion layer, configuration and the CLI.
//              Every constructor records module and operation as details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-11
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-02-11 v0.2.0: Module set and codes for the vector primitives

package errors

import (
	stderrors "errors"
	"fmt"

	mdwerror "github.com/msto63/strvec/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleCoerce  = "coerce"
	ModuleConfig  = "config"
	ModuleRender  = "render"
	ModuleCLI     = "cli"
)

// InputError creates a standardized input validation error
func InputError(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		})
}

// TypeError reports a value that cannot be converted to the expected type
func TypeError(module, operation string, index int, value interface{}, expected string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("%s.%s: element %d of type %T cannot be used as %s", module, operation, index, value, expected)).
		WithCode(mdwerror.CodeTypeMismatch).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"index":     index,
			"type":      fmt.Sprintf("%T", value),
			"expected":  expected,
		})
}

// FormatError creates a standardized format error
func FormatError(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid format in %s", module)).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation(module).
		WithDetails(map[string]interface{}{
			"module":          module,
			"input":           input,
			"expected_format": expectedFormat,
		})
}

// EncodingError reports text that is not valid in the expected encoding
func EncodingError(module, operation, encoding string, cause error) *mdwerror.Error {
	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, fmt.Sprintf("%s.%s: cannot decode %s input", module, operation, encoding))
	} else {
		err = mdwerror.New(fmt.Sprintf("%s.%s: input is not valid %s", module, operation, encoding))
	}
	return err.
		WithCode(mdwerror.CodeEncodingError).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"encoding":  encoding,
		})
}

// ResourceError reports a buffer that cannot be allocated. requested is -1
// when the size computation overflowed.
func ResourceError(module, operation string, requested, limit int) *mdwerror.Error {
	msg := fmt.Sprintf("%s.%s: scratch buffer of %d bytes exceeds limit of %d bytes", module, operation, requested, limit)
	if requested < 0 {
		msg = fmt.Sprintf("%s.%s: scratch buffer size overflows", module, operation)
	}
	return mdwerror.New(msg).
		WithCode(mdwerror.CodeResourceExhausted).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"requested": requested,
			"limit":     limit,
		})
}

// ConfigError creates a configuration error for a single key
func ConfigError(key string, value interface{}, reason string) *mdwerror.Error {
	return mdwerror.New(fmt.Sprintf("invalid configuration value for %s: %s", key, reason)).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation(ModuleConfig + ".validate").
		WithDetails(map[string]interface{}{
			"module": ModuleConfig,
			"key":    key,
			"value":  value,
		})
}

// OperationError wraps a cause as a failure of a module operation
func OperationError(module, operation string, cause error, context map[string]interface{}) *mdwerror.Error {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["module"] = module
	context["operation"] = operation

	wrapped := mdwerror.Wrap(cause, fmt.Sprintf("%s.%s operation failed", module, operation))
	if wrapped == nil {
		wrapped = mdwerror.New(fmt.Sprintf("%s.%s operation failed", module, operation)).
			WithCode(mdwerror.CodeInternal)
	}
	return wrapped.
		WithOperation(module + "." + operation).
		WithDetails(context)
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	return stringDetail(err, "module")
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	return stringDetail(err, "operation")
}

func stringDetail(err error, key string) string {
	var mdwErr *mdwerror.Error
	if !stderrors.As(err, &mdwErr) {
		return ""
	}
	v, ok := mdwErr.Detail(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

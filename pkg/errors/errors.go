package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure category with a stable string value,
// so tests and callers can match on the category rather than message text.
type ErrorCode string

const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"
	ErrNotFound ErrorCode = "NOT_FOUND"

	// Render pipeline errors
	ErrEntityMissing     ErrorCode = "ENTITY_MISSING"
	ErrEntityUnsupported ErrorCode = "ENTITY_UNSUPPORTED"
	ErrTemplateRead      ErrorCode = "TEMPLATE_READ"
	ErrEngineRender      ErrorCode = "ENGINE_RENDER"
	ErrContextResolve    ErrorCode = "CONTEXT_RESOLVE"

	// Tree errors
	ErrTreeLoad ErrorCode = "TREE_LOAD"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// VitrineError is a structured error carrying a code, a message and
// optional key/value details for diagnostics.
type VitrineError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *VitrineError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *VitrineError) Unwrap() error {
	return e.Wrapped
}

// Is matches two VitrineErrors by code
func (e *VitrineError) Is(target error) bool {
	var targetErr *VitrineError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new VitrineError with the given code and message
func New(code ErrorCode, message string) *VitrineError {
	return &VitrineError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new VitrineError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *VitrineError {
	return &VitrineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a VitrineError. Returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *VitrineError {
	if err == nil {
		return nil
	}
	return &VitrineError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *VitrineError {
	if err == nil {
		return nil
	}
	return &VitrineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *VitrineError) WithDetail(key string, value interface{}) *VitrineError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var verr *VitrineError
	if errors.As(err, &verr) {
		return verr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if it
// is not a VitrineError
func GetErrorCode(err error) ErrorCode {
	var verr *VitrineError
	if errors.As(err, &verr) {
		return verr.Code
	}
	return ErrUnknown
}

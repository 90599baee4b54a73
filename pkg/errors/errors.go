// Package errors defines the coded error type shared by every glossary
// package. Codes are stable strings so tests can match on them.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category.
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Files
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"

	// Glossary processing
	ErrDefinitionsParse ErrorCode = "DEFINITIONS_PARSE"
	ErrShortcodeParse   ErrorCode = "SHORTCODE_PARSE"
	ErrRender           ErrorCode = "RENDER"
	ErrUndefinedTerms   ErrorCode = "UNDEFINED_TERMS"
)

// GlossaryError carries a code, a human message and optional details.
type GlossaryError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *GlossaryError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *GlossaryError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a GlossaryError with the same code.
func (e *GlossaryError) Is(target error) bool {
	var other *GlossaryError
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// New creates a GlossaryError with the given code and message.
func New(code ErrorCode, message string) *GlossaryError {
	return &GlossaryError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *GlossaryError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to err. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *GlossaryError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GlossaryError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail records a key/value detail and returns e for chaining.
func (e *GlossaryError) WithDetail(key string, value interface{}) *GlossaryError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks whether any GlossaryError in err's chain has code.
func IsErrorCode(err error, code ErrorCode) bool {
	var gerr *GlossaryError
	if errors.As(err, &gerr) {
		return gerr.Code == code
	}
	return false
}

// GetErrorCode returns the outermost code in err's chain, or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var gerr *GlossaryError
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the outermost GlossaryError.
func GetErrorDetails(err error) map[string]interface{} {
	var gerr *GlossaryError
	if errors.As(err, &gerr) {
		return gerr.Details
	}
	return nil
}

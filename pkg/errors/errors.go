// Package errors provides coded, structured errors for htmlfixture.
//
// Codes are stable strings so tests can match on them instead of on
// message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Fixture errors
	ErrFixtureNotFound ErrorCode = "FIXTURE_NOT_FOUND"
	ErrFixtureRead     ErrorCode = "FIXTURE_READ"
	ErrFixtureParse    ErrorCode = "FIXTURE_PARSE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// FixtureError represents a structured error with code and details
type FixtureError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FixtureError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FixtureError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a FixtureError with the same code
func (e *FixtureError) Is(target error) bool {
	var targetErr *FixtureError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FixtureError with the given code and message
func New(code ErrorCode, message string) *FixtureError {
	return &FixtureError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FixtureError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FixtureError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *FixtureError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FixtureError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *FixtureError) WithDetail(key string, value interface{}) *FixtureError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FixtureError) WithDetails(details map[string]interface{}) *FixtureError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fixtureErr *FixtureError
	if errors.As(err, &fixtureErr) {
		return fixtureErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FixtureError
func GetErrorCode(err error) ErrorCode {
	var fixtureErr *FixtureError
	if errors.As(err, &fixtureErr) {
		return fixtureErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FixtureError
func GetErrorDetails(err error) map[string]interface{} {
	var fixtureErr *FixtureError
	if errors.As(err, &fixtureErr) {
		return fixtureErr.Details
	}
	return nil
}

// Package errors defines the application error taxonomy and its mapping to
// HTTP status codes.
package errors

import (
	"net/http"

	"github.com/Ulrich-Yao/website/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrInvalidCredentials covers both "unknown user" and "wrong password".
	// The two cases are never distinguished to the caller, so usernames
	// cannot be enumerated through the login endpoint.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Record not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing error",
		"",
	)

	ErrDatabase = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"Internal server error",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error into the generic
// database AppError. The original error stays in the chain for server-side
// logging; clients only ever see the generic message.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(ErrDatabase, message+": "+err.Error())
}

package errors

import (
	"net/http"

	"blindauth/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code, also the error kind
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Error codes. Each one names a failure kind that callers can branch on.
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotFound           = "NOT_FOUND"
	CodeNoActiveSession    = "NO_ACTIVE_SESSION"
	CodeConflict           = "CONFLICT"
	CodeInternal           = "INTERNAL_ERROR"
)

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

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidationFailed,
		"email and password are required",
		"",
	)

	ErrAlreadyExists = NewBaseError(
		http.StatusConflict,
		CodeAlreadyExists,
		"an account with this email already exists",
		"",
	)

	// ErrInvalidCredentials is shared by unknown identifiers and wrong secrets.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		CodeInvalidCredentials,
		"invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthorized,
		"a valid bearer token is required",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"no account found for this email",
		"",
	)

	ErrNoActiveSession = NewBaseError(
		http.StatusBadRequest,
		CodeNoActiveSession,
		"no active session for this token",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		CodeConflict,
		"resource conflict",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		CodeInternal,
		"internal server error",
		"",
	)
)

// CodeOf returns the error code carried by err, or CodeInternal when err is
// not an AppError. It returns "" for a nil error.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return CodeInternal
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeInternal
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return ErrInternal.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

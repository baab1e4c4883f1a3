package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
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
	// User-related errors
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Username is already taken",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid access token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Media-related errors
	ErrMediaStorageDisabled = NewBaseError(
		http.StatusServiceUnavailable,
		"MEDIA_STORAGE_DISABLED",
		"Image storage is not configured",
		"",
	)

	ErrMediaTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"MEDIA_TOO_LARGE",
		"Uploaded file is too large",
		"",
	)

	ErrMediaTypeUnsupported = NewBaseError(
		http.StatusBadRequest,
		"MEDIA_TYPE_UNSUPPORTED",
		"Only image uploads are accepted",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// Resource names used in not-found errors
const (
	ResourceCanteen = "Canteen"
	ResourceDish    = "Dish"
	ResourceUser    = "User"
)

// ResourceNotFoundError reports a lookup by identifier that matched nothing.
type ResourceNotFoundError struct {
	resource string
	id       string
}

// NewResourceNotFoundError creates a not-found error naming the resource and the identifier
func NewResourceNotFoundError(resource, id string) AppError {
	return &ResourceNotFoundError{
		resource: resource,
		id:       id,
	}
}

// Error implements the error interface
func (e *ResourceNotFoundError) Error() string {
	return e.Message()
}

// Is lets errors.Is(err, ErrNotFound) match every resource.
func (e *ResourceNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// HTTPCode returns the HTTP status code
func (e *ResourceNotFoundError) HTTPCode() int {
	return http.StatusNotFound
}

// ErrorCode returns the business error code, e.g. CANTEEN_NOT_FOUND
func (e *ResourceNotFoundError) ErrorCode() string {
	return strings.ToUpper(e.resource) + "_NOT_FOUND"
}

// Message returns the user-friendly error message
func (e *ResourceNotFoundError) Message() string {
	return fmt.Sprintf("%s not found with id: %s", e.resource, e.id)
}

// Details returns detailed error information
func (e *ResourceNotFoundError) Details() string {
	return ""
}

// Resource returns the resource name
func (e *ResourceNotFoundError) Resource() string {
	return e.resource
}

// ID returns the identifier that was looked up
func (e *ResourceNotFoundError) ID() string {
	return e.id
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

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

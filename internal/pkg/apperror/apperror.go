package apperror

import (
	"errors"
	"net/http"
)

// AppError is a custom error type that includes an HTTP status code and an optional internal error code.
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound reports a missing entity or a missing relationship between the caller and an entity.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

// Validation reports a well-formed but semantically invalid request.
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// Conflict reports a request that clashes with stored data, such as a duplicate key.
func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}

// IsNotFound reports whether err carries a 404 AppError.
func IsNotFound(err error) bool {
	return hasCode(err, http.StatusNotFound)
}

// IsValidation reports whether err carries a 400 AppError.
func IsValidation(err error) bool {
	return hasCode(err, http.StatusBadRequest)
}

func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrBackendNotReady indicates the database schema has not been provisioned yet.
// This is an expected, benign state on a fresh deployment: list endpoints
// translate it into empty collections plus a setup-required flag instead of
// surfacing an error.
var ErrBackendNotReady = errors.New("backend not yet configured")

// AppError carries an HTTP status code alongside a user-facing message.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewInternalServerError creates an AppError with a 500 status code.
func NewInternalServerError(msg string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: msg}
}

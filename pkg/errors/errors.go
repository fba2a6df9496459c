package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into one of the broad failure categories
// the API distinguishes between.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindDatabase   Kind = "DATABASE"
	KindInternal   Kind = "INTERNAL"
)

// Machine-readable error codes returned in the response envelope.
const (
	CodeMissingID        = "MISSING_ID"
	CodeMissingBody      = "MISSING_BODY"
	CodeInvalidJSON      = "INVALID_JSON"
	CodeInvalidTitle     = "INVALID_TITLE"
	CodeInvalidCompleted = "INVALID_COMPLETED"
	CodeNoUpdates        = "NO_UPDATES"
	CodeNotFound         = "NOT_FOUND"
	CodeDBError          = "DB_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// AppError is the application error type. Every failure that crosses a
// layer boundary is wrapped in one so callers can switch on Kind and
// Code instead of inspecting error strings.
type AppError struct {
	Kind       Kind
	Code       string
	Message    string
	Cause      error
	HTTPStatus int
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCode overrides the machine-readable code.
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// NewValidationError creates a client-input error with the given code.
func NewValidationError(code, message string) *AppError {
	return &AppError{
		Kind:       KindValidation,
		Code:       code,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewNotFoundError creates a not-found error. Both read misses and
// conditional-write precondition failures map here.
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Kind:       KindNotFound,
		Code:       CodeNotFound,
		Message:    message,
		HTTPStatus: http.StatusNotFound,
	}
}

// NewDatabaseError creates a store-level error.
func NewDatabaseError(message string, cause error) *AppError {
	return &AppError{
		Kind:       KindDatabase,
		Code:       CodeDBError,
		Message:    message,
		Cause:      cause,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewInternalError creates a generic internal error.
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Kind:       KindInternal,
		Code:       CodeInternalError,
		Message:    message,
		Cause:      cause,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// GetAppError extracts an *AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Kind == KindNotFound
}

// IsValidation reports whether err is a client-input error.
func IsValidation(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Kind == KindValidation
}

package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents an application error with HTTP status and error code
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   err,
		Details:    e.Details,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    message,
		Internal:   e.Internal,
		Details:    e.Details,
	}
}

// WithDetails returns a copy of the error with details attached
func (e *Error) WithDetails(details map[string]any) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   e.Internal,
		Details:    details,
	}
}

// New creates a new application error
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

// Common error definitions
var (
	ErrNotFound    = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrConflict    = New(http.StatusConflict, "conflict", "Resource is in a conflicting state")
	ErrFormBusy    = New(http.StatusConflict, "form_busy", "The contact form is not accepting changes right now")
	ErrBadRequest  = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrValidation  = New(http.StatusUnprocessableEntity, "validation_error", "Validation failed")
	ErrRateLimited = New(http.StatusTooManyRequests, "rate_limited", "Too many requests, slow down")
	ErrInternal    = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// ToHTTPError converts an error to a status code and the JSON error body.
// Errors that do not wrap an *Error become 500 internal_error.
func ToHTTPError(err error) (int, map[string]any) {
	var appErr *Error
	if errors.As(err, &appErr) {
		errBody := map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		}
		if len(appErr.Details) > 0 {
			errBody["details"] = appErr.Details
		}
		return appErr.HTTPStatus, map[string]any{
			"error": errBody,
		}
	}

	return http.StatusInternalServerError, map[string]any{
		"error": map[string]any{
			"code":    "internal_error",
			"message": "An internal error occurred",
		},
	}
}

// NewBadRequest creates a bad request error with a custom message
func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewNotFound creates a not found error for a resource type and ID
func NewNotFound(resourceType, id string) *Error {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s '%s' not found", resourceType, id))
}

// NewValidation creates a validation error naming the offending field
func NewValidation(field, message string) *Error {
	return ErrValidation.WithMessage(message).WithDetails(map[string]any{"field": field})
}

// NewInternal creates an internal error with a message and optional wrapped error
func NewInternal(message string, err error) *Error {
	return &Error{
		HTTPStatus: http.StatusInternalServerError,
		Code:       "internal_error",
		Message:    message,
		Internal:   err,
	}
}

package errors

import (
	"net/http"

	"github.com/go-chi/render"
)

// APIError represents a structured API error response
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates a new APIError with the given parameters
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates a new APIError with additional details
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined error types for common scenarios
var (
	ErrInvalidRequest = New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrInternalServer = New(http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
)

// ErrValidation creates a field-level validation error
func ErrValidation(field, message string) *APIError {
	return NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", message,
		map[string]string{"field": field})
}

// ErrNotFound creates a 404 error with a specific code and message
func ErrNotFound(errorCode, message string) *APIError {
	return New(http.StatusNotFound, errorCode, message)
}

// ErrBadUpload creates a 422 error for an upload that could not be
// decoded; the message is shown to the user, the session is cleared.
func ErrBadUpload(message string) *APIError {
	return New(http.StatusUnprocessableEntity, "UPLOAD_DECODE_FAILED", message)
}

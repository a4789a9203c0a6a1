// FilePath: internal/errors/errors.go
package errors

import (
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Error types
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeConflict   ErrorType = "conflict"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeStorage    ErrorType = "storage"
	ErrorTypeInternal   ErrorType = "internal"
)

// APIError represents a structured API error
type APIError struct {
	Type      ErrorType `json:"type"`
	Status    string    `json:"status"`
	Code      int       `json:"code"`
	RequestID string    `json:"request_id,omitempty"`
	Details   any       `json:"details,omitempty"`
	err       error     // Internal error for logging
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Status, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Status)
}

// Unwrap exposes the internal error for errors.Is/As chains
func (e *APIError) Unwrap() error {
	return e.err
}

// WithRequestID adds a request ID to the error
func (e *APIError) WithRequestID(id string) *APIError {
	e.RequestID = id
	return e
}

// WithDetails adds additional details to the error
func (e *APIError) WithDetails(details any) *APIError {
	e.Details = details
	return e
}

// NewValidationError creates a new validation error
func NewValidationError(msg string, err error) *APIError {
	return &APIError{
		Type:   ErrorTypeValidation,
		Status: msg,
		Code:   http.StatusBadRequest,
		err:    err,
	}
}

// NewConflictError creates a new duplicate-identity error. Conflicts go
// out as 400, not 409; existing clients depend on that.
func NewConflictError(msg string, err error) *APIError {
	return &APIError{
		Type:   ErrorTypeConflict,
		Status: msg,
		Code:   http.StatusBadRequest,
		err:    err,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(msg string, err error) *APIError {
	return &APIError{
		Type:   ErrorTypeNotFound,
		Status: msg,
		Code:   http.StatusNotFound,
		err:    err,
	}
}

// NewStorageError creates a new backing-store error
func NewStorageError(msg string, err error) *APIError {
	return &APIError{
		Type:   ErrorTypeStorage,
		Status: msg,
		Code:   http.StatusInternalServerError,
		err:    err,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(msg string, err error) *APIError {
	return &APIError{
		Type:   ErrorTypeInternal,
		Status: msg,
		Code:   http.StatusInternalServerError,
		err:    err,
	}
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrorTypeNotFound
	}
	return false
}

// IsValidation checks if an error is a Validation error
func IsValidation(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrorTypeValidation
	}
	return false
}

// IsConflict checks if an error is a Conflict error
func IsConflict(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrorTypeConflict
	}
	return false
}

// IsStorage checks if an error is a Storage error
func IsStorage(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrorTypeStorage
	}
	return false
}

package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorCode represents API error codes
type ErrorCode int

const (
	// Resource errors (3xxx)
	ErrCodeNotFound          ErrorCode = 3001
	ErrCodeInvalidIdentifier ErrorCode = 3002

	// Validation errors (4xxx)
	ErrCodeValidation        ErrorCode = 4001
	ErrCodeInvalidInput      ErrorCode = 4002
	ErrCodeDependencyMissing ErrorCode = 4003

	// Internal errors (5xxx)
	ErrCodeInternal    ErrorCode = 5001
	ErrCodeUnavailable ErrorCode = 5002
)

// ErrorResponse is the body of every failed request. The message is
// carried in the "error" field.
type ErrorResponse struct {
	Message string       `json:"error"`
	Status  int          `json:"status"`
	Code    ErrorCode    `json:"code,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response
func (e *ErrorResponse) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

func NewNotFoundError(resource string) *ErrorResponse {
	return &ErrorResponse{
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Code:    ErrCodeNotFound,
	}
}

func NewInvalidIdentifierError(id string) *ErrorResponse {
	return &ErrorResponse{
		Message: fmt.Sprintf("invalid identifier %q", id),
		Status:  http.StatusBadRequest,
		Code:    ErrCodeInvalidIdentifier,
	}
}

func NewValidationError(errors []FieldError) *ErrorResponse {
	msg := "One or more fields failed validation"
	if len(errors) > 0 {
		msg = fmt.Sprintf("%s: %s", errors[0].Field, errors[0].Message)
		if len(errors) > 1 {
			msg = fmt.Sprintf("%s (and %d more errors)", msg, len(errors)-1)
		}
	}
	return &ErrorResponse{
		Message: msg,
		Status:  http.StatusBadRequest,
		Code:    ErrCodeValidation,
		Errors:  errors,
	}
}

func NewBadRequestError(detail string) *ErrorResponse {
	return &ErrorResponse{
		Message: detail,
		Status:  http.StatusBadRequest,
		Code:    ErrCodeInvalidInput,
	}
}

func NewDependencyMissingError(detail string) *ErrorResponse {
	return &ErrorResponse{
		Message: detail,
		Status:  http.StatusBadRequest,
		Code:    ErrCodeDependencyMissing,
	}
}

func NewInternalError(detail string) *ErrorResponse {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return &ErrorResponse{
		Message: detail,
		Status:  http.StatusInternalServerError,
		Code:    ErrCodeInternal,
	}
}

func NewUnavailableError(detail string) *ErrorResponse {
	return &ErrorResponse{
		Message: detail,
		Status:  http.StatusServiceUnavailable,
		Code:    ErrCodeUnavailable,
	}
}

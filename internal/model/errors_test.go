package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ============================================================================
// Error() Interface Tests
// ============================================================================

func TestErrorResponse_Error_ReturnsFormattedMessage(t *testing.T) {
	t.Parallel()

	e := &ErrorResponse{Status: http.StatusNotFound, Message: "event not found"}

	msg := e.Error()
	if !strings.Contains(msg, "404") {
		t.Errorf("error message should contain status code, got: %s", msg)
	}
	if !strings.Contains(msg, "event not found") {
		t.Errorf("error message should contain message, got: %s", msg)
	}
}

// ============================================================================
// WriteJSON Tests
// ============================================================================

func TestErrorResponse_WriteJSON_SetsHeadersAndStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewNotFoundError("team").WriteJSON(rr)

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got %q", ct)
	}
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestErrorResponse_WriteJSON_BodyHasErrorField(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBadRequestError("bad skip").WriteJSON(rr)

	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "bad skip" {
		t.Errorf("expected error field 'bad skip', got %v", body["error"])
	}
	if _, ok := body["errors"]; ok {
		t.Error("expected errors to be omitted when empty")
	}
}

// ============================================================================
// Constructor Tests
// ============================================================================

func TestConstructors_StatusAndCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    *ErrorResponse
		status int
		code   ErrorCode
	}{
		{"not found", NewNotFoundError("user"), http.StatusNotFound, ErrCodeNotFound},
		{"invalid id", NewInvalidIdentifierError("xyz"), http.StatusBadRequest, ErrCodeInvalidIdentifier},
		{"validation", NewValidationError(nil), http.StatusBadRequest, ErrCodeValidation},
		{"bad request", NewBadRequestError("x"), http.StatusBadRequest, ErrCodeInvalidInput},
		{"dependency", NewDependencyMissingError("team missing"), http.StatusBadRequest, ErrCodeDependencyMissing},
		{"internal", NewInternalError(""), http.StatusInternalServerError, ErrCodeInternal},
		{"unavailable", NewUnavailableError("down"), http.StatusServiceUnavailable, ErrCodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.status {
				t.Errorf("status = %d, want %d", tt.err.Status, tt.status)
			}
			if tt.err.Code != tt.code {
				t.Errorf("code = %d, want %d", tt.err.Code, tt.code)
			}
			if tt.err.Message == "" {
				t.Error("message should not be empty")
			}
		})
	}
}

func TestNewNotFoundError_FormatsResourceName(t *testing.T) {
	t.Parallel()

	if got := NewNotFoundError("seminar").Message; got != "seminar not found" {
		t.Errorf("expected 'seminar not found', got %q", got)
	}
}

func TestNewInvalidIdentifierError_QuotesID(t *testing.T) {
	t.Parallel()

	if got := NewInvalidIdentifierError("abc").Message; !strings.Contains(got, `"abc"`) {
		t.Errorf("expected quoted id in message, got %q", got)
	}
}

func TestNewValidationError_Summaries(t *testing.T) {
	t.Parallel()

	single := NewValidationError([]FieldError{{Field: "title", Message: "title is required"}})
	if single.Message != "title: title is required" {
		t.Errorf("unexpected message: %q", single.Message)
	}

	multi := NewValidationError([]FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "location", Message: "too long"},
		{Field: "date", Message: "bad"},
	})
	if !strings.Contains(multi.Message, "and 2 more errors") {
		t.Errorf("expected summary of remaining errors, got %q", multi.Message)
	}
	if len(multi.Errors) != 3 {
		t.Errorf("expected 3 field errors, got %d", len(multi.Errors))
	}

	empty := NewValidationError(nil)
	if empty.Message != "One or more fields failed validation" {
		t.Errorf("unexpected default message: %q", empty.Message)
	}
}

func TestNewInternalError_EmptyDetail_UsesDefault(t *testing.T) {
	t.Parallel()

	if got := NewInternalError("").Message; got != "An unexpected error occurred" {
		t.Errorf("unexpected default: %q", got)
	}
	if got := NewInternalError("boom").Message; got != "boom" {
		t.Errorf("expected custom message, got %q", got)
	}
}

func TestErrorCodes_UniqueValues(t *testing.T) {
	t.Parallel()

	codes := []ErrorCode{
		ErrCodeNotFound, ErrCodeInvalidIdentifier,
		ErrCodeValidation, ErrCodeInvalidInput, ErrCodeDependencyMissing,
		ErrCodeInternal, ErrCodeUnavailable,
	}
	seen := make(map[ErrorCode]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("duplicate error code %d", c)
		}
		seen[c] = true
	}
}

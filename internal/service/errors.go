package service

import (
	"errors"
	"fmt"

	"github.com/nuleaf/source/internal/model"
)

// Centralized service layer errors.
// Handlers translate these, and only these, into HTTP statuses; anything
// else is an internal error.
var (
	// ErrInvalidIdentifier: an id is not a well-formed record key.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrNotFound: a well-formed id addresses no record.
	ErrNotFound = errors.New("not found")

	// ErrValidation: the request failed field validation, a uniqueness
	// check, or carried filter/pagination values that cannot be used.
	ErrValidation = errors.New("validation failed")

	// ErrDependencyMissing: a referenced record (a user's team) does not exist.
	ErrDependencyMissing = errors.New("dependency missing")
)

// ValidationError carries per-field failures. It matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Fields[0].Field, e.Fields[0].Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

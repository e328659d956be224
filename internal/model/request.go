package model

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nuleaf/source/internal/query"
)

// Op distinguishes create from partial update when validating a request.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
)

// Input is implemented by every entity request body.
type Input interface {
	// Validate reports field errors for the given operation. Required
	// fields must be present on create and may not be blanked on update.
	Validate(op Op) []FieldError
	// Payload returns every field keyed by its stored name. Absent fields
	// map to nil so that they can be sanitized away.
	Payload() map[string]interface{}
	// SetID sets the identifier an update is addressed to.
	SetID(id string)
}

type checker struct {
	op     Op
	errors []FieldError
}

func (c *checker) add(field, format string, args ...interface{}) {
	c.errors = append(c.errors, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) text(field string, v *string, required bool, max int) {
	if v == nil {
		if required && c.op == OpCreate {
			c.add(field, "%s is required", field)
		}
		return
	}
	if required && *v == "" {
		if c.op == OpCreate {
			c.add(field, "%s is required", field)
		} else {
			c.add(field, "%s cannot be empty", field)
		}
		return
	}
	if max > 0 && utf8.RuneCountInString(*v) > max {
		c.add(field, "%s must be %d characters or less", field, max)
	}
}

func (c *checker) date(field string, v *string) {
	if v == nil {
		return
	}
	if _, err := query.ParseTime(*v); err != nil {
		c.add(field, "%s must be a date", field)
	}
}

// reference checks that a non-empty v is a record id. Whether the record
// exists is not checked here.
func (c *checker) reference(field string, v *string) {
	if v == nil || *v == "" {
		return
	}
	if _, err := uuid.Parse(*v); err != nil {
		c.add(field, "%s must be a user id", field)
	}
}

func strVal(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func boolVal(p *bool) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

// dateVal returns the parsed time, or nil when absent or unparseable.
// Validate reports unparseable values before Payload is used.
func dateVal(p *string) interface{} {
	if p == nil {
		return nil
	}
	t, err := query.ParseTime(*p)
	if err != nil {
		return nil
	}
	return t
}

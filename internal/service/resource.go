package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nuleaf/source/internal/database"
	"github.com/nuleaf/source/internal/model"
	"github.com/nuleaf/source/internal/query"
)

// Store is the data access a Resource needs for one entity kind.
// repository.Collection implements it.
type Store[T any] interface {
	Schema() query.Schema
	Find(ctx context.Context, pred query.Predicate, page query.Page) ([]*T, error)
	Count(ctx context.Context, pred query.Predicate) (int, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, fields map[string]interface{}) (*T, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// WriteHook runs on the sanitized fields of a create or update before
// they are stored. It may add or replace fields.
type WriteHook func(ctx context.Context, op model.Op, fields map[string]interface{}) error

// ResourceConfig holds the dependencies of a Resource.
type ResourceConfig[T any] struct {
	Store    Store[T]
	Resolver query.Resolver
	// BeforeWrite is optional.
	BeforeWrite WriteHook
	// UniqueIndexes maps store index names to the field they guard, so
	// that a duplicate can be reported against that field.
	UniqueIndexes map[string]string
}

// Resource is the uniform search/count/create/get/update/delete surface
// for one entity kind.
type Resource[T any] struct {
	store       Store[T]
	resolver    query.Resolver
	beforeWrite WriteHook
	unique      map[string]string
}

// NewResource creates a resource service
func NewResource[T any](cfg ResourceConfig[T]) *Resource[T] {
	return &Resource[T]{
		store:       cfg.Store,
		resolver:    cfg.Resolver,
		beforeWrite: cfg.BeforeWrite,
		unique:      cfg.UniqueIndexes,
	}
}

// Kind names the entity kind, e.g. "event".
func (s *Resource[T]) Kind() string {
	return s.store.Schema().Kind
}

// Find returns the records matching c, windowed and ordered by p.
func (s *Resource[T]) Find(ctx context.Context, c query.Conditions, p query.PageParams) ([]*T, error) {
	schema := s.store.Schema()

	pred, err := query.Compile(schema, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	page, err := s.resolver.Resolve(schema, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	items, err := s.store.Find(ctx, pred, page)
	if err != nil {
		return nil, fmt.Errorf("finding %ss: %w", schema.Kind, err)
	}
	return items, nil
}

// Count returns how many records match c. Pagination keys are ignored.
func (s *Resource[T]) Count(ctx context.Context, c query.Conditions) (int, error) {
	schema := s.store.Schema()

	pred, err := query.Compile(schema, c)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	n, err := s.store.Count(ctx, pred)
	if err != nil {
		return 0, fmt.Errorf("counting %ss: %w", schema.Kind, err)
	}
	return n, nil
}

// Get returns the record with id.
func (s *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", s.Kind(), err)
	}
	if item == nil {
		return nil, fmt.Errorf("%s %s: %w", s.Kind(), id, ErrNotFound)
	}
	return item, nil
}

// Create validates in and stores it as a new record. An id in the
// request is ignored; the store assigns one.
func (s *Resource[T]) Create(ctx context.Context, in model.Input) (*T, error) {
	if errs := in.Validate(model.OpCreate); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	_, fields := query.Sanitize(in.Payload())
	if err := s.hook(ctx, model.OpCreate, fields); err != nil {
		return nil, err
	}

	item, err := s.store.Create(ctx, fields)
	if err != nil {
		return nil, s.writeError("creating", err)
	}
	return item, nil
}

// Update applies the fields present in `in` to the record whose id it
// carries. Absent fields are left unchanged.
func (s *Resource[T]) Update(ctx context.Context, in model.Input) (*T, error) {
	id, fields := query.Sanitize(in.Payload())
	if err := checkID(id); err != nil {
		return nil, err
	}
	if errs := in.Validate(model.OpUpdate); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.hook(ctx, model.OpUpdate, fields); err != nil {
		return nil, err
	}

	item, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return nil, s.writeError("updating", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%s %s: %w", s.Kind(), id, ErrNotFound)
	}
	return item, nil
}

// Delete removes the record with id.
func (s *Resource[T]) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	existed, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", s.Kind(), err)
	}
	if !existed {
		return fmt.Errorf("%s %s: %w", s.Kind(), id, ErrNotFound)
	}
	return nil
}

func (s *Resource[T]) hook(ctx context.Context, op model.Op, fields map[string]interface{}) error {
	if s.beforeWrite == nil {
		return nil
	}
	return s.beforeWrite(ctx, op, fields)
}

func (s *Resource[T]) writeError(verb string, err error) error {
	if !errors.Is(err, database.ErrDuplicate) {
		return fmt.Errorf("%s %s: %w", verb, s.Kind(), err)
	}
	msg := err.Error()
	for index, field := range s.unique {
		if strings.Contains(msg, index) {
			return &ValidationError{Fields: []model.FieldError{{
				Field:   field,
				Message: fmt.Sprintf("%s is already taken", field),
			}}}
		}
	}
	return &ValidationError{Fields: []model.FieldError{{
		Field:   s.Kind(),
		Message: fmt.Sprintf("%s already exists", s.Kind()),
	}}}
}

// checkID rejects ids that are not UUIDs before any store call.
func checkID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidIdentifier)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	return nil
}

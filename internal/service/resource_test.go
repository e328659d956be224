package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nuleaf/source/internal/database"
	"github.com/nuleaf/source/internal/model"
	"github.com/nuleaf/source/internal/query"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockStore[T any] struct {
	schema     query.Schema
	findFunc   func(ctx context.Context, pred query.Predicate, page query.Page) ([]*T, error)
	countFunc  func(ctx context.Context, pred query.Predicate) (int, error)
	getFunc    func(ctx context.Context, id string) (*T, error)
	createFunc func(ctx context.Context, fields map[string]interface{}) (*T, error)
	updateFunc func(ctx context.Context, id string, fields map[string]interface{}) (*T, error)
	deleteFunc func(ctx context.Context, id string) (bool, error)
	calls      int
}

func (m *mockStore[T]) Schema() query.Schema { return m.schema }

func (m *mockStore[T]) Find(ctx context.Context, pred query.Predicate, page query.Page) ([]*T, error) {
	m.calls++
	if m.findFunc != nil {
		return m.findFunc(ctx, pred, page)
	}
	return []*T{}, nil
}

func (m *mockStore[T]) Count(ctx context.Context, pred query.Predicate) (int, error) {
	m.calls++
	if m.countFunc != nil {
		return m.countFunc(ctx, pred)
	}
	return 0, nil
}

func (m *mockStore[T]) Get(ctx context.Context, id string) (*T, error) {
	m.calls++
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore[T]) Create(ctx context.Context, fields map[string]interface{}) (*T, error) {
	m.calls++
	if m.createFunc != nil {
		return m.createFunc(ctx, fields)
	}
	return new(T), nil
}

func (m *mockStore[T]) Update(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	m.calls++
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, fields)
	}
	return nil, nil
}

func (m *mockStore[T]) Delete(ctx context.Context, id string) (bool, error) {
	m.calls++
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, nil
}

// ============================================================================
// Test Helpers
// ============================================================================

const (
	testID     = "5b0e6a0c-3c1f-4a43-9d0e-4f0f3b8f1a11"
	testTeamID = "9f6c2a5e-7f1d-4c5e-8a3b-2d4e6f8a0b1c"
)

var testEventSchema = query.Schema{
	Kind:       "event",
	TextFields: []string{"title", "location"},
	Sortable:   []string{"title", "date"},
}

func strPtr(s string) *string { return &s }

func newEventService(store *mockStore[model.Event]) *EventService {
	store.schema = testEventSchema
	return NewEventService(store, query.Resolver{})
}

// ============================================================================
// Find / Count
// ============================================================================

func TestResource_Find_CompilesFilterAndPage(t *testing.T) {
	t.Parallel()

	var gotPred query.Predicate
	var gotPage query.Page
	store := &mockStore[model.Event]{
		findFunc: func(_ context.Context, pred query.Predicate, page query.Page) ([]*model.Event, error) {
			gotPred, gotPage = pred, page
			return []*model.Event{{ID: testID}}, nil
		},
	}
	svc := newEventService(store)

	events, err := svc.Find(context.Background(),
		query.Conditions{"title": "Launch"},
		query.PageParams{Skip: "5", Limit: "500", SortBy: "date", Sort: "-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if gotPred.Vars["q_title"] != "launch" {
		t.Errorf("expected lowercased title filter, got %v", gotPred.Vars)
	}
	if gotPage.Skip != 5 || gotPage.Limit != query.MaxLimit {
		t.Errorf("unexpected page window: %+v", gotPage)
	}
	if len(gotPage.Sort) == 0 || gotPage.Sort[0].Field != "date" || !gotPage.Sort[0].Desc {
		t.Errorf("expected date DESC first, got %+v", gotPage.Sort)
	}
}

func TestResource_Find_InvalidArgumentsAreValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cond query.Conditions
		page query.PageParams
	}{
		{"negative skip", nil, query.PageParams{Skip: "-1"}},
		{"non-numeric limit", nil, query.PageParams{Limit: "ten"}},
		{"repeated text key", query.Conditions{"title": []string{"a", "b"}}, query.PageParams{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore[model.Event]{}
			svc := newEventService(store)

			_, err := svc.Find(context.Background(), tt.cond, tt.page)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if !errors.Is(err, query.ErrInvalidArgument) {
				t.Errorf("expected wrapped ErrInvalidArgument, got %v", err)
			}
			if store.calls != 0 {
				t.Error("store must not be called")
			}
		})
	}
}

func TestResource_Count(t *testing.T) {
	t.Parallel()

	store := &mockStore[model.Event]{
		countFunc: func(_ context.Context, pred query.Predicate) (int, error) {
			if pred.Clause == "" {
				t.Error("expected a filter clause")
			}
			return 3, nil
		},
	}
	svc := newEventService(store)

	n, err := svc.Count(context.Background(), query.Conditions{"location": "hall", "skip": "10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3, got %d", n)
	}
}

func TestResource_Find_StoreErrorIsInternal(t *testing.T) {
	t.Parallel()

	store := &mockStore[model.Event]{
		findFunc: func(context.Context, query.Predicate, query.Page) ([]*model.Event, error) {
			return nil, database.ErrConnection
		},
	}
	_, err := newEventService(store).Find(context.Background(), nil, query.PageParams{})

	if !errors.Is(err, database.ErrConnection) {
		t.Errorf("expected wrapped connection error, got %v", err)
	}
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) {
		t.Errorf("store failure must not look like a client error: %v", err)
	}
}

// ============================================================================
// Get / Delete
// ============================================================================

func TestResource_Get(t *testing.T) {
	t.Parallel()

	t.Run("malformed id never reaches store", func(t *testing.T) {
		store := &mockStore[model.Event]{}
		_, err := newEventService(store).Get(context.Background(), "not-a-uuid")
		if !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("expected ErrInvalidIdentifier, got %v", err)
		}
		if store.calls != 0 {
			t.Error("store must not be called")
		}
	})

	t.Run("absent record", func(t *testing.T) {
		_, err := newEventService(&mockStore[model.Event]{}).Get(context.Background(), testID)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		store := &mockStore[model.Event]{
			getFunc: func(_ context.Context, id string) (*model.Event, error) {
				return &model.Event{ID: id, Title: "Launch"}, nil
			},
		}
		ev, err := newEventService(store).Get(context.Background(), testID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.ID != testID {
			t.Errorf("unexpected id %q", ev.ID)
		}
	})
}

func TestResource_Delete(t *testing.T) {
	t.Parallel()

	store := &mockStore[model.Event]{
		deleteFunc: func(context.Context, string) (bool, error) { return true, nil },
	}
	if err := newEventService(store).Delete(context.Background(), testID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	missing := &mockStore[model.Event]{}
	if err := newEventService(missing).Delete(context.Background(), testID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := newEventService(missing).Delete(context.Background(), ""); !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("expected ErrInvalidIdentifier, got %v", err)
	}
}

// ============================================================================
// Create / Update
// ============================================================================

func TestResource_Create_ValidatesAndDropsClientID(t *testing.T) {
	t.Parallel()

	var stored map[string]interface{}
	store := &mockStore[model.Event]{
		createFunc: func(_ context.Context, fields map[string]interface{}) (*model.Event, error) {
			stored = fields
			return &model.Event{ID: testID}, nil
		},
	}
	svc := newEventService(store)

	_, err := svc.Create(context.Background(), &model.EventRequest{Location: strPtr("Hall")})
	var ve *ValidationError
	if !errors.As(err, &ve) || len(ve.Fields) == 0 || ve.Fields[0].Field != "title" {
		t.Fatalf("expected title validation error, got %v", err)
	}
	if store.calls != 0 {
		t.Fatal("store must not be called on invalid input")
	}

	_, err = svc.Create(context.Background(), &model.EventRequest{
		ID:    strPtr("client-chosen"),
		Title: strPtr("Launch"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := stored["id"]; ok {
		t.Error("client id must not be stored")
	}
	if _, ok := stored["location"]; ok {
		t.Error("absent fields must not be stored")
	}
	if stored["title"] != "Launch" {
		t.Errorf("title = %v", stored["title"])
	}
}

func TestResource_Update(t *testing.T) {
	t.Parallel()

	t.Run("partial fields only", func(t *testing.T) {
		var gotID string
		var gotFields map[string]interface{}
		store := &mockStore[model.Event]{
			updateFunc: func(_ context.Context, id string, fields map[string]interface{}) (*model.Event, error) {
				gotID, gotFields = id, fields
				return &model.Event{ID: id}, nil
			},
		}

		req := &model.EventRequest{Location: strPtr("")}
		req.SetID(testID)
		if _, err := newEventService(store).Update(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotID != testID {
			t.Errorf("id = %q", gotID)
		}
		if len(gotFields) != 1 || gotFields["location"] != "" {
			t.Errorf("expected only location=\"\", got %v", gotFields)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := newEventService(&mockStore[model.Event]{}).Update(context.Background(), &model.EventRequest{Title: strPtr("x")})
		if !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("expected ErrInvalidIdentifier, got %v", err)
		}
	})

	t.Run("absent record", func(t *testing.T) {
		req := &model.EventRequest{Title: strPtr("x")}
		req.SetID(testID)
		_, err := newEventService(&mockStore[model.Event]{}).Update(context.Background(), req)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("blanking a required field", func(t *testing.T) {
		req := &model.EventRequest{Title: strPtr("")}
		req.SetID(testID)
		_, err := newEventService(&mockStore[model.Event]{}).Update(context.Background(), req)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestResource_Create_DuplicateReportsField(t *testing.T) {
	t.Parallel()

	store := &mockStore[model.Team]{
		schema: query.Schema{Kind: "team"},
		createFunc: func(context.Context, map[string]interface{}) (*model.Team, error) {
			return nil, fmt.Errorf("%w: Database index `team_name_unique` already contains 'Red'", database.ErrDuplicate)
		},
	}
	svc := NewTeamService(store, query.Resolver{})

	_, err := svc.Create(context.Background(), &model.TeamRequest{Name: strPtr("Red")})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields[0].Field != "name" {
		t.Errorf("expected name field, got %q", ve.Fields[0].Field)
	}
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	e := &ValidationError{Fields: []model.FieldError{{Field: "title", Message: "title is required"}}}
	if e.Error() != "validation failed: title: title is required" {
		t.Errorf("unexpected message %q", e.Error())
	}
	if (&ValidationError{}).Error() != "validation failed" {
		t.Error("empty validation error should use sentinel text")
	}
}

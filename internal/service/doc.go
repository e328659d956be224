// Package service implements the repository façade of the Source API.
//
// Resource[T] gives every entity kind the same six operations: Find,
// Count, Get, Create, Update and Delete. It checks identifiers, validates
// request bodies, compiles filters and pagination, sanitizes update
// payloads and turns store results into the errors below.
//
// # Repository Interfaces
//
// Services define the store interface they need (Store, TeamLookup), so
// tests substitute hand-written mocks.
//
// # Error Handling
//
// Callers branch on the sentinels in errors.go with errors.Is:
//
//	ErrInvalidIdentifier, ErrNotFound, ErrValidation, ErrDependencyMissing
//
// Field-level failures come as *ValidationError, which matches ErrValidation.
//
// # Users and teams
//
// The user service copies the referenced team's name into team_name on
// every write that carries team_id (see TeamNameSync). The copy is not
// refreshed when the team is renamed.
//
// # Example Usage
//
//	events := service.NewEventService(repository.NewEventRepository(db), resolver)
//	list, err := events.Find(ctx, conditions, page)
package service

// Package repository implements the data access layer for the Source API.
//
// Every entity kind is served by a Collection over one SurrealDB table.
// A Collection runs the six store operations (Find, Count, Get, Create,
// Update, Delete) from a compiled query.Predicate and query.Page, and maps
// stored records back onto the model types.
//
// # Query Patterns
//
//   - Parameterized queries with $variable syntax; table names are constants
//   - type::thing($tb, $id) for record addressing
//   - UPDATE ... MERGE ... RETURN AFTER so that updates never upsert
//   - DELETE ... RETURN BEFORE to report whether a record existed
//
// # Record ids
//
// Records are keyed by a UUID string. The API only sees the bare UUID;
// the table part of the store's record id is stripped on decode.
//
// # Example Usage
//
//	repo := repository.NewEventRepository(db)
//	pred, _ := query.Compile(repo.Schema(), conditions)
//	events, err := repo.Find(ctx, pred, page)
package repository

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nuleaf/source/internal/database"
	"github.com/nuleaf/source/internal/query"
)

// Collection runs the six store operations for one table. Records are
// keyed by a bare UUID string; the table part of the record id never
// leaves this package.
type Collection[T any] struct {
	db     database.Database
	table  string
	schema query.Schema
}

// NewCollection creates a collection over table. table must be a fixed
// identifier, never request input.
func NewCollection[T any](db database.Database, table string, schema query.Schema) *Collection[T] {
	return &Collection[T]{db: db, table: table, schema: schema}
}

// Schema returns the filter and sort allow-list for this table.
func (c *Collection[T]) Schema() query.Schema {
	return c.schema
}

// Table returns the table name.
func (c *Collection[T]) Table() string {
	return c.table
}

// Find returns the records matching pred, ordered and windowed by page.
// No match yields an empty slice.
func (c *Collection[T]) Find(ctx context.Context, pred query.Predicate, page query.Page) ([]*T, error) {
	q := "SELECT * FROM " + c.table + pred.Where() + page.OrderBy() + " LIMIT $limit START $skip"

	vars := c.vars(pred)
	vars["limit"] = page.Limit
	vars["skip"] = page.Skip

	results, err := c.db.Query(ctx, q, vars)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.table, err)
	}
	if len(results) == 0 {
		return make([]*T, 0), nil
	}
	items, err := decodeRecords[T](results[len(results)-1])
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.table, err)
	}
	return items, nil
}

// Count returns the number of records matching pred.
func (c *Collection[T]) Count(ctx context.Context, pred query.Predicate) (int, error) {
	q := "SELECT count() AS count FROM " + c.table + pred.Where() + " GROUP ALL"

	result, err := c.db.QueryOne(ctx, q, c.vars(pred))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("count %s: %w", c.table, err)
	}
	if row, ok := result.(map[string]interface{}); ok {
		return extractCountValue(row["count"]), nil
	}
	return extractCountValue(result), nil
}

// Get returns the record with id, or nil when it does not exist.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	q := "SELECT * FROM type::thing($tb, $id)"
	return c.one(ctx, "get", q, map[string]interface{}{"tb": c.table, "id": id})
}

// Create stores fields as a new record under a fresh UUID and returns it
// as stored, defaults included.
func (c *Collection[T]) Create(ctx context.Context, fields map[string]interface{}) (*T, error) {
	q := "CREATE type::thing($tb, $id) CONTENT $data RETURN AFTER"
	vars := map[string]interface{}{
		"tb":   c.table,
		"id":   uuid.New().String(),
		"data": toStoreValues(fields),
	}

	item, err := c.one(ctx, "create", q, vars)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("create %s: no record returned", c.table)
	}
	return item, nil
}

// Update merges fields into the record with id and returns the result.
// A missing record is not created; nil is returned instead.
func (c *Collection[T]) Update(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	q := "UPDATE " + c.table + " MERGE $data WHERE id = type::thing($tb, $id) RETURN AFTER"
	vars := map[string]interface{}{
		"tb":   c.table,
		"id":   id,
		"data": toStoreValues(fields),
	}
	return c.one(ctx, "update", q, vars)
}

// Delete removes the record with id and reports whether it existed.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	q := "DELETE " + c.table + " WHERE id = type::thing($tb, $id) RETURN BEFORE"
	vars := map[string]interface{}{"tb": c.table, "id": id}

	_, err := c.db.QueryOne(ctx, q, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete %s: %w", c.table, err)
	}
	return true, nil
}

func (c *Collection[T]) one(ctx context.Context, op, q string, vars map[string]interface{}) (*T, error) {
	result, err := c.db.QueryOne(ctx, q, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s %s: %w", op, c.table, err)
	}
	item, err := decodeRecord[T](result)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, c.table, err)
	}
	return item, nil
}

func (c *Collection[T]) vars(pred query.Predicate) map[string]interface{} {
	vars := make(map[string]interface{}, len(pred.Vars)+2)
	for k, v := range pred.Vars {
		vars[k] = v
	}
	return vars
}

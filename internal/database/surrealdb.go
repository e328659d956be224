package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go"
)

// SurrealDB implements the Database interface for SurrealDB.
// A single websocket connection is shared by all callers.
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealDB creates a new SurrealDB instance
func NewSurrealDB(cfg Config) *SurrealDB {
	return &SurrealDB{
		config: cfg,
	}
}

// Connect establishes a connection to SurrealDB
func (s *SurrealDB) Connect(ctx context.Context) error {
	endpoint := fmt.Sprintf("ws://%s:%s", s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Close closes the database connection
func (s *SurrealDB) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping checks the database connection
func (s *SurrealDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if _, err := s.db.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Query executes a query and returns the result of every statement in order.
func (s *SurrealDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		return nil, classifyError(err.Error())
	}
	if results == nil {
		return nil, nil
	}

	output := make([]interface{}, 0, len(*results))
	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				return nil, classifyError(r.Error.Message)
			}
			return nil, ErrQuery
		}
		output = append(output, r.Result)
	}

	return output, nil
}

// QueryOne executes a query and returns the first record produced by its
// last statement. An empty result is ErrNotFound.
func (s *SurrealDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	results, err := s.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}

	last := results[len(results)-1]
	switch v := last.(type) {
	case nil:
		return nil, ErrNotFound
	case []interface{}:
		if len(v) == 0 {
			return nil, ErrNotFound
		}
		return v[0], nil
	default:
		// Scalar results (count, bool) are returned as-is
		return v, nil
	}
}

// Execute runs a query without returning results
func (s *SurrealDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := s.Query(ctx, query, vars)
	return err
}

// BeginTx starts a new batch transaction
func (s *SurrealDB) BeginTx(ctx context.Context) (Transaction, error) {
	if s.db == nil {
		return nil, ErrConnection
	}
	return &batchTx{exec: s, ctx: ctx}, nil
}

// batchTx collects statements in memory and sends them as one
// BEGIN TRANSACTION ... COMMIT TRANSACTION query. Statements are not
// isolated from each other until Commit.
type batchTx struct {
	exec      *SurrealDB
	ctx       context.Context
	stmts     []string
	vars      map[string]interface{}
	committed bool
}

func (t *batchTx) Execute(_ context.Context, query string, vars map[string]interface{}) error {
	if t.committed {
		return errors.New("transaction already committed")
	}
	stmt := strings.TrimRight(strings.TrimSpace(query), ";")
	if stmt == "" {
		return nil
	}
	t.stmts = append(t.stmts, stmt)
	for k, v := range vars {
		if t.vars == nil {
			t.vars = make(map[string]interface{})
		}
		t.vars[k] = v
	}
	return nil
}

func (t *batchTx) Commit() error {
	if t.committed || len(t.stmts) == 0 {
		t.committed = true
		return nil
	}

	var b strings.Builder
	b.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range t.stmts {
		b.WriteString(stmt)
		b.WriteString(";\n")
	}
	b.WriteString("COMMIT TRANSACTION;")

	if err := t.exec.Execute(t.ctx, b.String(), t.vars); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}

	t.committed = true
	return nil
}

func (t *batchTx) Rollback() error {
	t.stmts = nil
	t.vars = nil
	return nil
}

// classifyError maps a SurrealDB error message onto the package sentinels.
func classifyError(msg string) error {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "already contains"),
		strings.Contains(lower, "already exists"):
		return fmt.Errorf("%w: %s", ErrDuplicate, msg)
	case strings.Contains(lower, "connection"),
		strings.Contains(lower, "websocket"),
		strings.Contains(lower, "broken pipe"):
		return fmt.Errorf("%w: %s", ErrConnection, msg)
	default:
		return fmt.Errorf("%w: %s", ErrQuery, msg)
	}
}

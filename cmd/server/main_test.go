package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nuleaf/source/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTx struct {
	stmts     []string
	commitErr error
}

func (s *stubTx) Execute(_ context.Context, query string, _ map[string]interface{}) error {
	s.stmts = append(s.stmts, query)
	return nil
}
func (s *stubTx) Commit() error   { return s.commitErr }
func (s *stubTx) Rollback() error { return nil }

type stubDB struct {
	database.Database
	connectErr error
	tx         *stubTx
	closed     int
}

func (s *stubDB) Connect(context.Context) error { return s.connectErr }
func (s *stubDB) Close() error                  { s.closed++; return nil }
func (s *stubDB) BeginTx(context.Context) (database.Transaction, error) {
	return s.tx, nil
}

func schemaDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_schema.surql"), []byte("DEFINE TABLE event;"), 0o600))
	return dir
}

func TestOpenStore_AppliesSchema(t *testing.T) {
	t.Parallel()

	db := &stubDB{tx: &stubTx{}}
	n, err := openStore(context.Background(), db, schemaDir(t))

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"DEFINE TABLE event;"}, db.tx.stmts)
	assert.Zero(t, db.closed, "connection must stay open on success")
}

func TestOpenStore_SchemaFailureClosesConnection(t *testing.T) {
	t.Parallel()

	t.Run("missing schema dir", func(t *testing.T) {
		db := &stubDB{tx: &stubTx{}}
		_, err := openStore(context.Background(), db, filepath.Join(t.TempDir(), "missing"))

		require.Error(t, err)
		assert.Equal(t, 1, db.closed)
	})

	t.Run("commit fails", func(t *testing.T) {
		db := &stubDB{tx: &stubTx{commitErr: database.ErrQuery}}
		_, err := openStore(context.Background(), db, schemaDir(t))

		assert.ErrorIs(t, err, database.ErrQuery)
		assert.Equal(t, 1, db.closed)
	})
}

func TestOpenStore_ConnectFailure(t *testing.T) {
	t.Parallel()

	db := &stubDB{connectErr: database.ErrConnection}
	_, err := openStore(context.Background(), db, schemaDir(t))

	assert.ErrorIs(t, err, database.ErrConnection)
	assert.Zero(t, db.closed)
}

package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadSchema reads every *.surql file in dir in lexical order. Files named
// seed.surql are skipped.
func LoadSchema(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading schema dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasSuffix(name, ".surql") && name != "seed.surql" {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	scripts := make([]string, 0, len(files))
	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		scripts = append(scripts, string(content))
	}
	return scripts, nil
}

// ApplySchema runs the given scripts inside one transaction. The scripts
// are expected to be idempotent (DEFINE ... IF NOT EXISTS).
func ApplySchema(ctx context.Context, db Database, scripts []string) error {
	if len(scripts) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}
	for _, script := range scripts {
		if err := tx.Execute(ctx, script, nil); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

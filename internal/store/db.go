package store

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"
)

const InMemory = ":memory:"

// NewDB opens the DuckDB database holding records and saved filters.
// An empty path or InMemory opens a throwaway in-memory database.
func NewDB(path string) (*sql.DB, error) {
	if path == "" {
		path = InMemory
	}

	conn, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	// single writer
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	// Keep extensions next to the database file so DuckDB never writes to ~/.duckdb.
	if path != InMemory {
		if _, err := conn.Exec(fmt.Sprintf("SET extension_directory = '%s'", filepath.Dir(path))); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("setting extension directory: %w", err)
		}
	}

	return conn, nil
}

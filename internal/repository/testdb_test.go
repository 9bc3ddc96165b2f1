package repository

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"wishtracker/internal/db"
)

// newTestDB opens an in-memory SQLite database with the real migrations
// applied. A single pooled connection keeps the memory database alive for
// the whole test.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	t.Cleanup(func() { conn.Close() })

	err = db.RunMigrations(conn.DB, "sqlite")
	if err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return conn
}

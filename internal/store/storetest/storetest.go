// Package storetest provides migrated in-memory databases for tests.
package storetest

import (
	"context"
	"testing"

	"github.com/Abraxas-365/vatalique/internal/store"
	"github.com/jmoiron/sqlx"
)

// NewDB returns a migrated in-memory SQLite database closed at test cleanup
func NewDB(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := store.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

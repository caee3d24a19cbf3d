// Package storagetest provides a migrated throwaway database for store
// tests.
package storagetest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"

	"github.com/kubera-dev/kubera-server/internal/migrations"
)

// Open returns a bob handle over a fresh SQLite database in the test's temp
// directory, migrated to the current schema. Foreign keys are enforced, the
// same as the server's connection settings.
func Open(t *testing.T) bob.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrations.Up(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return bob.NewDB(db)
}

package migrations

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "migrations.db")
	db, err := sql.Open("sqlite", "file:"+path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUp_SeedsMeta(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Up(db))

	var schema, version string
	require.NoError(t, db.QueryRow(`SELECT value FROM meta WHERE key = 'schema'`).Scan(&schema))
	require.NoError(t, db.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&version))
	assert.Equal(t, "kubera_server", schema)
	assert.Equal(t, "1.0", version)
}

func TestUp_CreatesTables(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Up(db))

	for _, table := range []string{"meta", "accounts", "transactions"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestUp_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Up(db))
	assert.NoError(t, Up(db))
}

func TestVersion(t *testing.T) {
	db := openTestDB(t)

	version, err := Version(db)
	require.NoError(t, err)
	assert.Equal(t, uint(0), version)

	require.NoError(t, Up(db))

	version, err = Version(db)
	require.NoError(t, err)
	assert.Equal(t, uint(3), version)
}

func TestDown_RemovesTables(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Up(db))

	m, err := New(db)
	require.NoError(t, err)
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("down: %v", err)
	}

	for _, table := range []string{"meta", "accounts", "transactions"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.ErrorIs(t, err, sql.ErrNoRows, "table %s should be dropped", table)
	}
}

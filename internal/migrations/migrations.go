// Package migrations embeds the versioned schema migrations and provides a
// runner over them. Each migration names its predecessor through the linear
// version sequence and ships with a matching down script.
package migrations

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var sqlFS embed.FS

// New builds a migrate instance bound to db using the embedded migration
// files.
func New(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(sqlFS, "sql")
	if err != nil {
		return nil, err
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return nil, err
	}

	return migrate.NewWithInstance("iofs", src, "sqlite", driver)
}

// Up applies all pending migrations. An already-current schema is not an
// error.
func Up(db *sql.DB) error {
	m, err := New(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Version reports the current schema version, 0 when unmigrated.
func Version(db *sql.DB) (uint, error) {
	m, err := New(db)
	if err != nil {
		return 0, err
	}

	v, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return v, nil
}

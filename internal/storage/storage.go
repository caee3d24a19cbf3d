package storage

import (
	"database/sql"

	"github.com/stephenafamo/bob"
	_ "modernc.org/sqlite"

	"github.com/kubera-dev/kubera-server/internal/config"
	"github.com/kubera-dev/kubera-server/internal/storage/account"
	"github.com/kubera-dev/kubera-server/internal/storage/transaction"
)

// Storage owns the database handle and hands out the entity stores.
type Storage struct {
	DB           *sql.DB
	Accounts     account.IAccountStore
	Transactions transaction.ITransactionStore
}

// Open opens the SQLite database at the configured path, with foreign keys
// enforced, and wires the entity stores over it.
func Open(cfg *config.Config) (*Storage, error) {
	db, err := sql.Open("sqlite", DSN(cfg.DBPath))
	if err != nil {
		return nil, err
	}

	bdb := bob.NewDB(db)
	return &Storage{
		DB:           db,
		Accounts:     account.NewStore(bdb),
		Transactions: transaction.NewStore(bdb),
	}, nil
}

// DSN builds the connection string for a SQLite database file. Foreign keys
// are off by default in SQLite; the transactions table relies on them.
func DSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Close releases the database handle.
func (s *Storage) Close() error {
	return s.DB.Close()
}

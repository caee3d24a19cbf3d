// Package session provides the scoped transaction used by mutating store
// methods: acquire, run, and release on every exit path.
package session

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
)

// Beginner starts database transactions. bob.DB satisfies it.
type Beginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (bob.Tx, error)
}

// WithTx runs fn inside a transaction whose lifetime is exactly the call:
// committed when fn returns nil, rolled back otherwise.
func WithTx(ctx context.Context, db Beginner, fn func(tx bob.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}

package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/dm"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/bob/dialect/sqlite/um"
	"github.com/stephenafamo/scan"

	"github.com/kubera-dev/kubera-server/internal/storage/dberr"
	"github.com/kubera-dev/kubera-server/internal/storage/session"
)

// IAccountStore defines the interface for account storage operations.
// This abstraction allows handing service tests a mock implementation.
type IAccountStore interface {
	List(ctx context.Context) ([]Account, error)
	Read(ctx context.Context, id int64) (*Account, error)
	Create(ctx context.Context, create Account) (*Account, error)
	Update(ctx context.Context, update Account) (*Account, error)
	Delete(ctx context.Context, id int64) error
}

// Store provides access to the accounts table.
type Store struct {
	db bob.DB
}

var _ IAccountStore = (*Store)(nil)

// NewStore creates a Store for the given database.
func NewStore(db bob.DB) *Store {
	return &Store{db: db}
}

// List returns all accounts in insertion order.
func (s *Store) List(ctx context.Context) ([]Account, error) {
	q := sqlite.Select(
		sm.Columns("id", "name", "type"),
		sm.From("accounts"),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, s.db, q, scan.StructMapper[accountRow]())
	if err != nil {
		return nil, err
	}

	result := make([]Account, len(rows))
	for i, row := range rows {
		if result[i], err = row.toAccount(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Read retrieves an account by primary key.
func (s *Store) Read(ctx context.Context, id int64) (*Account, error) {
	return read(ctx, s.db, id)
}

func read(ctx context.Context, exec bob.Executor, id int64) (*Account, error) {
	q := sqlite.Select(
		sm.Columns("id", "name", "type"),
		sm.From("accounts"),
		sm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)

	row, err := bob.One(ctx, exec, q, scan.StructMapper[accountRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dberr.New(dberr.KindNotFound, "AccountNotFound", "No account with that ID")
		}
		return nil, err
	}

	result, err := row.toAccount()
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Create inserts a new account and returns it with its generated ID. The
// incoming ID must be unset; the database generates it.
func (s *Store) Create(ctx context.Context, create Account) (*Account, error) {
	if create.ID != 0 {
		return nil, dberr.New(dberr.KindInvalidInput, "AccountIDSet", "ID must be unset for new accounts")
	}

	var created *Account
	err := session.WithTx(ctx, s.db, func(tx bob.Tx) error {
		q := sqlite.Insert(
			im.Into("accounts", "name", "type"),
			im.Values(sqlite.Arg(create.Name, dbName(create.Type))),
			im.Returning("id"),
		)

		id, err := bob.One(ctx, tx, q, scan.SingleColumnMapper[int64])
		if err != nil {
			switch dberr.ConstraintOf(err) {
			case dberr.ConstraintUnique:
				return dberr.Wrap(dberr.KindConflict, "AccountExists", "Account already exists", err)
			case dberr.ConstraintCheck:
				return dberr.Wrap(dberr.KindInvalidInput, "InvalidAccountName", "Invalid account name", err)
			}
			return err
		}

		created = &Account{ID: id, Name: create.Name, Type: create.Type}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites the mutable fields of an existing account.
func (s *Store) Update(ctx context.Context, update Account) (*Account, error) {
	if update.ID == 0 {
		return nil, dberr.New(dberr.KindInvalidInput, "AccountIDMissing", "ID must be set for existing accounts")
	}

	err := session.WithTx(ctx, s.db, func(tx bob.Tx) error {
		q := sqlite.Update(
			um.Table("accounts"),
			um.SetCol("name").ToArg(update.Name),
			um.SetCol("type").ToArg(dbName(update.Type)),
			um.Where(sqlite.Quote("id").EQ(sqlite.Arg(update.ID))),
		)

		res, err := bob.Exec(ctx, tx, q)
		if err != nil {
			switch dberr.ConstraintOf(err) {
			case dberr.ConstraintUnique, dberr.ConstraintCheck:
				return dberr.Wrap(dberr.KindInvalidInput, "InvalidAccountName", "Invalid account name", err)
			}
			return err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return dberr.New(dberr.KindNotFound, "AccountNotFound", "No account with that ID")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated := update
	return &updated, nil
}

// Delete removes an account. Deleting an absent ID is a no-op; deleting an
// account with transactions recorded against it is refused.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return session.WithTx(ctx, s.db, func(tx bob.Tx) error {
		q := sqlite.Delete(
			dm.From("accounts"),
			dm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
		)

		if _, err := bob.Exec(ctx, tx, q); err != nil {
			if dberr.ConstraintOf(err) == dberr.ConstraintForeignKey {
				return dberr.Wrap(dberr.KindConflict, "AccountInUse", "Account has transactions recorded against it", err)
			}
			return err
		}
		return nil
	})
}

package transaction

import (
	"context"
	"database/sql"
	"errors"
	"time"

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

// ITransactionStore defines the interface for transaction storage operations.
// This abstraction allows handing service tests a mock implementation.
type ITransactionStore interface {
	List(ctx context.Context) ([]Transaction, error)
	Read(ctx context.Context, id int64) (*Transaction, error)
	Create(ctx context.Context, create Transaction) (*Transaction, error)
	Update(ctx context.Context, update Transaction) (*Transaction, error)
	Delete(ctx context.Context, id int64) error
}

// Store provides access to the transactions table.
type Store struct {
	db bob.DB
}

var _ ITransactionStore = (*Store)(nil)

// NewStore creates a Store for the given database.
func NewStore(db bob.DB) *Store {
	return &Store{db: db}
}

// List returns all transactions in insertion order.
func (s *Store) List(ctx context.Context) ([]Transaction, error) {
	q := sqlite.Select(
		sm.Columns("id", "date", "debit_id", "credit_id", "amount", "note"),
		sm.From("transactions"),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, s.db, q, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}

	result := make([]Transaction, len(rows))
	for i, row := range rows {
		if result[i], err = row.toTransaction(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Read retrieves a transaction by primary key.
func (s *Store) Read(ctx context.Context, id int64) (*Transaction, error) {
	q := sqlite.Select(
		sm.Columns("id", "date", "debit_id", "credit_id", "amount", "note"),
		sm.From("transactions"),
		sm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
	)

	row, err := bob.One(ctx, s.db, q, scan.StructMapper[transactionRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dberr.New(dberr.KindNotFound, "TransactionNotFound", "No transaction with that ID")
		}
		return nil, err
	}

	result, err := row.toTransaction()
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Create inserts a new transaction and returns it with its generated ID. A
// zero date defaults to the day of creation. Both referenced accounts must
// exist.
func (s *Store) Create(ctx context.Context, create Transaction) (*Transaction, error) {
	if create.ID != 0 {
		return nil, dberr.New(dberr.KindInvalidInput, "TransactionIDSet", "ID must be unset for new transactions")
	}
	if create.Date.IsZero() {
		create.Date = time.Now()
	}
	create.Date = truncateToDay(create.Date)

	var created *Transaction
	err := session.WithTx(ctx, s.db, func(tx bob.Tx) error {
		q := sqlite.Insert(
			im.Into("transactions", "date", "debit_id", "credit_id", "amount", "note"),
			im.Values(sqlite.Arg(
				create.Date.Format(DateLayout),
				create.Debit,
				create.Credit,
				create.Amount,
				create.Note,
			)),
			im.Returning("id"),
		)

		id, err := bob.One(ctx, tx, q, scan.SingleColumnMapper[int64])
		if err != nil {
			return translateWriteErr(err)
		}

		record := create
		record.ID = id
		created = &record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites the mutable fields of an existing transaction.
func (s *Store) Update(ctx context.Context, update Transaction) (*Transaction, error) {
	if update.ID == 0 {
		return nil, dberr.New(dberr.KindInvalidInput, "TransactionIDMissing", "ID must be set for existing transactions")
	}
	if update.Date.IsZero() {
		update.Date = time.Now()
	}
	update.Date = truncateToDay(update.Date)

	err := session.WithTx(ctx, s.db, func(tx bob.Tx) error {
		q := sqlite.Update(
			um.Table("transactions"),
			um.SetCol("date").ToArg(update.Date.Format(DateLayout)),
			um.SetCol("debit_id").ToArg(update.Debit),
			um.SetCol("credit_id").ToArg(update.Credit),
			um.SetCol("amount").ToArg(update.Amount),
			um.SetCol("note").ToArg(update.Note),
			um.Where(sqlite.Quote("id").EQ(sqlite.Arg(update.ID))),
		)

		res, err := bob.Exec(ctx, tx, q)
		if err != nil {
			return translateWriteErr(err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return dberr.New(dberr.KindNotFound, "TransactionNotFound", "No transaction with that ID")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated := update
	return &updated, nil
}

// Delete removes a transaction. Deleting an absent ID is a no-op.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return session.WithTx(ctx, s.db, func(tx bob.Tx) error {
		q := sqlite.Delete(
			dm.From("transactions"),
			dm.Where(sqlite.Quote("id").EQ(sqlite.Arg(id))),
		)

		_, err := bob.Exec(ctx, tx, q)
		return err
	})
}

func translateWriteErr(err error) error {
	if dberr.ConstraintOf(err) == dberr.ConstraintForeignKey {
		return dberr.Wrap(dberr.KindInvalidInput, "UnknownAccount", "Unknown debit or credit account", err)
	}
	return err
}

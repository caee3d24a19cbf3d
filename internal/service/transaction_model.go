package service

import (
	"time"

	"github.com/kubera-dev/kubera-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer: an amount moved
// from the credit account to the debit account on a date.
type Transaction struct {
	ID     int64
	Date   time.Time
	Debit  int64
	Credit int64
	Amount int64
	Note   string
}

func transactionToStorage(t Transaction) transaction.Transaction {
	return transaction.Transaction{
		ID:     t.ID,
		Date:   t.Date,
		Debit:  t.Debit,
		Credit: t.Credit,
		Amount: t.Amount,
		Note:   t.Note,
	}
}

func transactionFromStorage(t transaction.Transaction) Transaction {
	return Transaction{
		ID:     t.ID,
		Date:   t.Date,
		Debit:  t.Debit,
		Credit: t.Credit,
		Amount: t.Amount,
		Note:   t.Note,
	}
}

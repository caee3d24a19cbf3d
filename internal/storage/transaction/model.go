package transaction

import (
	"time"
)

// DateLayout is the stored and wire form of transaction dates.
const DateLayout = "2006-01-02"

// Transaction represents a movement of an amount from the credit account to
// the debit account on a given date.
type Transaction struct {
	ID     int64
	Date   time.Time
	Debit  int64 // debit account ID
	Credit int64 // credit account ID
	Amount int64
	Note   string
}

// transactionRow is the scanned shape of a transactions row.
type transactionRow struct {
	ID       int64  `db:"id"`
	Date     string `db:"date"`
	DebitID  int64  `db:"debit_id"`
	CreditID int64  `db:"credit_id"`
	Amount   int64  `db:"amount"`
	Note     string `db:"note"`
}

func (r transactionRow) toTransaction() (Transaction, error) {
	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:     r.ID,
		Date:   date,
		Debit:  r.DebitID,
		Credit: r.CreditID,
		Amount: r.Amount,
		Note:   r.Note,
	}, nil
}

// truncateToDay drops the time-of-day component, keeping only the calendar
// date that gets stored.
func truncateToDay(t time.Time) time.Time {
	day, _ := time.Parse(DateLayout, t.Format(DateLayout))
	return day
}

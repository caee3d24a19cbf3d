package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kubera-dev/kubera-server/internal/logging"
	"github.com/kubera-dev/kubera-server/internal/service"
	"github.com/kubera-dev/kubera-server/internal/storage/dberr"
)

const dateLayout = "2006-01-02"

// Transaction is the API model for a transaction. Debit and credit carry the
// IDs of the two accounts the amount moves between.
type Transaction struct {
	ID     int64  `json:"id" doc:"Transaction ID"`
	Date   string `json:"date" doc:"Calendar date (YYYY-MM-DD)"`
	Debit  int64  `json:"debit" doc:"Debit account ID (receives value)"`
	Credit int64  `json:"credit" doc:"Credit account ID (gives value)"`
	Amount int64  `json:"amount" doc:"Amount moved"`
	Note   string `json:"note" doc:"Free-text note"`
}

func fromService(t service.Transaction) Transaction {
	return Transaction{
		ID:     t.ID,
		Date:   t.Date.Format(dateLayout),
		Debit:  t.Debit,
		Credit: t.Credit,
		Amount: t.Amount,
		Note:   t.Note,
	}
}

// parseDate converts the wire date to a time, treating an empty string as the
// zero time so the store applies its day-of-creation default.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

// storeError maps a storage failure onto an HTTP error carrying only the
// user-facing message.
func storeError(ctx context.Context, err error, fallback string) error {
	if derr, ok := dberr.AsError(err); ok {
		switch derr.Kind {
		case dberr.KindNotFound:
			return huma.NewError(http.StatusNotFound, derr.Message)
		case dberr.KindInvalidInput, dberr.KindConflict:
			return huma.NewError(http.StatusBadRequest, derr.Message)
		}
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("error", err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, fallback)
}

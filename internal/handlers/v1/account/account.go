package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kubera-dev/kubera-server/internal/logging"
	"github.com/kubera-dev/kubera-server/internal/service"
	"github.com/kubera-dev/kubera-server/internal/storage/dberr"
)

// Account is the API model for an account.
type Account struct {
	ID   int64  `json:"id" doc:"Account ID"`
	Name string `json:"name" doc:"Account name"`
	Type string `json:"type" enum:"equity,asset,liability,revenue,expense" doc:"Account type"`
}

func fromService(a service.Account) Account {
	return Account{
		ID:   a.ID,
		Name: a.Name,
		Type: a.Type.String(),
	}
}

// storeError maps a storage failure onto an HTTP error carrying only the
// user-facing message. conflictStatus varies per endpoint: name collisions on
// create are 400, deleting a referenced account is 409.
func storeError(ctx context.Context, err error, conflictStatus int, fallback string) error {
	if derr, ok := dberr.AsError(err); ok {
		switch derr.Kind {
		case dberr.KindNotFound:
			return huma.NewError(http.StatusNotFound, derr.Message)
		case dberr.KindInvalidInput:
			return huma.NewError(http.StatusBadRequest, derr.Message)
		case dberr.KindConflict:
			return huma.NewError(conflictStatus, derr.Message)
		}
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("error", err.Error())
	}
	return huma.NewError(http.StatusInternalServerError, fallback)
}

package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kubera-dev/kubera-server/internal/logging"
	"github.com/kubera-dev/kubera-server/internal/service"
)

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body []Account
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context) ([]service.Account, error)
}

// ListAccountsHandler handles GET /accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/accounts",
		Summary:     "List accounts",
		Description: "Returns all accounts in insertion order.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, _ *struct{}) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listAccountsMs")
	}
	accounts, err := h.AccountService.ListAccounts(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, storeError(ctx, err, http.StatusBadRequest, "failed to list accounts")
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	body := make([]Account, len(accounts))
	for i, account := range accounts {
		body[i] = fromService(account)
	}

	return &ListAccountsOutput{Body: body}, nil
}

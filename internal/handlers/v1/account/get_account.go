package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kubera-dev/kubera-server/internal/service"
)

// GetAccountInput is the Huma input for fetching one account.
type GetAccountInput struct {
	ID int64 `path:"id" doc:"Account ID"`
}

// GetAccountOutput is the Huma output for fetching one account.
type GetAccountOutput struct {
	Body Account
}

// accountReader is the interface for reading a single account.
type accountReader interface {
	GetAccount(ctx context.Context, id int64) (*service.Account, error)
}

// GetAccountHandler handles GET /accounts/{id}.
type GetAccountHandler struct {
	AccountService accountReader
}

// NewGetAccountHandler creates a new GetAccountHandler.
func NewGetAccountHandler(svc accountReader) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

// Register registers the get account endpoint with the Huma API.
func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/accounts/{id}",
		Summary:     "Get an account",
		Description: "Returns details for a single account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	account, err := h.AccountService.GetAccount(ctx, input.ID)
	if err != nil {
		return nil, storeError(ctx, err, http.StatusBadRequest, "failed to get account")
	}

	return &GetAccountOutput{Body: fromService(*account)}, nil
}

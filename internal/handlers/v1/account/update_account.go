package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kubera-dev/kubera-server/internal/service"
)

// UpdateAccountBody is the request body for updating an account. The ID must
// identify an existing account.
type UpdateAccountBody struct {
	ID   int64  `json:"id,omitempty" doc:"ID of the account to update"`
	Name string `json:"name" minLength:"1" doc:"Account name, unique across accounts"`
	Type string `json:"type" enum:"equity,asset,liability,revenue,expense" doc:"Account type"`
}

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	Body UpdateAccountBody
}

// UpdateAccountOutput is the Huma output for updating an account.
type UpdateAccountOutput struct {
	Body Account
}

// accountUpdater is the interface for updating accounts.
type accountUpdater interface {
	UpdateAccount(ctx context.Context, update service.Account) (*service.Account, error)
}

// UpdateAccountHandler handles PUT /accounts.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-account",
		Method:        http.MethodPut,
		Path:          "/accounts",
		Summary:       "Update an account",
		Description:   "Overwrites an existing account's name and type.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	accountType, err := service.ParseAccountType(input.Body.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account type")
	}

	updated, err := h.AccountService.UpdateAccount(ctx, service.Account{
		ID:   input.Body.ID,
		Name: input.Body.Name,
		Type: accountType,
	})
	if err != nil {
		return nil, storeError(ctx, err, http.StatusBadRequest, "failed to update account")
	}

	return &UpdateAccountOutput{Body: fromService(*updated)}, nil
}

package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	ID int64 `path:"id" doc:"Account ID"`
}

// DeleteAccountOutput is the Huma output for deleting an account.
type DeleteAccountOutput struct{}

// accountDeleter is the interface for deleting accounts.
type accountDeleter interface {
	DeleteAccount(ctx context.Context, id int64) error
}

// DeleteAccountHandler handles DELETE /accounts/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/accounts/{id}",
		Summary:       "Delete an account",
		Description:   "Deletes an account. Absent IDs are a no-op; accounts with transactions recorded against them are refused.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusOK,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	if err := h.AccountService.DeleteAccount(ctx, input.ID); err != nil {
		return nil, storeError(ctx, err, http.StatusConflict, "failed to delete account")
	}

	return &DeleteAccountOutput{}, nil
}

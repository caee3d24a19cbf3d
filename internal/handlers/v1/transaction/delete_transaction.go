package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction ID"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct{}

// transactionDeleter is the interface for deleting transactions.
type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id int64) error
}

// DeleteTransactionHandler handles DELETE /transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/transactions/{id}",
		Summary:       "Delete a transaction",
		Description:   "Deletes a transaction. Absent IDs are a no-op.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusOK,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	if err := h.TransactionService.DeleteTransaction(ctx, input.ID); err != nil {
		return nil, storeError(ctx, err, "failed to delete transaction")
	}

	return &DeleteTransactionOutput{}, nil
}

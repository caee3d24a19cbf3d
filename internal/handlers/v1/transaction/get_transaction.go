package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kubera-dev/kubera-server/internal/service"
)

// GetTransactionInput is the Huma input for fetching one transaction.
type GetTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction ID"`
}

// GetTransactionOutput is the Huma output for fetching one transaction.
type GetTransactionOutput struct {
	Body Transaction
}

// transactionReader is the interface for reading a single transaction.
type transactionReader interface {
	GetTransaction(ctx context.Context, id int64) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionReader
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionReader) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/transactions/{id}",
		Summary:     "Get a transaction",
		Description: "Returns details for a single transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	transaction, err := h.TransactionService.GetTransaction(ctx, input.ID)
	if err != nil {
		return nil, storeError(ctx, err, "failed to get transaction")
	}

	return &GetTransactionOutput{Body: fromService(*transaction)}, nil
}

package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kubera-dev/kubera-server/internal/service"
)

// UpdateTransactionBody is the request body for updating a transaction. The
// ID must identify an existing transaction.
type UpdateTransactionBody struct {
	ID     int64  `json:"id,omitempty" doc:"ID of the transaction to update"`
	Date   string `json:"date,omitempty" format:"date" doc:"Calendar date (YYYY-MM-DD), defaults to today"`
	Debit  int64  `json:"debit" doc:"Debit account ID (receives value)"`
	Credit int64  `json:"credit" doc:"Credit account ID (gives value)"`
	Amount int64  `json:"amount" doc:"Amount moved"`
	Note   string `json:"note,omitempty" doc:"Free-text note"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, update service.Transaction) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /transactions.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPut,
		Path:          "/transactions",
		Summary:       "Update a transaction",
		Description:   "Overwrites an existing transaction's fields.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	date, err := parseDate(input.Body.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date")
	}

	updated, err := h.TransactionService.UpdateTransaction(ctx, service.Transaction{
		ID:     input.Body.ID,
		Date:   date,
		Debit:  input.Body.Debit,
		Credit: input.Body.Credit,
		Amount: input.Body.Amount,
		Note:   input.Body.Note,
	})
	if err != nil {
		return nil, storeError(ctx, err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Body: fromService(*updated)}, nil
}

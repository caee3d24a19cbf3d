package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kubera-dev/kubera-server/internal/logging"
	"github.com/kubera-dev/kubera-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction. The
// ID must be left unset; the server generates it.
type CreateTransactionBody struct {
	ID     int64  `json:"id,omitempty" doc:"Must be unset; IDs are server generated"`
	Date   string `json:"date,omitempty" format:"date" doc:"Calendar date (YYYY-MM-DD), defaults to today"`
	Debit  int64  `json:"debit" doc:"Debit account ID (receives value)"`
	Credit int64  `json:"credit" doc:"Credit account ID (gives value)"`
	Amount int64  `json:"amount" doc:"Amount moved"`
	Note   string `json:"note,omitempty" doc:"Free-text note, defaults to empty"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, create service.Transaction) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/transactions",
		Summary:       "Create a transaction",
		Description:   "Records a movement of an amount from the credit account to the debit account.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	date, err := parseDate(input.Body.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	created, err := h.TransactionService.CreateTransaction(ctx, service.Transaction{
		ID:     input.Body.ID,
		Date:   date,
		Debit:  input.Body.Debit,
		Credit: input.Body.Credit,
		Amount: input.Body.Amount,
		Note:   input.Body.Note,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, storeError(ctx, err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", created.ID)
	}

	return &CreateTransactionOutput{Body: fromService(*created)}, nil
}

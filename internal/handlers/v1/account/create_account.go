package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kubera-dev/kubera-server/internal/logging"
	"github.com/kubera-dev/kubera-server/internal/service"
)

// CreateAccountBody is the request body for creating an account. The ID must
// be left unset; the server generates it.
type CreateAccountBody struct {
	ID   int64  `json:"id,omitempty" doc:"Must be unset; IDs are server generated"`
	Name string `json:"name" minLength:"1" doc:"Account name, unique across accounts"`
	Type string `json:"type" enum:"equity,asset,liability,revenue,expense" doc:"Account type"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Body Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, create service.Account) (*service.Account, error)
}

// CreateAccountHandler handles POST /accounts.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/accounts",
		Summary:       "Create an account",
		Description:   "Creates a new account with the given name and type.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	accountType, err := service.ParseAccountType(input.Body.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account type")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	created, err := h.AccountService.CreateAccount(ctx, service.Account{
		ID:   input.Body.ID,
		Name: input.Body.Name,
		Type: accountType,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, storeError(ctx, err, http.StatusBadRequest, "failed to create account")
	}

	if logData != nil {
		logData.AddData("accountID", created.ID)
	}

	return &CreateAccountOutput{Body: fromService(*created)}, nil
}

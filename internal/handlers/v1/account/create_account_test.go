package account

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kubera-dev/kubera-server/internal/service"
	"github.com/kubera-dev/kubera-server/internal/storage/dberr"
)

func TestHTTP_CreateAccount_Success(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("CreateAccount", mock.Anything, service.Account{
		Name: "Checking",
		Type: service.AccountTypeAsset,
	}).Return(&service.Account{ID: 1, Name: "Checking", Type: service.AccountTypeAsset}, nil)

	resp := newTestAPI(t, mockSvc).Post("/accounts", CreateAccountBody{
		Name: "Checking",
		Type: "asset",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Account
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, "Checking", body.Name)
	assert.Equal(t, "asset", body.Type)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_EmptyName(t *testing.T) {
	mockSvc := new(mockAccountService)

	// Huma's minLength schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/accounts", CreateAccountBody{
		Name: "",
		Type: "asset",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateAccount")
}

func TestHTTP_CreateAccount_UnknownType(t *testing.T) {
	mockSvc := new(mockAccountService)

	// Huma's enum schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/accounts", CreateAccountBody{
		Name: "Checking",
		Type: "piggybank",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateAccount")
}

func TestHTTP_CreateAccount_DuplicateName(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("CreateAccount", mock.Anything, mock.Anything).
		Return(nil, dberr.New(dberr.KindConflict, "AccountExists", "An account with that name already exists"))

	resp := newTestAPI(t, mockSvc).Post("/accounts", CreateAccountBody{
		Name: "Checking",
		Type: "asset",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_IDSet(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("CreateAccount", mock.Anything, mock.MatchedBy(func(a service.Account) bool {
		return a.ID == 7
	})).Return(nil, dberr.New(dberr.KindInvalidInput, "AccountIDSet", "ID must be unset for new accounts"))

	resp := newTestAPI(t, mockSvc).Post("/accounts", CreateAccountBody{
		ID:   7,
		Name: "Checking",
		Type: "asset",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_ServiceError(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("CreateAccount", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/accounts", CreateAccountBody{
		Name: "Checking",
		Type: "asset",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

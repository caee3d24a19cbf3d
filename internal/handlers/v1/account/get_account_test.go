package account

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kubera-dev/kubera-server/internal/service"
	"github.com/kubera-dev/kubera-server/internal/storage/dberr"
)

func TestHTTP_GetAccount_Success(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("GetAccount", mock.Anything, int64(2)).
		Return(&service.Account{ID: 2, Name: "House", Type: service.AccountTypeAsset}, nil)

	resp := newTestAPI(t, mockSvc).Get("/accounts/2")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Account{ID: 2, Name: "House", Type: "asset"}, body)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("GetAccount", mock.Anything, int64(42)).
		Return(nil, dberr.New(dberr.KindNotFound, "AccountNotFound", "No account with that ID"))

	resp := newTestAPI(t, mockSvc).Get("/accounts/42")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetAccount_NonNumericID(t *testing.T) {
	mockSvc := new(mockAccountService)

	// Huma path parameter parsing rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Get("/accounts/not-a-number")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetAccount")
}

package transaction

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kubera-dev/kubera-server/internal/service"
	"github.com/kubera-dev/kubera-server/internal/storage/dberr"
)

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	date := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, service.Transaction{
		ID:     5,
		Date:   date,
		Debit:  2,
		Credit: 1,
		Amount: 300,
		Note:   "corrected",
	}).Return(&service.Transaction{ID: 5, Date: date, Debit: 2, Credit: 1, Amount: 300, Note: "corrected"}, nil)

	resp := newTestAPI(t, mockSvc).Put("/transactions", UpdateTransactionBody{
		ID:     5,
		Date:   "2024-08-01",
		Debit:  2,
		Credit: 1,
		Amount: 300,
		Note:   "corrected",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Transaction{ID: 5, Date: "2024-08-01", Debit: 2, Credit: 1, Amount: 300, Note: "corrected"}, body)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, mock.Anything).
		Return(nil, dberr.New(dberr.KindNotFound, "TransactionNotFound", "No transaction with that ID"))

	resp := newTestAPI(t, mockSvc).Put("/transactions", UpdateTransactionBody{
		ID:     42,
		Debit:  2,
		Credit: 1,
		Amount: 300,
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_IDMissing(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.ID == 0
	})).Return(nil, dberr.New(dberr.KindInvalidInput, "TransactionIDMissing", "ID must be set for existing transactions"))

	resp := newTestAPI(t, mockSvc).Put("/transactions", UpdateTransactionBody{
		Debit:  2,
		Credit: 1,
		Amount: 300,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

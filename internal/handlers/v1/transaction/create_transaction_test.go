package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kubera-dev/kubera-server/internal/service"
	"github.com/kubera-dev/kubera-server/internal/storage/dberr"
)

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	date := time.Date(2024, 7, 28, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, service.Transaction{
		Date:   date,
		Debit:  2,
		Credit: 1,
		Amount: 1500,
		Note:   "opening balance",
	}).Return(&service.Transaction{ID: 1, Date: date, Debit: 2, Credit: 1, Amount: 1500, Note: "opening balance"}, nil)

	resp := newTestAPI(t, mockSvc).Post("/transactions", CreateTransactionBody{
		Date:   "2024-07-28",
		Debit:  2,
		Credit: 1,
		Amount: 1500,
		Note:   "opening balance",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Transaction{ID: 1, Date: "2024-07-28", Debit: 2, Credit: 1, Amount: 1500, Note: "opening balance"}, body)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_WithoutDate(t *testing.T) {
	today := time.Now().Format(dateLayout)
	date, _ := time.Parse(dateLayout, today)

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.Date.IsZero()
	})).Return(&service.Transaction{ID: 1, Date: date, Debit: 2, Credit: 1, Amount: 100}, nil)

	resp := newTestAPI(t, mockSvc).Post("/transactions", CreateTransactionBody{
		Debit:  2,
		Credit: 1,
		Amount: 100,
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, today, body.Date)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_InvalidDate(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma's format:"date" schema validation rejects this before the handler
	// runs.
	resp := newTestAPI(t, mockSvc).Post("/transactions", CreateTransactionBody{
		Date:   "not-a-date",
		Debit:  2,
		Credit: 1,
		Amount: 100,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_UnknownAccount(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, dberr.New(dberr.KindInvalidInput, "UnknownAccount", "Unknown debit or credit account"))

	resp := newTestAPI(t, mockSvc).Post("/transactions", CreateTransactionBody{
		Debit:  999,
		Credit: 1,
		Amount: 100,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/transactions", CreateTransactionBody{
		Debit:  2,
		Credit: 1,
		Amount: 100,
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

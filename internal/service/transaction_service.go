package service

import (
	"context"

	"github.com/kubera-dev/kubera-server/internal/storage"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns all transactions in insertion order.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*Transaction, error) {
	row, err := s.storage.Transactions.Read(ctx, id)
	if err != nil {
		return nil, err
	}

	result := transactionFromStorage(*row)
	return &result, nil
}

// CreateTransaction records a new transaction and returns it with its
// generated ID. A zero date defaults to the day of creation.
func (s *TransactionService) CreateTransaction(ctx context.Context, create Transaction) (*Transaction, error) {
	row, err := s.storage.Transactions.Create(ctx, transactionToStorage(create))
	if err != nil {
		return nil, err
	}

	result := transactionFromStorage(*row)
	return &result, nil
}

// UpdateTransaction overwrites an existing transaction's mutable fields.
func (s *TransactionService) UpdateTransaction(ctx context.Context, update Transaction) (*Transaction, error) {
	row, err := s.storage.Transactions.Update(ctx, transactionToStorage(update))
	if err != nil {
		return nil, err
	}

	result := transactionFromStorage(*row)
	return &result, nil
}

// DeleteTransaction removes a transaction. Absent IDs are a no-op.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	return s.storage.Transactions.Delete(ctx, id)
}

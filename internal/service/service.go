package service

import (
	"github.com/kubera-dev/kubera-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account:     NewAccountService(store),
		Transaction: NewTransactionService(store),
	}
}

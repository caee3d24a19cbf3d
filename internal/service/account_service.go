package service

import (
	"context"

	"github.com/kubera-dev/kubera-server/internal/storage"
)

// AccountService handles account business logic.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// ListAccounts returns all accounts in insertion order.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*Account, error) {
	row, err := s.storage.Accounts.Read(ctx, id)
	if err != nil {
		return nil, err
	}

	result := accountFromStorage(*row)
	return &result, nil
}

// CreateAccount creates a new account and returns it with its generated ID.
func (s *AccountService) CreateAccount(ctx context.Context, create Account) (*Account, error) {
	row, err := s.storage.Accounts.Create(ctx, accountToStorage(create))
	if err != nil {
		return nil, err
	}

	result := accountFromStorage(*row)
	return &result, nil
}

// UpdateAccount overwrites an existing account's mutable fields.
func (s *AccountService) UpdateAccount(ctx context.Context, update Account) (*Account, error) {
	row, err := s.storage.Accounts.Update(ctx, accountToStorage(update))
	if err != nil {
		return nil, err
	}

	result := accountFromStorage(*row)
	return &result, nil
}

// DeleteAccount removes an account. Absent IDs are a no-op.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	return s.storage.Accounts.Delete(ctx, id)
}

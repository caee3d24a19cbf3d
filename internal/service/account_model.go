package service

import (
	"github.com/kubera-dev/kubera-server/internal/storage/account"
)

// AccountType represents an account type in the service layer.
type AccountType int8

const (
	AccountTypeEquity AccountType = iota
	AccountTypeAsset
	AccountTypeLiability
	AccountTypeRevenue
	AccountTypeExpense
)

// String returns the wire form of the type, e.g. "equity".
func (t AccountType) String() string {
	return accountTypeToStorage(t).String()
}

// ParseAccountType maps the wire form back to an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	storageType, err := account.ParseType(s)
	if err != nil {
		return 0, err
	}
	return accountTypeFromStorage(storageType), nil
}

// Account represents an account in the service layer.
type Account struct {
	ID   int64
	Name string
	Type AccountType
}

func accountTypeToStorage(t AccountType) account.Type {
	return account.Type(t)
}

func accountTypeFromStorage(t account.Type) AccountType {
	return AccountType(t)
}

func accountToStorage(a Account) account.Account {
	return account.Account{
		ID:   a.ID,
		Name: a.Name,
		Type: accountTypeToStorage(a.Type),
	}
}

func accountFromStorage(a account.Account) Account {
	return Account{
		ID:   a.ID,
		Name: a.Name,
		Type: accountTypeFromStorage(a.Type),
	}
}

package account

import (
	"fmt"
)

// Type is the closed set of account types.
type Type int8

const (
	TypeEquity Type = iota
	TypeAsset
	TypeLiability
	TypeRevenue
	TypeExpense
)

var typeNames = [...]string{
	TypeEquity:    "equity",
	TypeAsset:     "asset",
	TypeLiability: "liability",
	TypeRevenue:   "revenue",
	TypeExpense:   "expense",
}

var typeDBNames = [...]string{
	TypeEquity:    "EQUITY",
	TypeAsset:     "ASSET",
	TypeLiability: "LIABILITY",
	TypeRevenue:   "REVENUE",
	TypeExpense:   "EXPENSE",
}

// String returns the wire form of the type, e.g. "equity".
func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int8(t))
	}
	return typeNames[t]
}

// ParseType maps the wire form back to a Type.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("unknown account type %q", s)
}

// dbName returns the stored form of the type, e.g. "EQUITY".
func dbName(t Type) string {
	return typeDBNames[t]
}

func typeFromDB(s string) (Type, error) {
	for t, name := range typeDBNames {
		if name == s {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("unknown stored account type %q", s)
}

// Account represents an account record.
type Account struct {
	ID   int64
	Name string
	Type Type
}

// accountRow is the scanned shape of an accounts row.
type accountRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Type string `db:"type"`
}

func (r accountRow) toAccount() (Account, error) {
	t, err := typeFromDB(r.Type)
	if err != nil {
		return Account{}, err
	}
	return Account{ID: r.ID, Name: r.Name, Type: t}, nil
}

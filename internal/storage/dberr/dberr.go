// Package dberr defines the domain error type raised by the storage layer
// and the translation of SQLite constraint failures into it.
package dberr

import (
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Kind classifies a storage failure so the HTTP layer can map it to a status
// code without inspecting error text.
type Kind int

const (
	KindNotFound Kind = iota
	KindConflict
	KindInvalidInput
)

// Error is the domain error raised by the stores. Message is safe to return
// to API callers; the wrapped cause carries the engine diagnostics and stays
// in internal logs.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a domain error with no underlying cause.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap creates a domain error around an engine-level cause.
func Wrap(kind Kind, code, message string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, cause: cause}
}

// AsError returns the domain error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var derr *Error
	if errors.As(err, &derr) {
		return derr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a missing-entity domain error.
func IsNotFound(err error) bool {
	derr, ok := AsError(err)
	return ok && derr.Kind == KindNotFound
}

// Constraint identifies which class of SQLite constraint rejected a statement.
type Constraint int

const (
	ConstraintNone Constraint = iota
	ConstraintUnique
	ConstraintCheck
	ConstraintForeignKey
)

// ConstraintOf inspects a driver error and reports the constraint class that
// caused it. ConstraintNone means err is not a constraint violation.
func ConstraintOf(err error) Constraint {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return ConstraintNone
	}

	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return ConstraintUnique
	case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return ConstraintCheck
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ConstraintForeignKey
	}

	return ConstraintNone
}

package store

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that an Upsert matched no stored account. The table is
// left unchanged; creation goes through Insert.
var ErrNotFound = errors.New("account not found")

// UnavailableError is returned when a table file cannot be opened or
// written. It is fatal to the requested operation but not to the process.
type UnavailableError struct {
	Table      string
	Path       string
	Underlying error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s table unavailable at %s: %v", e.Table, e.Path, e.Underlying)
}

func (e *UnavailableError) Unwrap() error {
	return e.Underlying
}

// NewUnavailableError creates a table open/write failure.
func NewUnavailableError(table, path string, underlying error) *UnavailableError {
	return &UnavailableError{Table: table, Path: path, Underlying: underlying}
}

// DuplicateAccountError is returned by Insert when the account number is
// already present in the table.
type DuplicateAccountError struct {
	Number string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account %s already exists", e.Number)
}

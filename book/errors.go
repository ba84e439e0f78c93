package book

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountNotFoundError is returned when an operation references an account
// number the store does not hold.
type AccountNotFoundError struct {
	Number string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %s not found", e.Number)
}

// NewAccountNotFoundError creates an error for a missing account number.
func NewAccountNotFoundError(number string) *AccountNotFoundError {
	return &AccountNotFoundError{Number: number}
}

// InsufficientFundsError is returned when a withdrawal exceeds the current
// balance. No negative balance is ever persisted.
type InsufficientFundsError struct {
	Number    string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on account %s: requested %s, available %s",
		e.Number, e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

// NewInsufficientFundsError creates an error for an over-balance withdrawal.
func NewInsufficientFundsError(number string, requested, available decimal.Decimal) *InsufficientFundsError {
	return &InsufficientFundsError{Number: number, Requested: requested, Available: available}
}

// InvalidAmountError is returned when an operation amount is zero or
// negative.
type InvalidAmountError struct {
	Amount decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %s: must be greater than zero", e.Amount.StringFixed(2))
}

// NewInvalidAmountError creates an error for a non-positive amount.
func NewInvalidAmountError(amount decimal.Decimal) *InvalidAmountError {
	return &InvalidAmountError{Amount: amount}
}

// InvalidCredentialsError is returned when an admin login does not match any
// stored admin record.
type InvalidCredentialsError struct {
	Username string
}

func (e *InvalidCredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials for %q", e.Username)
}

// NewInvalidCredentialsError creates an error for a failed admin login.
func NewInvalidCredentialsError(username string) *InvalidCredentialsError {
	return &InvalidCredentialsError{Username: username}
}

// PersistenceError is returned when a table write fails during an operation
// that spans the account table and the ledger. Diverged reports that the
// account table was already rewritten when the ledger append failed, so the
// stored balance and the ledger no longer agree; run an audit to reconcile.
type PersistenceError struct {
	Op         string
	Number     string
	Diverged   bool
	Underlying error
}

func (e *PersistenceError) Error() string {
	if e.Diverged {
		return fmt.Sprintf("%s on account %s: balance updated but ledger entry lost: %v",
			e.Op, e.Number, e.Underlying)
	}
	return fmt.Sprintf("%s on account %s failed: %v", e.Op, e.Number, e.Underlying)
}

func (e *PersistenceError) Unwrap() error {
	return e.Underlying
}

// NewPersistenceError creates a write failure for the given operation.
func NewPersistenceError(op, number string, diverged bool, underlying error) *PersistenceError {
	return &PersistenceError{Op: op, Number: number, Diverged: diverged, Underlying: underlying}
}

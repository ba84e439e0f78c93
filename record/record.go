// Package record defines the persisted record types of the teller tables and
// the pipe-delimited line codec that moves them onto and off the file medium.
//
// Every table stores one record per line, fields joined by '|' in a fixed
// order, numeric fields rendered with exactly two fraction digits and
// timestamps as "YYYY-MM-DD HH:MM:SS". The delimiter is never escaped, so
// free-text fields must be validated with ValidateField before a record is
// constructed; Encode refuses to produce a line that would not decode back.
package record

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the timestamp format used by all tables.
const TimeLayout = "2006-01-02 15:04:05"

// Delimiter separates fields within a record line.
const Delimiter = "|"

// Status describes the lifecycle state of an account.
type Status int

const (
	StatusInactive Status = iota
	StatusActive
	StatusBlocked
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusInactive:
		return "Inactive"
	case StatusActive:
		return "Active"
	case StatusBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// AccountType is the product type of an account.
type AccountType string

const (
	TypeSavings AccountType = "Savings"
	TypeCurrent AccountType = "Current"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return t == TypeSavings || t == TypeCurrent
}

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TxnDeposit        TransactionType = "DEPOSIT"
	TxnWithdrawal     TransactionType = "WITHDRAWAL"
	TxnInitialDeposit TransactionType = "INITIAL_DEPOSIT"
)

// Signed returns amount with the sign this transaction type applies to a
// balance: positive for deposits, negative for withdrawals.
func (t TransactionType) Signed(amount decimal.Decimal) decimal.Decimal {
	if t == TxnWithdrawal {
		return amount.Neg()
	}
	return amount
}

// Account is one row of the accounts table. The account number is the unique
// key; Balance is mutated in place by every deposit and withdrawal while the
// remaining fields are set once at registration.
type Account struct {
	Number        string
	Name          string
	Password      string
	Phone         string
	Email         string
	Address       string
	Balance       decimal.Decimal
	Type          AccountType
	CreatedAt     time.Time
	Status        Status
	LoginAttempts int
}

// Transaction is one row of the transactions table. Entries are written once
// and never mutated; BalanceAfter snapshots the account balance immediately
// after the entry was applied.
type Transaction struct {
	Account      string
	Type         TransactionType
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Description  string
	Timestamp    time.Time
}

// Admin is one row of the admin table.
type Admin struct {
	Username    string
	Password    string
	AccessLevel int
}

// Admin access levels.
const (
	AccessRegular = 1
	AccessSuper   = 2
)

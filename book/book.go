// Package book provides the account service of the teller: it orchestrates
// account creation, deposits, withdrawals, balance queries, history lookups
// and reporting over the file-backed tables.
//
// The service enforces the balance invariants: an account number is unique
// across the store, a withdrawal never produces a negative balance, and
// every balance change is paired with an appended ledger entry whose
// balanceAfter snapshots the new balance. The balance mutation and the
// ledger append are two separate writes with no atomicity between them; when
// the first succeeds and the second fails the returned PersistenceError is
// marked Diverged so the operator can reconcile (see Audit).
//
// Example usage:
//
//	tables, err := store.Open("database")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := book.New(tables)
//	txn, err := svc.Deposit(ctx, "1000000001", decimal.NewFromInt(200), "Cash deposit")
package book

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crownbank/teller/record"
	"github.com/crownbank/teller/store"
	"github.com/crownbank/teller/telemetry"
)

// Service orchestrates account mutations over the store tables.
type Service struct {
	tables *store.Tables
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a Service over the given tables.
func New(tables *store.Tables, opts ...Option) *Service {
	s := &Service{
		tables: tables,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// timestamp returns the current time truncated to the precision the table
// format stores.
func (s *Service) timestamp() time.Time {
	return s.now().Truncate(time.Second)
}

// NewAccount holds the operator-supplied fields of a registration.
type NewAccount struct {
	Number         string
	Name           string
	Password       string
	Phone          string
	Email          string
	Address        string
	Type           record.AccountType
	InitialBalance decimal.Decimal
}

// validate rejects fields the table format cannot carry and values the
// account invariants forbid.
func (p NewAccount) validate() error {
	fields := []struct{ name, value string }{
		{"accountNumber", p.Number},
		{"name", p.Name},
		{"password", p.Password},
		{"phone", p.Phone},
		{"email", p.Email},
		{"address", p.Address},
	}
	for _, f := range fields {
		if err := record.ValidateField(f.name, f.value); err != nil {
			return err
		}
	}

	if p.Number == "" {
		return &record.InvalidFieldError{Field: "accountNumber", Value: p.Number}
	}
	if !p.Type.Valid() {
		return &record.InvalidFieldError{Field: "accountType", Value: string(p.Type)}
	}
	if p.InitialBalance.IsNegative() {
		return NewInvalidAmountError(p.InitialBalance)
	}

	return nil
}

// CreateAccount registers a new account with status Active and records one
// INITIAL_DEPOSIT ledger entry whose amount and balanceAfter equal the
// initial balance. It fails with store.DuplicateAccountError if the number
// is already taken, and with PersistenceError if either table write fails;
// a Diverged persistence error means the account was saved but the ledger
// entry was not.
func (s *Service) CreateAccount(ctx context.Context, params NewAccount) (record.Account, error) {
	timer := telemetry.StartTimer(ctx, "book.create_account")
	defer timer.End()

	if err := params.validate(); err != nil {
		return record.Account{}, err
	}

	acc := record.Account{
		Number:        params.Number,
		Name:          params.Name,
		Password:      params.Password,
		Phone:         params.Phone,
		Email:         params.Email,
		Address:       params.Address,
		Balance:       params.InitialBalance,
		Type:          params.Type,
		CreatedAt:     s.timestamp(),
		Status:        record.StatusActive,
		LoginAttempts: 0,
	}

	if err := s.tables.Accounts.Insert(acc); err != nil {
		var dup *store.DuplicateAccountError
		if errors.As(err, &dup) {
			return record.Account{}, err
		}
		return record.Account{}, NewPersistenceError("create account", acc.Number, false, err)
	}

	txn := record.Transaction{
		Account:      acc.Number,
		Type:         record.TxnInitialDeposit,
		Amount:       params.InitialBalance,
		BalanceAfter: params.InitialBalance,
		Description:  "Account opening deposit",
		Timestamp:    acc.CreatedAt,
	}
	if err := s.tables.Ledger.Append(txn); err != nil {
		// The account is stored but its opening entry is not.
		return acc, NewPersistenceError("create account", acc.Number, true, err)
	}

	return acc, nil
}

// Deposit adds amount to the account balance and appends a DEPOSIT entry.
func (s *Service) Deposit(ctx context.Context, number string, amount decimal.Decimal, description string) (record.Transaction, error) {
	timer := telemetry.StartTimer(ctx, "book.deposit")
	defer timer.End()

	return s.applyTransaction(number, record.TxnDeposit, amount, description)
}

// Withdraw subtracts amount from the account balance and appends a
// WITHDRAWAL entry. It fails with InsufficientFundsError when amount exceeds
// the current balance; the table and the ledger are left unchanged.
func (s *Service) Withdraw(ctx context.Context, number string, amount decimal.Decimal, description string) (record.Transaction, error) {
	timer := telemetry.StartTimer(ctx, "book.withdraw")
	defer timer.End()

	return s.applyTransaction(number, record.TxnWithdrawal, amount, description)
}

// applyTransaction looks up the account, applies the signed amount, rewrites
// the account table and appends the ledger entry.
func (s *Service) applyTransaction(number string, txnType record.TransactionType, amount decimal.Decimal, description string) (record.Transaction, error) {
	if !amount.IsPositive() {
		return record.Transaction{}, NewInvalidAmountError(amount)
	}
	if err := record.ValidateField("description", description); err != nil {
		return record.Transaction{}, err
	}

	acc, ok, err := s.tables.Accounts.FindByNumber(number)
	if err != nil {
		return record.Transaction{}, err
	}
	if !ok {
		return record.Transaction{}, NewAccountNotFoundError(number)
	}

	if txnType == record.TxnWithdrawal && amount.GreaterThan(acc.Balance) {
		return record.Transaction{}, NewInsufficientFundsError(number, amount, acc.Balance)
	}

	acc.Balance = acc.Balance.Add(txnType.Signed(amount))

	if err := s.tables.Accounts.Upsert(acc); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return record.Transaction{}, NewAccountNotFoundError(number)
		}
		return record.Transaction{}, NewPersistenceError(string(txnType), number, false, err)
	}

	txn := record.Transaction{
		Account:      number,
		Type:         txnType,
		Amount:       amount,
		BalanceAfter: acc.Balance,
		Description:  description,
		Timestamp:    s.timestamp(),
	}
	if err := s.tables.Ledger.Append(txn); err != nil {
		// The balance is rewritten but the ledger entry is lost.
		return txn, NewPersistenceError(string(txnType), number, true, err)
	}

	return txn, nil
}

// GetAccount returns the stored account for the given number.
func (s *Service) GetAccount(ctx context.Context, number string) (record.Account, error) {
	timer := telemetry.StartTimer(ctx, "book.get_account")
	defer timer.End()

	acc, ok, err := s.tables.Accounts.FindByNumber(number)
	if err != nil {
		return record.Account{}, err
	}
	if !ok {
		return record.Account{}, NewAccountNotFoundError(number)
	}
	return acc, nil
}

// GetBalance returns the current stored balance for the given number.
func (s *Service) GetBalance(ctx context.Context, number string) (decimal.Decimal, error) {
	acc, err := s.GetAccount(ctx, number)
	if err != nil {
		return decimal.Zero, err
	}
	return acc.Balance, nil
}

// ListTransactions returns an iterator over the account's ledger entries in
// file order, oldest first. A number with no history yields an empty
// iteration; that includes numbers no account exists for, so callers that
// need to distinguish "no history" from "no such account" should check
// GetAccount first.
func (s *Service) ListTransactions(ctx context.Context, number string) (*store.LedgerIterator, error) {
	timer := telemetry.StartTimer(ctx, "book.list_transactions")
	defer timer.End()

	return s.tables.Ledger.FindByAccount(number)
}

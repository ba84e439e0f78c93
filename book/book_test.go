package book_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/crownbank/teller/book"
	"github.com/crownbank/teller/record"
	"github.com/crownbank/teller/store"
)

func openService(t *testing.T) (*book.Service, *store.Tables) {
	t.Helper()

	tables, err := store.Open(t.TempDir())
	assert.NoError(t, err)

	clock := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.Local)
	svc := book.New(tables, book.WithClock(func() time.Time { return clock }))

	return svc, tables
}

func newAccount(number string, balance int64) book.NewAccount {
	return book.NewAccount{
		Number:         number,
		Name:           "John Carter",
		Password:       "secret",
		Phone:          "555-0100",
		Email:          "john@example.com",
		Address:        "12 Main Street",
		Type:           record.TypeSavings,
		InitialBalance: decimal.NewFromInt(balance),
	}
}

func collect(t *testing.T, it *store.LedgerIterator) []record.Transaction {
	t.Helper()
	defer it.Close()

	var txns []record.Transaction
	for {
		txn, ok := it.Next()
		if !ok {
			break
		}
		txns = append(txns, txn)
	}
	assert.NoError(t, it.Err())

	return txns
}

func TestCreateAccount(t *testing.T) {
	svc, _ := openService(t)
	ctx := context.Background()

	acc, err := svc.CreateAccount(ctx, newAccount("1000000001", 500))
	assert.NoError(t, err)
	assert.Equal(t, record.StatusActive, acc.Status)
	assert.True(t, acc.Balance.Equal(decimal.NewFromInt(500)))

	it, err := svc.ListTransactions(ctx, "1000000001")
	assert.NoError(t, err)
	txns := collect(t, it)
	assert.Equal(t, 1, len(txns))
	assert.Equal(t, record.TxnInitialDeposit, txns[0].Type)
	assert.True(t, txns[0].Amount.Equal(decimal.NewFromInt(500)))
	assert.True(t, txns[0].BalanceAfter.Equal(decimal.NewFromInt(500)))
}

func TestAccountLifecycle(t *testing.T) {
	svc, _ := openService(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, newAccount("1000000001", 500))
	assert.NoError(t, err)

	txn, err := svc.Deposit(ctx, "1000000001", decimal.NewFromInt(200), "Cash deposit")
	assert.NoError(t, err)
	assert.True(t, txn.BalanceAfter.Equal(decimal.NewFromInt(700)))

	balance, err := svc.GetBalance(ctx, "1000000001")
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(700)))

	_, err = svc.Withdraw(ctx, "1000000001", decimal.NewFromInt(900), "Cash withdrawal")
	var insufficient *book.InsufficientFundsError
	assert.True(t, errors.As(err, &insufficient))
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(700)))

	// The failed withdrawal must leave both the balance and the ledger
	// untouched.
	balance, err = svc.GetBalance(ctx, "1000000001")
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(700)))

	txn, err = svc.Withdraw(ctx, "1000000001", decimal.NewFromInt(700), "Cash withdrawal")
	assert.NoError(t, err)
	assert.True(t, txn.BalanceAfter.Equal(decimal.Zero))

	it, err := svc.ListTransactions(ctx, "1000000001")
	assert.NoError(t, err)
	txns := collect(t, it)
	assert.Equal(t, 3, len(txns))
	assert.Equal(t, record.TxnInitialDeposit, txns[0].Type)
	assert.Equal(t, record.TxnDeposit, txns[1].Type)
	assert.Equal(t, record.TxnWithdrawal, txns[2].Type)
	assert.True(t, txns[2].BalanceAfter.Equal(decimal.Zero))
}

func TestCreateAccountDuplicateNumber(t *testing.T) {
	svc, _ := openService(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, newAccount("1000000001", 500))
	assert.NoError(t, err)

	_, err = svc.CreateAccount(ctx, newAccount("1000000001", 100))
	var dup *store.DuplicateAccountError
	assert.True(t, errors.As(err, &dup))
	assert.Equal(t, "1000000001", dup.Number)
}

func TestCreateAccountValidation(t *testing.T) {
	svc, _ := openService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*book.NewAccount)
	}{
		{"empty number", func(p *book.NewAccount) { p.Number = "" }},
		{"delimiter in name", func(p *book.NewAccount) { p.Name = "John|Carter" }},
		{"newline in address", func(p *book.NewAccount) { p.Address = "12 Main\nStreet" }},
		{"unknown type", func(p *book.NewAccount) { p.Type = "Checking" }},
		{"negative balance", func(p *book.NewAccount) { p.InitialBalance = decimal.NewFromInt(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := newAccount("1000000002", 100)
			tt.mutate(&params)
			_, err := svc.CreateAccount(ctx, params)
			assert.Error(t, err)
		})
	}
}

func TestTransactUnknownAccount(t *testing.T) {
	svc, _ := openService(t)
	ctx := context.Background()

	_, err := svc.Deposit(ctx, "9999999999", decimal.NewFromInt(50), "Cash deposit")
	var notFound *book.AccountNotFoundError
	assert.True(t, errors.As(err, &notFound))

	_, err = svc.Withdraw(ctx, "9999999999", decimal.NewFromInt(50), "Cash withdrawal")
	assert.True(t, errors.As(err, &notFound))
}

func TestTransactNonPositiveAmount(t *testing.T) {
	svc, _ := openService(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, newAccount("1000000001", 500))
	assert.NoError(t, err)

	var invalid *book.InvalidAmountError

	_, err = svc.Deposit(ctx, "1000000001", decimal.Zero, "Cash deposit")
	assert.True(t, errors.As(err, &invalid))

	_, err = svc.Withdraw(ctx, "1000000001", decimal.NewFromInt(-5), "Cash withdrawal")
	assert.True(t, errors.As(err, &invalid))
}

func TestListTransactionsUnknownAccount(t *testing.T) {
	svc, _ := openService(t)
	ctx := context.Background()

	it, err := svc.ListTransactions(ctx, "9999999999")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(collect(t, it)))
}

func TestGetAccountUnknownNumber(t *testing.T) {
	svc, _ := openService(t)

	_, err := svc.GetAccount(context.Background(), "9999999999")
	var notFound *book.AccountNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

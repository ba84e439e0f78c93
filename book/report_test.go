package book_test

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/crownbank/teller/record"
)

func TestReportEmptyStore(t *testing.T) {
	svc, _ := openService(t)

	rep, err := svc.Report(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, rep.TotalAccounts)
	assert.True(t, rep.TotalBalance.Equal(decimal.Zero))
	assert.True(t, rep.AverageBalance.Equal(decimal.Zero))
}

func TestReportAggregates(t *testing.T) {
	svc, _ := openService(t)
	ctx := context.Background()

	savings := newAccount("1000000001", 500)
	_, err := svc.CreateAccount(ctx, savings)
	assert.NoError(t, err)

	current := newAccount("1000000002", 250)
	current.Type = record.TypeCurrent
	_, err = svc.CreateAccount(ctx, current)
	assert.NoError(t, err)

	third := newAccount("1000000003", 0)
	_, err = svc.CreateAccount(ctx, third)
	assert.NoError(t, err)

	rep, err := svc.Report(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, rep.TotalAccounts)
	assert.Equal(t, 3, rep.ActiveAccounts)
	assert.Equal(t, 2, rep.SavingsAccounts)
	assert.Equal(t, 1, rep.CurrentAccounts)
	assert.True(t, rep.TotalBalance.Equal(decimal.NewFromInt(750)))
	assert.True(t, rep.AverageBalance.Equal(decimal.NewFromInt(250)))
}

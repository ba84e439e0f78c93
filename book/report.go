package book

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/crownbank/teller/record"
	"github.com/crownbank/teller/telemetry"
)

// Report aggregates the accounts table.
type Report struct {
	TotalAccounts   int
	ActiveAccounts  int
	SavingsAccounts int
	CurrentAccounts int
	TotalBalance    decimal.Decimal
	AverageBalance  decimal.Decimal
}

// Report loads every account and aggregates counts and balances. It is
// read-only; the only failure mode is a store read failure.
func (s *Service) Report(ctx context.Context) (Report, error) {
	timer := telemetry.StartTimer(ctx, "book.report")
	defer timer.End()

	accounts, err := s.tables.Accounts.LoadAll()
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		TotalBalance:   decimal.Zero,
		AverageBalance: decimal.Zero,
	}

	for _, acc := range accounts {
		rep.TotalAccounts++
		rep.TotalBalance = rep.TotalBalance.Add(acc.Balance)

		if acc.Status == record.StatusActive {
			rep.ActiveAccounts++
		}
		switch acc.Type {
		case record.TypeSavings:
			rep.SavingsAccounts++
		case record.TypeCurrent:
			rep.CurrentAccounts++
		}
	}

	if rep.TotalAccounts > 0 {
		rep.AverageBalance = rep.TotalBalance.Div(decimal.NewFromInt(int64(rep.TotalAccounts))).Round(2)
	}

	return rep, nil
}

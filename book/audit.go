package book

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/crownbank/teller/record"
	"github.com/crownbank/teller/telemetry"
)

// Mismatch records one ledger entry whose balanceAfter does not equal the
// balance replayed up to that entry.
type Mismatch struct {
	Entry    int // 1-based position within the account's history
	Type     record.TransactionType
	Expected decimal.Decimal // replayed balance
	Recorded decimal.Decimal // balanceAfter stored on the entry
}

// AuditResult is the outcome of replaying an account's ledger.
type AuditResult struct {
	Number          string
	Entries         int
	SkippedLines    int
	Mismatches      []Mismatch
	ReplayedBalance decimal.Decimal
	StoredBalance   decimal.Decimal
}

// Consistent reports whether the replay reproduced every balanceAfter and
// the final stored balance.
func (r AuditResult) Consistent() bool {
	return len(r.Mismatches) == 0 && r.ReplayedBalance.Equal(r.StoredBalance)
}

// Audit replays the account's ledger entries in file order, applying each
// amount with its sign, and checks that every balanceAfter matches the
// running balance and that the final balance equals the stored account
// balance. A diverged two-store write (see PersistenceError) shows up here
// as a replayed/stored mismatch.
func (s *Service) Audit(ctx context.Context, number string) (AuditResult, error) {
	timer := telemetry.StartTimer(ctx, "book.audit")
	defer timer.End()

	acc, err := s.GetAccount(ctx, number)
	if err != nil {
		return AuditResult{}, err
	}

	it, err := s.tables.Ledger.FindByAccount(number)
	if err != nil {
		return AuditResult{}, err
	}
	defer it.Close()

	result := AuditResult{
		Number:        number,
		StoredBalance: acc.Balance,
	}

	running := decimal.Zero
	for {
		txn, ok := it.Next()
		if !ok {
			break
		}
		result.Entries++
		running = running.Add(txn.Type.Signed(txn.Amount))
		if !running.Equal(txn.BalanceAfter) {
			result.Mismatches = append(result.Mismatches, Mismatch{
				Entry:    result.Entries,
				Type:     txn.Type,
				Expected: running,
				Recorded: txn.BalanceAfter,
			})
			// Resync to the recorded snapshot so one bad entry does not
			// cascade into a mismatch on every entry after it.
			running = txn.BalanceAfter
		}
	}
	if err := it.Err(); err != nil {
		return AuditResult{}, err
	}

	result.SkippedLines = it.Skipped()
	result.ReplayedBalance = running

	return result, nil
}

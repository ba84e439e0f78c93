package store_test

import (
	"os"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/crownbank/teller/record"
)

func txn(number string, txnType record.TransactionType, amount, after string) record.Transaction {
	return record.Transaction{
		Account:      number,
		Type:         txnType,
		Amount:       decimal.RequireFromString(amount),
		BalanceAfter: decimal.RequireFromString(after),
		Description:  "test entry",
		Timestamp:    time.Date(2024, 3, 2, 14, 0, 0, 0, time.Local),
	}
}

func TestFindByAccountMissingTable(t *testing.T) {
	tables, _ := openTables(t)

	it, err := tables.Ledger.FindByAccount("1000000001")
	assert.NoError(t, err)
	defer it.Close()

	_, ok := it.Next()
	assert.False(t, ok, "missing table yields an empty iteration")
	assert.NoError(t, it.Err())
}

func TestFindByAccountFiltersInFileOrder(t *testing.T) {
	tables, _ := openTables(t)

	assert.NoError(t, tables.Ledger.Append(txn("1000000001", record.TxnInitialDeposit, "500.00", "500.00")))
	assert.NoError(t, tables.Ledger.Append(txn("2000000002", record.TxnInitialDeposit, "10.00", "10.00")))
	assert.NoError(t, tables.Ledger.Append(txn("1000000001", record.TxnDeposit, "200.00", "700.00")))
	assert.NoError(t, tables.Ledger.Append(txn("1000000001", record.TxnWithdrawal, "700.00", "0.00")))

	it, err := tables.Ledger.FindByAccount("1000000001")
	assert.NoError(t, err)
	defer it.Close()

	var types []record.TransactionType
	for {
		entry, ok := it.Next()
		if !ok {
			break
		}
		assert.Equal(t, "1000000001", entry.Account)
		types = append(types, entry.Type)
	}
	assert.NoError(t, it.Err())
	assert.Equal(t, []record.TransactionType{
		record.TxnInitialDeposit,
		record.TxnDeposit,
		record.TxnWithdrawal,
	}, types)
}

func TestIteratorSkipsMalformedLines(t *testing.T) {
	tables, _ := openTables(t)

	assert.NoError(t, tables.Ledger.Append(txn("1000000001", record.TxnInitialDeposit, "500.00", "500.00")))

	// A torn line from a crashed append must not make history unreadable.
	f, err := os.OpenFile(tables.Ledger.Path(), os.O_APPEND|os.O_WRONLY, 0o644)
	assert.NoError(t, err)
	_, err = f.WriteString("1000000001|DEPOSIT|2\n")
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	assert.NoError(t, tables.Ledger.Append(txn("1000000001", record.TxnDeposit, "200.00", "700.00")))

	it, err := tables.Ledger.FindByAccount("1000000001")
	assert.NoError(t, err)
	defer it.Close()

	count := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	assert.NoError(t, it.Err())
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, it.Skipped())
}

func TestReadFromResumesAtOffset(t *testing.T) {
	tables, _ := openTables(t)

	assert.NoError(t, tables.Ledger.Append(txn("1000000001", record.TxnInitialDeposit, "500.00", "500.00")))

	first, offset, err := tables.Ledger.ReadFrom(0, "1000000001")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(first))

	// Nothing new yet.
	again, offset2, err := tables.Ledger.ReadFrom(offset, "1000000001")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(again))
	assert.Equal(t, offset, offset2)

	assert.NoError(t, tables.Ledger.Append(txn("2000000002", record.TxnDeposit, "5.00", "15.00")))
	assert.NoError(t, tables.Ledger.Append(txn("1000000001", record.TxnDeposit, "200.00", "700.00")))

	fresh, _, err := tables.Ledger.ReadFrom(offset, "1000000001")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(fresh))
	assert.Equal(t, record.TxnDeposit, fresh[0].Type)
	assert.True(t, fresh[0].BalanceAfter.Equal(decimal.RequireFromString("700.00")))
}

func TestReadFromLeavesPartialLine(t *testing.T) {
	tables, _ := openTables(t)

	assert.NoError(t, tables.Ledger.Append(txn("1000000001", record.TxnInitialDeposit, "500.00", "500.00")))

	// Simulate a writer that is mid-append: no trailing newline yet.
	f, err := os.OpenFile(tables.Ledger.Path(), os.O_APPEND|os.O_WRONLY, 0o644)
	assert.NoError(t, err)
	_, err = f.WriteString("1000000001|DEPOSIT|200.00|700.00|Cash")
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	txns, offset, err := tables.Ledger.ReadFrom(0, "1000000001")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(txns), "the partial line is left for the next read")

	size, err := tables.Ledger.Size()
	assert.NoError(t, err)
	assert.True(t, offset < size, "offset stops before the partial line")
}

package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/crownbank/teller/record"
)

type HistoryCmd struct {
	Number string `help:"Account number." arg:""`
	Follow bool   `help:"Keep watching the ledger and stream new entries." short:"f"`
}

var historyHeader = []string{"TIME", "TYPE", "AMOUNT", "BALANCE", "DESCRIPTION"}

func (cmd *HistoryCmd) Run(ctx *kong.Context, globals *Globals) error {
	rt, err := globals.setup("history")
	if err != nil {
		return err
	}
	defer rt.done(ctx)

	if cmd.Follow {
		return cmd.follow(rt, ctx)
	}

	it, err := rt.svc.ListTransactions(rt.ctx, cmd.Number)
	if err != nil {
		return fail(ctx.Stderr, err)
	}
	defer it.Close()

	var rows [][]string
	for {
		txn, ok := it.Next()
		if !ok {
			break
		}
		rows = append(rows, historyRow(txn))
	}
	if err := it.Err(); err != nil {
		return fail(ctx.Stderr, err)
	}

	if len(rows) == 0 {
		printInfof(ctx.Stdout, "No transactions found for account %s.", cmd.Number)
		return nil
	}

	widths := columnWidths(historyHeader, rows)
	printHistoryHeader(ctx, rt, widths)
	for _, row := range rows {
		printHistoryRow(ctx, widths, row)
	}

	if skipped := it.Skipped(); skipped > 0 {
		_, _ = fmt.Fprintln(ctx.Stdout, rt.styles.Warning(
			fmt.Sprintf("Skipped %d malformed ledger line(s).", skipped)))
	}

	return nil
}

// follow prints the existing history and then tails the transactions table,
// streaming entries as they are appended, until interrupted.
func (cmd *HistoryCmd) follow(rt *runtime, ctx *kong.Context) error {
	txns, offset, err := rt.tables.Ledger.ReadFrom(0, cmd.Number)
	if err != nil {
		return fail(ctx.Stderr, err)
	}

	widths := columnWidths(historyHeader, nil)
	printHistoryHeader(ctx, rt, widths)
	for _, txn := range txns {
		printHistoryRow(ctx, widths, historyRow(txn))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the table file: the file may not
	// exist yet, and appends surface as writes on the directory entry.
	ledgerPath := rt.tables.Ledger.Path()
	if err := watcher.Add(filepath.Dir(ledgerPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(ledgerPath), err)
	}

	sigCtx, stop := signal.NotifyContext(rt.ctx, os.Interrupt)
	defer stop()

	printInfof(ctx.Stdout, "Watching for new transactions (Ctrl-C to stop)...")

	for {
		select {
		case <-sigCtx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != ledgerPath || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}

			txns, next, err := rt.tables.Ledger.ReadFrom(offset, cmd.Number)
			if err != nil {
				return fail(ctx.Stderr, err)
			}
			offset = next
			for _, txn := range txns {
				printHistoryRow(ctx, widths, historyRow(txn))
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", werr)
		}
	}
}

func historyRow(txn record.Transaction) []string {
	return []string{
		txn.Timestamp.Format(record.TimeLayout),
		string(txn.Type),
		"$" + txn.Amount.StringFixed(2),
		"$" + txn.BalanceAfter.StringFixed(2),
		txn.Description,
	}
}

func printHistoryHeader(ctx *kong.Context, rt *runtime, widths []int) {
	cells := make([]string, len(historyHeader))
	for i, h := range historyHeader {
		cells[i] = rt.styles.Keyword(padRight(h, widths[i]))
	}
	_, _ = fmt.Fprintf(ctx.Stdout, "%s %s %s %s %s\n",
		cells[0], cells[1], cells[2], cells[3], cells[4])
}

func printHistoryRow(ctx *kong.Context, widths []int, row []string) {
	_, _ = fmt.Fprintf(ctx.Stdout, "%s %s %s %s %s\n",
		padRight(row[0], widths[0]),
		padRight(row[1], widths[1]),
		padLeft(row[2], widths[2]),
		padLeft(row[3], widths[3]),
		row[4])
}

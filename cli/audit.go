package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type AuditCmd struct {
	Number string `help:"Account number." arg:""`
}

func (cmd *AuditCmd) Run(ctx *kong.Context, globals *Globals) error {
	rt, err := globals.setup("audit")
	if err != nil {
		return err
	}
	defer rt.done(ctx)

	result, err := rt.svc.Audit(rt.ctx, cmd.Number)
	if err != nil {
		return fail(ctx.Stderr, err)
	}

	printInfof(ctx.Stdout, "Replayed %d ledger entries for account %s.",
		result.Entries, result.Number)
	if result.SkippedLines > 0 {
		_, _ = fmt.Fprintln(ctx.Stdout, rt.styles.Warning(
			fmt.Sprintf("Skipped %d malformed ledger line(s).", result.SkippedLines)))
	}

	if result.Consistent() {
		printSuccess(ctx.Stdout, fmt.Sprintf("Ledger and stored balance agree at $%s.",
			result.StoredBalance.StringFixed(2)))
		return nil
	}

	for _, m := range result.Mismatches {
		printError(ctx.Stdout, fmt.Sprintf("Entry #%d (%s): replayed $%s but the ledger records $%s",
			m.Entry, m.Type, m.Expected.StringFixed(2), m.Recorded.StringFixed(2)))
	}
	if !result.ReplayedBalance.Equal(result.StoredBalance) {
		printError(ctx.Stdout, fmt.Sprintf("Ledger replays to $%s but the account table holds $%s",
			result.ReplayedBalance.StringFixed(2), result.StoredBalance.StringFixed(2)))
	}

	return NewCommandError(1)
}

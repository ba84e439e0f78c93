package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type ReportCmd struct{}

func (cmd *ReportCmd) Run(ctx *kong.Context, globals *Globals) error {
	rt, err := globals.setup("report")
	if err != nil {
		return err
	}
	defer rt.done(ctx)

	rep, err := rt.svc.Report(rt.ctx)
	if err != nil {
		return fail(ctx.Stderr, err)
	}

	printBanner(ctx.Stdout, "System Report")

	rows := [][]string{
		{"Total Accounts", fmt.Sprintf("%d", rep.TotalAccounts)},
		{"Active Accounts", fmt.Sprintf("%d", rep.ActiveAccounts)},
		{"Savings Accounts", fmt.Sprintf("%d", rep.SavingsAccounts)},
		{"Current Accounts", fmt.Sprintf("%d", rep.CurrentAccounts)},
		{"Total Balance", "$" + rep.TotalBalance.StringFixed(2)},
		{"Average Balance", "$" + rep.AverageBalance.StringFixed(2)},
	}

	widths := columnWidths([]string{"", ""}, rows)
	for _, row := range rows {
		_, _ = fmt.Fprintf(ctx.Stdout, "%s  %s\n",
			padRight(row[0], widths[0]),
			rt.styles.Amount(padLeft(row[1], widths[1])))
	}

	return nil
}

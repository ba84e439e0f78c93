package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type BalanceCmd struct {
	Number string `help:"Account number." arg:""`
}

func (cmd *BalanceCmd) Run(ctx *kong.Context, globals *Globals) error {
	rt, err := globals.setup("balance")
	if err != nil {
		return err
	}
	defer rt.done(ctx)

	acc, err := rt.svc.GetAccount(rt.ctx, cmd.Number)
	if err != nil {
		return fail(ctx.Stderr, err)
	}

	styles := rt.styles
	_, _ = fmt.Fprintf(ctx.Stdout, "%s  %s %s  %s\n",
		styles.Account(acc.Number),
		styles.Amount("$"+acc.Balance.StringFixed(2)),
		styles.Dim(string(acc.Type)),
		styles.Dim(acc.Status.String()),
	)

	return nil
}

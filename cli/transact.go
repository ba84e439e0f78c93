package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type DepositCmd struct {
	Number      string `help:"Account number." arg:""`
	Amount      Amount `help:"Amount to deposit." arg:""`
	Description string `help:"Transaction description." default:"Cash deposit"`
}

func (cmd *DepositCmd) Run(ctx *kong.Context, globals *Globals) error {
	rt, err := globals.setup("deposit")
	if err != nil {
		return err
	}
	defer rt.done(ctx)

	if _, err := globals.login(rt, ctx); err != nil {
		return fail(ctx.Stderr, err)
	}

	txn, err := rt.svc.Deposit(rt.ctx, cmd.Number, cmd.Amount.Decimal, cmd.Description)
	if err != nil {
		return fail(ctx.Stderr, err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Deposited $%s into %s. New balance: $%s",
		txn.Amount.StringFixed(2), txn.Account, txn.BalanceAfter.StringFixed(2)))

	return nil
}

type WithdrawCmd struct {
	Number      string `help:"Account number." arg:""`
	Amount      Amount `help:"Amount to withdraw." arg:""`
	Description string `help:"Transaction description." default:"Cash withdrawal"`
}

func (cmd *WithdrawCmd) Run(ctx *kong.Context, globals *Globals) error {
	rt, err := globals.setup("withdraw")
	if err != nil {
		return err
	}
	defer rt.done(ctx)

	if _, err := globals.login(rt, ctx); err != nil {
		return fail(ctx.Stderr, err)
	}

	txn, err := rt.svc.Withdraw(rt.ctx, cmd.Number, cmd.Amount.Decimal, cmd.Description)
	if err != nil {
		return fail(ctx.Stderr, err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Withdrew $%s from %s. New balance: $%s",
		txn.Amount.StringFixed(2), txn.Account, txn.BalanceAfter.StringFixed(2)))

	return nil
}

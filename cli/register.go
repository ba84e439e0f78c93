package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/crownbank/teller/book"
	"github.com/crownbank/teller/record"
)

type RegisterCmd struct {
	Number          string `help:"Account number (10 digits)."`
	Name            string `help:"Account holder's full name."`
	AccountPassword string `help:"Account password."`
	Phone           string `help:"Phone number."`
	Email           string `help:"Email address."`
	Address         string `help:"Postal address."`
	Type            string `help:"Account type (Savings or Current)."`
	Balance         string `help:"Initial deposit amount." default:"0"`
}

func (cmd *RegisterCmd) Run(ctx *kong.Context, globals *Globals) error {
	rt, err := globals.setup("register")
	if err != nil {
		return err
	}
	defer rt.done(ctx)

	if _, err := globals.login(rt, ctx); err != nil {
		return fail(ctx.Stderr, err)
	}

	if cmd.missingFields() {
		if !isTerminal() {
			return fmt.Errorf("missing registration fields; pass them as flags or run interactively")
		}
		if err := cmd.prompt(ctx); err != nil {
			return err
		}
	}

	balance, err := decimal.NewFromString(cmd.Balance)
	if err != nil {
		return fmt.Errorf("invalid initial balance %q: %w", cmd.Balance, err)
	}

	params := book.NewAccount{
		Number:         cmd.Number,
		Name:           cmd.Name,
		Password:       cmd.AccountPassword,
		Phone:          cmd.Phone,
		Email:          cmd.Email,
		Address:        cmd.Address,
		Type:           record.AccountType(cmd.Type),
		InitialBalance: balance,
	}

	var acc record.Account
	var createErr error
	if err := withSpinner("Creating account...", func() {
		acc, createErr = rt.svc.CreateAccount(rt.ctx, params)
	}); err != nil {
		return err
	}
	if createErr != nil {
		return fail(ctx.Stderr, createErr)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Account %s created with balance $%s",
		acc.Number, acc.Balance.StringFixed(2)))

	return nil
}

func (cmd *RegisterCmd) missingFields() bool {
	return cmd.Number == "" || cmd.Name == "" || cmd.AccountPassword == "" ||
		cmd.Phone == "" || cmd.Email == "" || cmd.Address == "" || cmd.Type == ""
}

// prompt collects the registration fields interactively. The validators
// mirror what the service enforces, so the operator hears about a bad value
// before submitting the whole form.
func (cmd *RegisterCmd) prompt(ctx *kong.Context) error {
	printBanner(ctx.Stdout, "New Account Registration")

	noDelimiter := func(name string) func(string) error {
		return func(value string) error {
			return record.ValidateField(name, value)
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Account Number (10 digits)").
				Value(&cmd.Number).
				Validate(noDelimiter("accountNumber")),
			huh.NewInput().
				Title("Full Name").
				Value(&cmd.Name).
				Validate(noDelimiter("name")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&cmd.AccountPassword).
				Validate(noDelimiter("password")),
			huh.NewInput().
				Title("Phone").
				Value(&cmd.Phone).
				Validate(noDelimiter("phone")),
			huh.NewInput().
				Title("Email").
				Value(&cmd.Email).
				Validate(noDelimiter("email")),
			huh.NewInput().
				Title("Address").
				Value(&cmd.Address).
				Validate(noDelimiter("address")),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Account Type").
				Options(
					huh.NewOption("Savings", string(record.TypeSavings)),
					huh.NewOption("Current", string(record.TypeCurrent)),
				).
				Value(&cmd.Type),
			huh.NewInput().
				Title("Initial Balance").
				Value(&cmd.Balance).
				Validate(func(value string) error {
					_, err := decimal.NewFromString(value)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("registration cancelled: %w", err)
	}
	return nil
}

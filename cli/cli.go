// Package cli provides the command-line surface of the teller: account
// registration, deposits, withdrawals, balance and history queries,
// reporting and admin login over the file-backed tables.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/crownbank/teller/book"
	"github.com/crownbank/teller/output"
	"github.com/crownbank/teller/record"
	"github.com/crownbank/teller/store"
	"github.com/crownbank/teller/telemetry"
)

const (
	bankName   = "ROYAL CROWN BANK"
	bankSlogan = "Serving Since 1995"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"}).
			Padding(0, 8).
			Align(lipgloss.Center)
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// printBanner renders the bank header shown before interactive prompts.
func printBanner(w io.Writer, subtitle string) {
	text := bankName + "\n" + bankSlogan
	if subtitle != "" {
		text += "\n\n" + subtitle
	}
	_, _ = fmt.Fprintln(w, bannerStyle.Render(text))
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// withSpinner runs action behind a spinner when attached to a terminal, and
// plainly otherwise.
func withSpinner(title string, action func()) error {
	if !isTerminal() {
		action()
		return nil
	}
	return spinner.New().Title(title).Action(action).Run()
}

// runtime bundles what every command needs: the service over the data
// directory, styled output, and an optional telemetry collector.
type runtime struct {
	ctx    context.Context
	svc    *book.Service
	tables *store.Tables
	styles *output.Styles

	collector telemetry.Collector
	rootTimer telemetry.Timer
}

// setup opens the tables and wires telemetry for one command run.
func (g *Globals) setup(name string) (*runtime, error) {
	tables, err := store.Open(g.DataDir)
	if err != nil {
		return nil, err
	}

	rt := &runtime{
		ctx:    context.Background(),
		svc:    book.New(tables),
		tables: tables,
		styles: output.NewStyles(os.Stderr),
	}

	if g.Telemetry {
		rt.collector = telemetry.NewTimingCollector()
		rt.ctx = telemetry.WithCollector(rt.ctx, rt.collector)

		rt.rootTimer = rt.collector.Start(name)
		rt.ctx = telemetry.WithRootTimer(rt.ctx, rt.rootTimer)
	}

	return rt, nil
}

// done ends the root timer and prints the telemetry report, if enabled.
func (rt *runtime) done(ctx *kong.Context) {
	if rt.collector == nil {
		return
	}
	rt.rootTimer.End()
	_, _ = fmt.Fprintln(ctx.Stderr)
	rt.collector.Report(ctx.Stderr, rt.styles)
}

// login authenticates the operator, prompting interactively when the
// credentials were not supplied by flag or environment. The first login ever
// bootstraps the super-admin record.
func (g *Globals) login(rt *runtime, ctx *kong.Context) (record.Admin, error) {
	username, password := g.Username, g.Password

	if (username == "" || password == "") && isTerminal() {
		printBanner(ctx.Stdout, "Admin Login")

		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&username),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		))
		if err := form.Run(); err != nil {
			return record.Admin{}, fmt.Errorf("failed to read credentials: %w", err)
		}
	}

	return rt.svc.Login(rt.ctx, username, password)
}

package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands. Mutating commands
// authenticate with the admin credentials; the read-only commands (balance,
// history, report, audit) do not require a login.
type Globals struct {
	DataDir   string `help:"Directory holding the table files." env:"TELLER_DATA_DIR" default:"database"`
	Username  string `help:"Admin username for mutating commands." env:"TELLER_ADMIN_USER"`
	Password  string `help:"Admin password for mutating commands." env:"TELLER_ADMIN_PASSWORD"`
	Telemetry bool   `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Login    LoginCmd    `cmd:"" help:"Verify admin credentials, bootstrapping the first admin."`
	Register RegisterCmd `cmd:"" help:"Register a new account with an initial deposit."`
	Deposit  DepositCmd  `cmd:"" help:"Deposit an amount into an account."`
	Withdraw WithdrawCmd `cmd:"" help:"Withdraw an amount from an account."`
	Balance  BalanceCmd  `cmd:"" help:"Show an account's current balance."`
	History  HistoryCmd  `cmd:"" help:"Show an account's transaction history."`
	Report   ReportCmd   `cmd:"" help:"Aggregate all accounts into a system report."`
	Audit    AuditCmd    `cmd:"" help:"Replay an account's ledger and verify its balance."`
}

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/crownbank/teller/book"
	"github.com/crownbank/teller/record"
	"github.com/crownbank/teller/store"
)

func TestRenderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "duplicate account",
			err:  &store.DuplicateAccountError{Number: "1000000001"},
			want: "Account number already exists!",
		},
		{
			name: "account not found",
			err:  book.NewAccountNotFoundError("1000000001"),
			want: "Account not found!",
		},
		{
			name: "insufficient funds",
			err:  book.NewInsufficientFundsError("1000000001", decimal.NewFromInt(900), decimal.NewFromInt(700)),
			want: "Insufficient balance! Requested $900.00 but only $700.00 is available.",
		},
		{
			name: "invalid amount",
			err:  book.NewInvalidAmountError(decimal.Zero),
			want: "Amount must be greater than zero.",
		},
		{
			name: "invalid credentials",
			err:  book.NewInvalidCredentialsError("intruder"),
			want: "Invalid credentials!",
		},
		{
			name: "invalid field",
			err:  &record.InvalidFieldError{Field: "name", Value: "John|Carter"},
			want: "Invalid name: the value must not contain '|' or line breaks.",
		},
		{
			name: "unknown error passes through",
			err:  fmt.Errorf("something else"),
			want: "something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderError(tt.err))
		})
	}
}

func TestRenderErrorUnwrapsNested(t *testing.T) {
	err := fmt.Errorf("creating account: %w", &store.DuplicateAccountError{Number: "1000000001"})
	assert.Equal(t, "Account number already exists!", renderError(err))
}

func TestRenderDivergedPersistence(t *testing.T) {
	err := book.NewPersistenceError("DEPOSIT", "1000000001", true, errors.New("disk full"))
	got := renderError(err)
	assert.Contains(t, got, "ledger entry was lost")
	assert.Contains(t, got, "teller audit 1000000001")
}

func TestFailPrintsAndReturnsExitCode(t *testing.T) {
	var buf bytes.Buffer

	err := fail(&buf, book.NewAccountNotFoundError("1000000001"))

	var cmdErr *CommandError
	assert.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitCode())
	assert.Contains(t, buf.String(), "Account not found!")
}

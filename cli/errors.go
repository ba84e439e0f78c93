package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/crownbank/teller/book"
	"github.com/crownbank/teller/record"
	"github.com/crownbank/teller/store"
)

// renderError maps the error taxonomy onto the operator-facing messages.
// Every failure surfaces as a readable message; nothing is swallowed.
func renderError(err error) string {
	var dup *store.DuplicateAccountError
	if errors.As(err, &dup) {
		return "Account number already exists!"
	}

	var notFound *book.AccountNotFoundError
	if errors.As(err, &notFound) {
		return "Account not found!"
	}

	var insufficient *book.InsufficientFundsError
	if errors.As(err, &insufficient) {
		return fmt.Sprintf("Insufficient balance! Requested $%s but only $%s is available.",
			insufficient.Requested.StringFixed(2), insufficient.Available.StringFixed(2))
	}

	var badAmount *book.InvalidAmountError
	if errors.As(err, &badAmount) {
		return "Amount must be greater than zero."
	}

	var badCreds *book.InvalidCredentialsError
	if errors.As(err, &badCreds) {
		return "Invalid credentials!"
	}

	var persistence *book.PersistenceError
	if errors.As(err, &persistence) {
		if persistence.Diverged {
			return fmt.Sprintf("The balance was saved but the ledger entry was lost (%v). "+
				"Run 'teller audit %s' to review the divergence.",
				persistence.Underlying, persistence.Number)
		}
		return fmt.Sprintf("Could not complete %s: %v", persistence.Op, persistence.Underlying)
	}

	var invalidField *record.InvalidFieldError
	if errors.As(err, &invalidField) {
		return fmt.Sprintf("Invalid %s: the value must not contain '%s' or line breaks.",
			invalidField.Field, record.Delimiter)
	}

	var malformed *record.MalformedRecordError
	if errors.As(err, &malformed) {
		return fmt.Sprintf("The %s table is damaged: %v", malformed.Table, err)
	}

	var unavailable *store.UnavailableError
	if errors.As(err, &unavailable) {
		return fmt.Sprintf("Could not open the %s table: %v", unavailable.Table, unavailable.Underlying)
	}

	return err.Error()
}

// fail prints the rendered message and returns a non-zero CommandError.
func fail(w io.Writer, err error) error {
	printError(w, renderError(err))
	return NewCommandError(1)
}

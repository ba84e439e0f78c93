package record

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field counts per table. A decoded line must have exactly this many fields;
// fewer means truncation, more means a field contained the delimiter.
const (
	accountFields     = 11
	transactionFields = 6
	adminFields       = 3
)

// ValidateField reports whether value can be stored in a text field. The
// format has no escaping, so the delimiter and line breaks are rejected.
func ValidateField(name, value string) error {
	if strings.ContainsAny(value, Delimiter+"\n\r") {
		return &InvalidFieldError{Field: name, Value: value}
	}
	return nil
}

// EncodeAccount renders an account as a single table line without a trailing
// newline. Text fields containing the delimiter are rejected rather than
// written, since they would corrupt every later read of the table.
func EncodeAccount(a Account) (string, error) {
	fields := []struct{ name, value string }{
		{"accountNumber", a.Number},
		{"name", a.Name},
		{"password", a.Password},
		{"phone", a.Phone},
		{"email", a.Email},
		{"address", a.Address},
		{"accountType", string(a.Type)},
	}
	for _, f := range fields {
		if err := ValidateField(f.name, f.value); err != nil {
			return "", err
		}
	}

	return strings.Join([]string{
		a.Number,
		a.Name,
		a.Password,
		a.Phone,
		a.Email,
		a.Address,
		a.Balance.StringFixed(2),
		string(a.Type),
		a.CreatedAt.Format(TimeLayout),
		strconv.Itoa(int(a.Status)),
		strconv.Itoa(a.LoginAttempts),
	}, Delimiter), nil
}

// DecodeAccount parses one accounts-table line.
func DecodeAccount(line string) (Account, error) {
	parts := strings.Split(line, Delimiter)
	if len(parts) != accountFields {
		return Account{}, NewMalformedRecordError("accounts", line,
			"expected "+strconv.Itoa(accountFields)+" fields, got "+strconv.Itoa(len(parts)), nil)
	}

	balance, err := decimal.NewFromString(parts[6])
	if err != nil {
		return Account{}, NewMalformedRecordError("accounts", line, "invalid balance", err)
	}
	createdAt, err := time.ParseInLocation(TimeLayout, parts[8], time.Local)
	if err != nil {
		return Account{}, NewMalformedRecordError("accounts", line, "invalid createdAt", err)
	}
	status, err := strconv.Atoi(parts[9])
	if err != nil {
		return Account{}, NewMalformedRecordError("accounts", line, "invalid status", err)
	}
	attempts, err := strconv.Atoi(parts[10])
	if err != nil {
		return Account{}, NewMalformedRecordError("accounts", line, "invalid loginAttempts", err)
	}

	return Account{
		Number:        parts[0],
		Name:          parts[1],
		Password:      parts[2],
		Phone:         parts[3],
		Email:         parts[4],
		Address:       parts[5],
		Balance:       balance,
		Type:          AccountType(parts[7]),
		CreatedAt:     createdAt,
		Status:        Status(status),
		LoginAttempts: attempts,
	}, nil
}

// EncodeTransaction renders a ledger entry as a single table line without a
// trailing newline.
func EncodeTransaction(t Transaction) (string, error) {
	if err := ValidateField("accountNumber", t.Account); err != nil {
		return "", err
	}
	if err := ValidateField("description", t.Description); err != nil {
		return "", err
	}

	return strings.Join([]string{
		t.Account,
		string(t.Type),
		t.Amount.StringFixed(2),
		t.BalanceAfter.StringFixed(2),
		t.Description,
		t.Timestamp.Format(TimeLayout),
	}, Delimiter), nil
}

// DecodeTransaction parses one transactions-table line.
func DecodeTransaction(line string) (Transaction, error) {
	parts := strings.Split(line, Delimiter)
	if len(parts) != transactionFields {
		return Transaction{}, NewMalformedRecordError("transactions", line,
			"expected "+strconv.Itoa(transactionFields)+" fields, got "+strconv.Itoa(len(parts)), nil)
	}

	amount, err := decimal.NewFromString(parts[2])
	if err != nil {
		return Transaction{}, NewMalformedRecordError("transactions", line, "invalid amount", err)
	}
	balanceAfter, err := decimal.NewFromString(parts[3])
	if err != nil {
		return Transaction{}, NewMalformedRecordError("transactions", line, "invalid balanceAfter", err)
	}
	timestamp, err := time.ParseInLocation(TimeLayout, parts[5], time.Local)
	if err != nil {
		return Transaction{}, NewMalformedRecordError("transactions", line, "invalid timestamp", err)
	}

	return Transaction{
		Account:      parts[0],
		Type:         TransactionType(parts[1]),
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Description:  parts[4],
		Timestamp:    timestamp,
	}, nil
}

// EncodeAdmin renders an admin row as a single table line without a trailing
// newline.
func EncodeAdmin(a Admin) (string, error) {
	if err := ValidateField("username", a.Username); err != nil {
		return "", err
	}
	if err := ValidateField("password", a.Password); err != nil {
		return "", err
	}

	return strings.Join([]string{
		a.Username,
		a.Password,
		strconv.Itoa(a.AccessLevel),
	}, Delimiter), nil
}

// DecodeAdmin parses one admin-table line.
func DecodeAdmin(line string) (Admin, error) {
	parts := strings.Split(line, Delimiter)
	if len(parts) != adminFields {
		return Admin{}, NewMalformedRecordError("admins", line,
			"expected "+strconv.Itoa(adminFields)+" fields, got "+strconv.Itoa(len(parts)), nil)
	}

	level, err := strconv.Atoi(parts[2])
	if err != nil {
		return Admin{}, NewMalformedRecordError("admins", line, "invalid access_level", err)
	}

	return Admin{
		Username:    parts[0],
		Password:    parts[1],
		AccessLevel: level,
	}, nil
}

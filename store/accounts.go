package store

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/crownbank/teller/record"
)

// AccountStore reads and rewrites the accounts table. Every update loads the
// full table, patches one record and rewrites the whole file, so the table
// always holds exactly one well-formed line per account.
type AccountStore struct {
	path string
	mu   sync.Mutex
}

// LoadAll reads every account in table order. A missing table file is not an
// error; it means no accounts exist yet. A malformed line fails the whole
// load: the next rewrite would otherwise silently drop the record behind it.
func (s *AccountStore) LoadAll() ([]record.Account, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, NewUnavailableError("accounts", s.path, err)
	}

	var accounts []record.Account
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		acc, err := record.DecodeAccount(line)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, nil
}

// FindByNumber scans the table for the account with the given number. The
// number is unique, so the first match is the only one.
func (s *AccountStore) FindByNumber(number string) (record.Account, bool, error) {
	accounts, err := s.LoadAll()
	if err != nil {
		return record.Account{}, false, err
	}

	for _, acc := range accounts {
		if acc.Number == number {
			return acc, true, nil
		}
	}
	return record.Account{}, false, nil
}

// Insert appends a new account to the table. It fails with
// DuplicateAccountError if the account number is already stored.
func (s *AccountStore) Insert(acc record.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists, err := s.FindByNumber(acc.Number)
	if err != nil {
		return err
	}
	if exists {
		return &DuplicateAccountError{Number: acc.Number}
	}

	line, err := record.EncodeAccount(acc)
	if err != nil {
		return err
	}
	return appendLine(s.path, "accounts", line)
}

// Upsert replaces the stored record whose number matches acc and rewrites
// the entire table. If no record matches it returns ErrNotFound and leaves
// the table unchanged. The new content is buffered in full and written to a
// temp file that is renamed over the table, so a failed rewrite never
// truncates it.
func (s *AccountStore) Upsert(acc record.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.LoadAll()
	if err != nil {
		return err
	}

	updated := false
	var buf strings.Builder
	for i := range accounts {
		if accounts[i].Number == acc.Number {
			accounts[i] = acc
			updated = true
		}
		line, err := record.EncodeAccount(accounts[i])
		if err != nil {
			return err
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if !updated {
		return ErrNotFound
	}

	if err := writeFileAtomic(s.path, []byte(buf.String())); err != nil {
		return NewUnavailableError("accounts", s.path, err)
	}
	return nil
}

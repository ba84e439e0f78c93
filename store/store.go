// Package store provides the file-backed tables of the teller: the accounts
// table (full read, linear lookup, whole-file rewrite on update), the
// append-only transactions table, and the admin table.
//
// Each table is a plain text file of pipe-delimited lines under a single
// data directory; the record package owns the line format. The tables assume
// a single exclusive process. A per-table mutex serializes writers within
// that process, because the rewrite-whole-file update strategy loses updates
// under concurrent writers.
//
// Example usage:
//
//	tables, err := store.Open("database")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	acc, ok, err := tables.Accounts.FindByNumber("1000000001")
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Table file names inside the data directory.
const (
	accountsFile     = "accounts_table.txt"
	transactionsFile = "transactions_table.txt"
	adminsFile       = "admin_table.txt"
)

// Tables bundles the three file-backed tables of one data directory.
type Tables struct {
	Accounts *AccountStore
	Ledger   *LedgerStore
	Admins   *AdminStore
}

// Open creates the data directory if needed and returns the tables rooted in
// it. Failing to create the directory is the one fatal store error: nothing
// can be persisted without it.
func Open(dir string) (*Tables, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return &Tables{
		Accounts: &AccountStore{path: filepath.Join(dir, accountsFile)},
		Ledger:   &LedgerStore{path: filepath.Join(dir, transactionsFile)},
		Admins:   &AdminStore{path: filepath.Join(dir, adminsFile)},
	}, nil
}

// appendLine opens path in append mode and writes one newline-terminated
// line. Used by every table for its append path.
func appendLine(path, table, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return NewUnavailableError(table, path, err)
	}

	_, werr := f.WriteString(line + "\n")
	cerr := f.Close()
	if werr != nil {
		return NewUnavailableError(table, path, werr)
	}
	if cerr != nil {
		return NewUnavailableError(table, path, cerr)
	}
	return nil
}

// writeFileAtomic replaces path with data by writing a temp file in the same
// directory and renaming it over the target. A failed write never truncates
// the existing table.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}

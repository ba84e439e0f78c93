package store

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/crownbank/teller/record"
)

// LedgerStore appends to and scans the transactions table. The table is
// append-only: no update, delete or compaction path exists.
type LedgerStore struct {
	path string
	mu   sync.Mutex
}

// Path returns the table file path, for callers that watch the medium.
func (s *LedgerStore) Path() string {
	return s.path
}

// Append encodes one transaction and writes it to the end of the table. If
// the table cannot be opened the entry is lost and the caller must treat the
// operation as not durable.
func (s *LedgerStore) Append(txn record.Transaction) error {
	line, err := record.EncodeTransaction(txn)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return appendLine(s.path, "transactions", line)
}

// FindByAccount returns a lazy iterator over the account's transactions in
// file order, oldest first. The iterator is not restartable; call
// FindByAccount again to scan from the start. A missing table file yields an
// empty iteration.
func (s *LedgerStore) FindByAccount(number string) (*LedgerIterator, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &LedgerIterator{account: number}, nil
		}
		return nil, NewUnavailableError("transactions", s.path, err)
	}

	return &LedgerIterator{
		account: number,
		file:    f,
		scanner: bufio.NewScanner(f),
	}, nil
}

// LedgerIterator walks the transactions table, filtered to one account.
// Malformed lines are skipped and counted rather than failing the scan; a
// torn trailing line from a crash must not make the rest of the history
// unreadable.
type LedgerIterator struct {
	account string
	file    *os.File
	scanner *bufio.Scanner
	err     error
	skipped int
}

// Next returns the next matching transaction. It reports false when the
// table is exhausted or a read error occurred; check Err afterwards.
func (it *LedgerIterator) Next() (record.Transaction, bool) {
	if it.scanner == nil || it.err != nil {
		return record.Transaction{}, false
	}

	for it.scanner.Scan() {
		line := it.scanner.Text()
		if line == "" {
			continue
		}
		txn, err := record.DecodeTransaction(line)
		if err != nil {
			it.skipped++
			continue
		}
		if txn.Account != it.account {
			continue
		}
		return txn, true
	}

	it.err = it.scanner.Err()
	return record.Transaction{}, false
}

// Err returns the first read error encountered, if any.
func (it *LedgerIterator) Err() error {
	return it.err
}

// Skipped returns how many malformed lines were passed over so far.
func (it *LedgerIterator) Skipped() int {
	return it.skipped
}

// Close releases the underlying file.
func (it *LedgerIterator) Close() error {
	if it.file == nil {
		return nil
	}
	return it.file.Close()
}

// Size returns the current byte length of the table, the offset from which
// ReadFrom picks up newly appended entries.
func (s *LedgerStore) Size() (int64, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, NewUnavailableError("transactions", s.path, err)
	}
	return info.Size(), nil
}

// ReadFrom decodes the complete lines appended after offset, filtered to the
// given account, and returns them with the offset to resume from. A final
// line without a newline is left for the next call, since the writer may
// still be mid-append.
func (s *LedgerStore) ReadFrom(offset int64, number string) ([]record.Transaction, int64, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, offset, nil
		}
		return nil, offset, NewUnavailableError("transactions", s.path, err)
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, offset, NewUnavailableError("transactions", s.path, err)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, offset, NewUnavailableError("transactions", s.path, err)
	}

	// Only consume up to the last newline; the remainder is a partial line.
	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return nil, offset, nil
	}

	var txns []record.Transaction
	for _, line := range bytes.Split(data[:end], []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		txn, err := record.DecodeTransaction(string(line))
		if err != nil {
			continue
		}
		if txn.Account == number {
			txns = append(txns, txn)
		}
	}

	return txns, offset + int64(end) + 1, nil
}

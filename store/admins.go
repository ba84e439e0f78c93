package store

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/crownbank/teller/record"
)

// AdminStore reads and appends the admin table. Admin records are created
// once and never rewritten.
type AdminStore struct {
	path string
	mu   sync.Mutex
}

// Bootstrapped reports whether the admin table exists. A missing table means
// no admin has ever been created and the first login may bootstrap one.
func (s *AdminStore) Bootstrapped() (bool, error) {
	_, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, NewUnavailableError("admins", s.path, err)
	}
	return true, nil
}

// FindByUsername scans the table for the admin with the given username.
func (s *AdminStore) FindByUsername(username string) (record.Admin, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return record.Admin{}, false, nil
		}
		return record.Admin{}, false, NewUnavailableError("admins", s.path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		admin, err := record.DecodeAdmin(line)
		if err != nil {
			return record.Admin{}, false, err
		}
		if admin.Username == username {
			return admin, true, nil
		}
	}

	return record.Admin{}, false, nil
}

// Insert appends a new admin record to the table.
func (s *AdminStore) Insert(admin record.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := record.EncodeAdmin(admin)
	if err != nil {
		return err
	}
	return appendLine(s.path, "admins", line)
}

package book

import (
	"context"

	"github.com/crownbank/teller/record"
	"github.com/crownbank/teller/telemetry"
)

// Bootstrap credentials accepted on the very first login, before any admin
// table exists.
const (
	BootstrapUsername = "admin"
	BootstrapPassword = "admin123"
)

// Login authenticates an admin against the admin table and returns the
// matching record, to be threaded explicitly through subsequent calls.
//
// When no admin table exists yet, logging in with the bootstrap credentials
// creates the first super-admin record. Any other failure to match returns
// InvalidCredentialsError.
func (s *Service) Login(ctx context.Context, username, password string) (record.Admin, error) {
	timer := telemetry.StartTimer(ctx, "book.login")
	defer timer.End()

	bootstrapped, err := s.tables.Admins.Bootstrapped()
	if err != nil {
		return record.Admin{}, err
	}

	if !bootstrapped {
		if username != BootstrapUsername || password != BootstrapPassword {
			return record.Admin{}, NewInvalidCredentialsError(username)
		}

		admin := record.Admin{
			Username:    username,
			Password:    password,
			AccessLevel: record.AccessSuper,
		}
		if err := s.tables.Admins.Insert(admin); err != nil {
			return record.Admin{}, err
		}
		return admin, nil
	}

	admin, ok, err := s.tables.Admins.FindByUsername(username)
	if err != nil {
		return record.Admin{}, err
	}
	if !ok || admin.Password != password {
		return record.Admin{}, NewInvalidCredentialsError(username)
	}

	return admin, nil
}

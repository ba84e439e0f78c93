package store_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/crownbank/teller/record"
)

func TestBootstrapped(t *testing.T) {
	tables, _ := openTables(t)

	ok, err := tables.Admins.Bootstrapped()
	assert.NoError(t, err)
	assert.False(t, ok, "no admin table exists yet")

	admin := record.Admin{Username: "admin", Password: "admin123", AccessLevel: record.AccessSuper}
	assert.NoError(t, tables.Admins.Insert(admin))

	ok, err = tables.Admins.Bootstrapped()
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestFindByUsername(t *testing.T) {
	tables, _ := openTables(t)

	assert.NoError(t, tables.Admins.Insert(record.Admin{Username: "admin", Password: "admin123", AccessLevel: record.AccessSuper}))
	assert.NoError(t, tables.Admins.Insert(record.Admin{Username: "clerk", Password: "pw", AccessLevel: record.AccessRegular}))

	admin, ok, err := tables.Admins.FindByUsername("clerk")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, record.AccessRegular, admin.AccessLevel)

	_, ok, err = tables.Admins.FindByUsername("nobody")
	assert.NoError(t, err)
	assert.False(t, ok)
}

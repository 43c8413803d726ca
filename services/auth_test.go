package services

import (
	"testing"

	"payroll_system/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type idSet map[int]bool

func (s idSet) Exists(id int) bool { return s[id] }

func TestAdminLoginPlainSecret(t *testing.T) {
	a := NewAuthenticator("admin123", "", idSet{})

	assert.NoError(t, a.AdminLogin("admin123"))
	assert.ErrorIs(t, a.AdminLogin("admin"), types.ErrUnauthorized)
	assert.ErrorIs(t, a.AdminLogin("admin123 "), types.ErrUnauthorized)
	assert.ErrorIs(t, a.AdminLogin(""), types.ErrUnauthorized)
}

func TestAdminLoginEmptySecretRejectsEverything(t *testing.T) {
	a := NewAuthenticator("", "", idSet{})
	assert.ErrorIs(t, a.AdminLogin(""), types.ErrUnauthorized)
}

func TestAdminLoginHashedSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	a := NewAuthenticator("admin123", string(hash), idSet{})

	assert.NoError(t, a.AdminLogin("s3cret"))
	assert.ErrorIs(t, a.AdminLogin("admin123"), types.ErrUnauthorized)
}

func TestEmployeeLogin(t *testing.T) {
	a := NewAuthenticator("admin123", "", idSet{4: true})

	assert.NoError(t, a.EmployeeLogin(4))
	assert.ErrorIs(t, a.EmployeeLogin(5), types.ErrUnauthorized)
}

package services

import (
	"crypto/subtle"

	"payroll_system/types"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// EmployeeLookup is satisfied by *PayrollService and *store.Store.
type EmployeeLookup interface {
	Exists(id int) bool
}

// Authenticator gates the protected operations. Admins present the fixed
// secret; employees present an id that exists in the roster.
type Authenticator struct {
	adminSecret string
	adminHash   []byte
	employees   EmployeeLookup
}

// NewAuthenticator prefers adminHash (bcrypt) when it is set.
func NewAuthenticator(adminSecret, adminHash string, employees EmployeeLookup) *Authenticator {
	a := &Authenticator{adminSecret: adminSecret, employees: employees}
	if adminHash != "" {
		a.adminHash = []byte(adminHash)
	}
	return a
}

func (a *Authenticator) AdminLogin(secret string) error {
	if a.adminHash != nil {
		if bcrypt.CompareHashAndPassword(a.adminHash, []byte(secret)) != nil {
			return types.ErrUnauthorized
		}
		return nil
	}
	if a.adminSecret == "" || subtle.ConstantTimeCompare([]byte(a.adminSecret), []byte(secret)) != 1 {
		return types.ErrUnauthorized
	}
	return nil
}

func (a *Authenticator) EmployeeLogin(id int) error {
	if !a.employees.Exists(id) {
		return types.ErrUnauthorized
	}
	return nil
}

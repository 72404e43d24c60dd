package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Permission gates which dashboard modules a user can see. The set is
// closed: unknown tags are rejected at write time rather than stored as
// free-form strings.
type Permission string

const (
	PermPatients  Permission = "patients"
	PermSessions  Permission = "sessions"
	PermInventory Permission = "inventory"
	PermBilling   Permission = "billing"
	PermPayroll   Permission = "payroll"
	PermFinance   Permission = "finance"
	PermLab       Permission = "lab"
	PermAdmin     Permission = "admin"
)

var allPermissions = map[Permission]struct{}{
	PermPatients:  {},
	PermSessions:  {},
	PermInventory: {},
	PermBilling:   {},
	PermPayroll:   {},
	PermFinance:   {},
	PermLab:       {},
	PermAdmin:     {},
}

func (p Permission) Valid() bool {
	_, ok := allPermissions[p]
	return ok
}

// ValidatePermissions rejects any tag outside the closed set.
func ValidatePermissions(perms []Permission) error {
	for _, p := range perms {
		if !p.Valid() {
			return fmt.Errorf("unknown permission: %s", p)
		}
	}

	return nil
}

// User is a dashboard account. The password is stored and compared in
// plaintext, faithfully to the system this backend replaces; there is no
// real authentication here.
type User struct {
	ID          uuid.UUID
	Name        string
	Username    string
	Password    string
	Permissions []Permission
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

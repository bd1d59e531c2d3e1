package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role gates access to merchant-only operations.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleMerchant Role = "merchant"
)

// User is a registered account. PasswordHash is empty for accounts created
// through a federated identity provider.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	DisplayName  string
	Roles        []Role
	Address      *ShippingAddress // Saved checkout address, if any.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// RoleStrings returns the roles as plain strings for token claims.
func (u *User) RoleStrings() []string {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}

	return roles
}

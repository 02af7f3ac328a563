package entities

import (
	"time"
)

// Role is the closed set of user roles. Every privileged operation is
// gated on an exact match against one of these values.
type Role string

const (
	RoleClient Role = "client"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered user. Email is the unique lookup key.
type User struct {
	ID           string    `json:"_id,omitempty"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

package domain

import "time"

// Role gates access to API operations.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether the role is one the policy table knows about.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Account is a login identity. It is not a Customer: accounts authenticate
// API callers, customers are the records they manage.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

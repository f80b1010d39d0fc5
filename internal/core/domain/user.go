package domain

import "time"

// Role is the closed set of user roles. Keeping it a distinct type prevents a
// mistyped literal from silently disabling an authorization check.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CanAccess is the ownership policy: a user may act on a resource when they
// own it or hold the admin role.
func (u *User) CanAccess(ownerID string) bool {
	return u.Role == RoleAdmin || u.ID == ownerID
}

package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// ValidRole reports whether r is one of the two roles the API knows about.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

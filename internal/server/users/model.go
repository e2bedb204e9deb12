package users

import "time"

// Roles recognized by the catalog. Authorization is binary: admins may
// mutate the catalog, everyone else may only read it.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string
	UserName     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// ValidRole reports whether the given role is one of the recognized values.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

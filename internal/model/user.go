// Package model defines the data structures shared by every layer of the application.
package model

// Role is the kind of account a user registered as.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the two supported roles.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// User is a registered account. Users are created once at registration and are
// never updated or deleted afterwards.
//
// Password holds whatever the auth layer handed to the store (a bcrypt hash in
// practice). It is never serialized to JSON.
type User struct {
	ID       int64  `json:"id"       db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-"        db:"password"`
	Role     Role   `json:"role"     db:"role"`
	Name     string `json:"name"     db:"name"`
}

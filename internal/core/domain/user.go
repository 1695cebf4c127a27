package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User models a registered account. PasswordHash is opaque and is never
// serialized outward.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	PermLevel    string    `json:"perm_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin permission level.
func (u *User) IsAdmin() bool {
	return u.PermLevel == RoleAdmin
}

// UserUpdate carries the mutable account fields for a PATCH. Empty fields are
// left untouched; Password is plaintext and is hashed before persistence.
type UserUpdate struct {
	Name     string
	Password string
	Email    string
}

// Empty reports whether the update carries no field at all.
func (u UserUpdate) Empty() bool {
	return u.Name == "" && u.Password == "" && u.Email == ""
}

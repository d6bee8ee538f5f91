package user

import (
	"github.com/example/board-service/domain/entity"
)

// Role values assignable to a user account.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a user account in the system.
type User struct {
	entity.Base
	UserID       string `gorm:"uniqueIndex;not null;size:20"`
	PasswordHash string `gorm:"not null;type:text"`
	Username     string `gorm:"not null;size:50"`
	Email        string `gorm:"not null;size:100"`
	Role         string `gorm:"not null;size:10;default:USER"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// CanLogin reports whether the account may authenticate: it must be
// active and not soft-deleted.
func (u *User) CanLogin() bool {
	return u.Active && !u.IsDeleted()
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Claims is the authenticated identity extracted from a verified token.
// It is request-scoped: built once per request by the authentication
// middleware and discarded when the request ends.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

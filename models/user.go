package models

import (
	"time"
)

// UserRole is stored as its ordinal. Lower values carry more privilege.
type UserRole int

const (
	RoleAdmin       UserRole = 0
	RoleModerator   UserRole = 1
	RoleContributor UserRole = 2
)

const (
	SentinelUserID       uint = 0
	SentinelUserUsername      = "empty_user"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleContributor:
		return true
	default:
		return false
	}
}

// String returns the role name exposed to clients.
func (r UserRole) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleModerator:
		return "moderator"
	case RoleContributor:
		return "user"
	default:
		return "unknown"
	}
}

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      UserRole  `json:"user_status" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsContributor() bool {
	return u.Role == RoleContributor
}

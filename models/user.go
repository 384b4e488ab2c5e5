package models

import "time"

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// ValidRole reports whether the value belongs to the closed role enumeration.
func ValidRole(role UserRole) bool {
	switch role {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// ReservedUsername is rejected at signup; it aliases the caller on /users/me.
const ReservedUsername = "me"

type User struct {
	ID        uint     `json:"-" gorm:"primarykey"`
	Username  string   `json:"username" gorm:"uniqueIndex;not null;size:150"`
	Email     string   `json:"email" gorm:"uniqueIndex;not null;size:254"`
	FirstName string   `json:"first_name" gorm:"size:150"`
	LastName  string   `json:"last_name" gorm:"size:150"`
	Bio       string   `json:"bio" gorm:"type:text"`
	Role      UserRole `json:"role" gorm:"size:20;default:'user'"`
	Superuser bool     `json:"-"`
	// Bcrypt hash of the last dispatched confirmation code. Overwritten on
	// every signup for the same identity, which invalidates the old code.
	ConfirmationCode string    `json:"-" gorm:"size:60"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// IsAdmin reports admin-tier authority: the admin role or the superuser flag.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Superuser
}

// IsModerator is strictly the moderator role. Admins pass moderation checks
// through the tier ordering, not through this predicate.
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}

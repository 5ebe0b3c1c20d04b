package models

import "gorm.io/gorm"

// Role is the access level attached to a user and carried in token claims.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a raw claim value onto a known role. The second return
// value is false for anything outside the two supported roles.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleStudent:
		return RoleStudent, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return Role(raw), false
}

type User struct {
	gorm.Model
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);default:'student'" json:"role"`
}

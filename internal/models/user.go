package models

import (
	"time"
)

// Roles carried in the role claim of issued tokens
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User owns OAuth2 clients; its role decides which catalog routes a client may call
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	Role      string `gorm:"not null;default:'user'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

// ValidRole reports whether role is one of the known roles
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role defines the staff roles recognized by the system
type Role string

const (
	RoleHost    Role = "host"
	RoleWaiter  Role = "waiter"
	RoleChef    Role = "chef"
	RoleManager Role = "manager"
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether s is a recognized role value
func ValidRole(s Role) bool {
	switch s {
	case RoleHost, RoleWaiter, RoleChef, RoleManager, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null;default:'waiter'"`
	Active       bool      `json:"active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

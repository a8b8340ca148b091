package models

import (
	"time"

	"gorm.io/datatypes"
)

// User is an account in the system. Every other resource is owned by exactly
// one user.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"uniqueIndex;not null;size:255" json:"email"`
	HashedPassword string `gorm:"not null;size:255" json:"-"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
	IsAdmin        bool   `gorm:"default:false" json:"is_admin"`

	// Settings holds free-form UI/notification preferences.
	Settings datatypes.JSON `json:"settings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleUser       Role = "user"
)

// BootstrapUsername is the fixed administrative account seeded at startup.
// It is hidden from user listings.
const BootstrapUsername = "adm"

func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:32;not null" json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	Role         Role      `gorm:"type:varchar(16);not null;default:'user'" json:"role"`
	Active       bool      `gorm:"not null" json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

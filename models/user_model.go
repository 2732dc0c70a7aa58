package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleOwner   = "owner"
	RolePacker  = "packer"
	RoleAuditor = "auditor"
	RoleBiller  = "biller"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique"`
	Password  string `json:"-"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type UserSession struct {
	gorm.Model
	SessionID      string `gorm:"unique"`
	UserID         uint
	IsActive       bool `gorm:"default:true"`
	ExpiresAt      time.Time
	LastActivityAt time.Time
}

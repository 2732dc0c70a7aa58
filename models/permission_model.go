package models

import "gorm.io/gorm"

// RolePermission controls which table columns a role's client renders.
type RolePermission struct {
	gorm.Model
	Role           string   `json:"role" gorm:"unique"`
	AllowedColumns []string `json:"allowedColumns" gorm:"serializer:json"`
}

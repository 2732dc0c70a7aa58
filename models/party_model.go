package models

import "gorm.io/gorm"

type Party struct {
	gorm.Model
	Name      string `json:"name"`
	Station   string `json:"station"`
	Mobile    string `json:"mobile"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

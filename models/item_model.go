package models

import "gorm.io/gorm"

type Item struct {
	gorm.Model
	// Barcode was unique historically; the index is intentionally dropped
	// because repacked items share barcodes.
	Barcode   string `json:"barcode" gorm:"index"`
	ItemName  string `json:"itemName"`
	Group     string `json:"group"`
	SubGroup  string `json:"subGroup"`
	Short     string `json:"short"`
	Unit      string `json:"unit"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type Group struct {
	gorm.Model
	Name string `json:"name" gorm:"unique"`
}

type SubGroup struct {
	gorm.Model
	Name string `json:"name" gorm:"unique"`
}

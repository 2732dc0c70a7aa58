package models

import "gorm.io/gorm"

const (
	AdjustmentAdd    = "add"
	AdjustmentDeduct = "deduct"
)

type Bill struct {
	gorm.Model
	BillNo       string `json:"billNo" gorm:"unique"`
	Date         string `json:"date"`
	CustomerName string `json:"customerName"`
	Station      string `json:"station"`
	VehicleNo    string `json:"vehicleNo"`
	VehicleType  string `json:"vehicleType"`
	// Items is a full snapshot of the billing session, not normalized
	// references into the item master.
	Items       []BillItem       `json:"items" gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`
	Adjustments []BillAdjustment `json:"adjustments" gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`

	SumOfItems      float64  `json:"sumOfItems" gorm:"default:0"`
	AdjustmentTotal float64  `json:"adjustmentTotal" gorm:"default:0"`
	CalculatedTotal float64  `json:"calculatedTotal" gorm:"default:0"`
	ManualTotal     *float64 `json:"manualTotal"`
	GrandTotal      float64  `json:"grandTotal" gorm:"default:0"`
	CreatedBy       string   `json:"createdBy"`
}

type BillItem struct {
	gorm.Model
	BillID   uint    `json:"-"`
	Sr       int     `json:"sr"`
	ItemName string  `json:"itemName"`
	Qty      float64 `json:"qty"`
	UCap     float64 `json:"uCap"`
	LCap     float64 `json:"lCap"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
	Group    string  `json:"group"`
	SubGroup string  `json:"subGroup"`
}

type BillAdjustment struct {
	gorm.Model
	BillID uint    `json:"-"`
	Type   string  `json:"type"`
	Desc   string  `json:"desc"`
	Amount float64 `json:"amount"`
}

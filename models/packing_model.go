package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PackingTypeBox   = "Box"
	PackingTypeGatta = "Gatta"

	PackingStatusNew    = "New"
	PackingStatusRepack = "Repack"

	StatusPending           = "Pending"
	StatusApproved          = "Approved"
	StatusRejected          = "Rejected"
	StatusPartiallyApproved = "Partially Approved"
)

type PackingEntry struct {
	gorm.Model
	ItemName         string     `json:"itemName"`
	Qty              float64    `json:"qty"`
	PackingType      string     `json:"packingType" gorm:"default:'Box'"`
	PackingStatus    string     `json:"packingStatus" gorm:"default:'New'"`
	SubmittedBy      string     `json:"submittedBy"`
	Status           string     `json:"status" gorm:"default:'Pending'"`
	ApprovedQty      float64    `json:"approvedQty" gorm:"default:0"`
	NotApprovedQty   float64    `json:"notApprovedQty" gorm:"default:0"`
	AuditorRemarks   string     `json:"auditorRemarks"`
	AuditedBy        string     `json:"auditedBy"`
	AuditedAt        *time.Time `json:"auditedAt"`
	IsPrintRequested bool       `json:"isPrintRequested" gorm:"default:false"`
	IsPrintConfirmed bool       `json:"isPrintConfirmed" gorm:"default:false"`
	// Version guards concurrent audits; stale writes are rejected.
	Version int `json:"version" gorm:"default:0"`
}

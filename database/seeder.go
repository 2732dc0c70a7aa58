package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"packing-app/models"
)

func RunSeeders(db *gorm.DB) {
	SeedOwner(db)
	SeedRolePermissions(db)
}

// SeedOwner creates the initial owner account if no user exists yet.
func SeedOwner(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("owner"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash owner password: %v", err)
	}

	owner := models.User{
		Username: "owner",
		Password: string(hash),
		Name:     "Owner",
		Role:     models.RoleOwner,
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Fatalf("Failed to seed owner user: %v", err)
	}
	log.Println("Seeded default owner user (change the password)")
}

func SeedRolePermissions(db *gorm.DB) {
	perms := []models.RolePermission{
		{Role: models.RoleOwner, AllowedColumns: []string{
			"itemName", "qty", "packingType", "packingStatus", "submittedBy",
			"status", "approvedQty", "notApprovedQty", "auditorRemarks",
			"auditedBy", "createdAt",
		}},
		{Role: models.RolePacker, AllowedColumns: []string{
			"itemName", "qty", "packingType", "packingStatus", "status", "createdAt",
		}},
		{Role: models.RoleAuditor, AllowedColumns: []string{
			"itemName", "qty", "submittedBy", "status", "approvedQty",
			"notApprovedQty", "auditorRemarks", "createdAt",
		}},
		{Role: models.RoleBiller, AllowedColumns: []string{
			"itemName", "qty", "group", "subGroup", "rate", "amount",
		}},
	}

	for _, p := range perms {
		var existing models.RolePermission
		if err := db.Where("role = ?", p.Role).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&p)
			}
		}
	}
}

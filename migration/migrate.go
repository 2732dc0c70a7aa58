package migration

import (
	"gorm.io/gorm"

	"packing-app/models"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.RolePermission{},
		&models.Item{},
		&models.Group{},
		&models.SubGroup{},
		&models.Party{},
		&models.PackingEntry{},
		&models.Bill{},
		&models.BillItem{},
		&models.BillAdjustment{},
		&models.FileLog{},
	)
}

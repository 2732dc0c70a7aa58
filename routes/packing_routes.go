package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"packing-app/config"
	"packing-app/controllers"
	"packing-app/middleware"
	"packing-app/models"
)

func SetupPackingRoutes(app *fiber.App, db *gorm.DB) {
	packingController := controllers.NewPackingController(db)

	api := app.Group(config.MAIN_ROUTES+"/packing", middleware.AuthMiddleware)
	api.Get("/", packingController.GetAllPacking)
	api.Post("/", packingController.CreatePacking)
	api.Post("/bulk", packingController.BulkImport)
	api.Post("/print/confirm", packingController.BulkPrintConfirm)
	api.Post("/print/clear", packingController.BulkPrintClear)
	api.Patch("/:id", packingController.UpdatePacking)
	api.Post("/:id/audit", middleware.RequireRole(models.RoleAuditor, models.RoleOwner), packingController.AuditPacking)
	api.Patch("/:id/print", packingController.TogglePrint)
	api.Delete("/:id", middleware.RequireRole(models.RoleOwner, models.RolePacker), packingController.DeletePacking)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"packing-app/config"
	"packing-app/controllers"
	"packing-app/middleware"
	"packing-app/models"
)

func SetupPermissionRoutes(app *fiber.App, db *gorm.DB) {
	permissionController := controllers.NewPermissionController(db)

	api := app.Group(config.MAIN_ROUTES+"/permissions", middleware.AuthMiddleware)
	api.Get("/:role", permissionController.GetByRole)
	api.Post("/:role", middleware.RequireRole(models.RoleOwner), permissionController.Upsert)
}

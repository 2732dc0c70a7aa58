package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"packing-app/config"
	"packing-app/controllers"
	"packing-app/middleware"
	"packing-app/models"
)

func SetupGroupRoutes(app *fiber.App, db *gorm.DB) {
	groupController := controllers.NewGroupController(db)

	groups := app.Group(config.MAIN_ROUTES+"/groups", middleware.AuthMiddleware)
	groups.Get("/", groupController.GetAllGroups)
	groups.Post("/", groupController.CreateGroup)
	groups.Delete("/:id", middleware.RequireRole(models.RoleOwner), groupController.DeleteGroup)

	subGroups := app.Group(config.MAIN_ROUTES+"/subgroups", middleware.AuthMiddleware)
	subGroups.Get("/", groupController.GetAllSubGroups)
	subGroups.Post("/", groupController.CreateSubGroup)
	subGroups.Delete("/:id", middleware.RequireRole(models.RoleOwner), groupController.DeleteSubGroup)
}

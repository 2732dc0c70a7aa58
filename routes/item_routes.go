package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"packing-app/config"
	"packing-app/controllers"
	"packing-app/middleware"
	"packing-app/models"
)

func SetupItemRoutes(app *fiber.App, db *gorm.DB) {
	itemController := controllers.NewItemController(db)

	api := app.Group(config.MAIN_ROUTES+"/items", middleware.AuthMiddleware)
	api.Get("/", itemController.GetAllItems)
	api.Post("/", itemController.CreateItem)
	api.Post("/bulk", itemController.BulkImport)
	api.Post("/upload", itemController.Upload)
	api.Get("/:id", itemController.GetItemByID)
	api.Put("/:id", itemController.UpdateItem)
	api.Delete("/:id", middleware.RequireRole(models.RoleOwner), itemController.DeleteItem)
}

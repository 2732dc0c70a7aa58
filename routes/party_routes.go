package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"packing-app/config"
	"packing-app/controllers"
	"packing-app/middleware"
	"packing-app/models"
)

func SetupPartyRoutes(app *fiber.App, db *gorm.DB) {
	partyController := controllers.NewPartyController(db)

	api := app.Group(config.MAIN_ROUTES+"/parties", middleware.AuthMiddleware)
	api.Get("/", partyController.GetAllParties)
	api.Post("/", partyController.CreateParty)
	api.Post("/bulk", partyController.BulkImport)
	api.Put("/:id", partyController.UpdateParty)
	api.Delete("/:id", middleware.RequireRole(models.RoleOwner), partyController.DeleteParty)
}

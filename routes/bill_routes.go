package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"packing-app/config"
	"packing-app/controllers"
	"packing-app/middleware"
	"packing-app/models"
)

func SetupBillRoutes(app *fiber.App, db *gorm.DB) {
	billController := controllers.NewBillController(db)

	api := app.Group(config.MAIN_ROUTES+"/bills", middleware.AuthMiddleware)
	api.Get("/", billController.GetAllBills)
	api.Post("/", billController.CreateBill)
	api.Post("/preview", billController.Preview)
	api.Get("/export", billController.Export)
	api.Get("/search/:billNo", billController.SearchByBillNo)
	api.Get("/:id", billController.GetBillByID)
	api.Put("/:id", billController.UpdateBill)
	api.Delete("/:id", middleware.RequireRole(models.RoleOwner), billController.DeleteBill)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"packing-app/config"
	"packing-app/controllers"
	"packing-app/middleware"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
	api.Get("/logout", middleware.AuthMiddleware, authController.Logout)
	api.Get("/me", middleware.AuthMiddleware, authController.Me)
}

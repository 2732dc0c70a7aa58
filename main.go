package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"packing-app/config"
	"packing-app/controllers/idgen"
	"packing-app/database"
	"packing-app/middleware"
	"packing-app/migration"
	"packing-app/routes"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)
	middleware.SetDB(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupItemRoutes(app, db)
	routes.SetupGroupRoutes(app, db)
	routes.SetupPartyRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupPackingRoutes(app, db)
	routes.SetupBillRoutes(app, db)
	routes.SetupPermissionRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}

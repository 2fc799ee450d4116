// @title Placement Portal API
// @version 1.0
// @description Campus placement portal: students apply to jobs, companies post them, admins review both.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	_ "placement-portal/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"placement-portal/bootstrap"
	"placement-portal/config"
	"placement-portal/database"
	"placement-portal/internal/controllers"
	"placement-portal/internal/routes"

	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// Load configuration (.env first, then the environment)
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	// Connect to the database
	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(nil)

	db := database.DB

	// Unique keys: one application per (job, student), one company per name
	bootstrap.EnsurePortalIndexes(db)

	controllers.Setup(db, cfg)

	// Fiber app
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // or specify your frontend URL
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Uploaded resumes
	app.Static("/uploads", cfg.UploadDir)

	// Routes
	routes.SetupRoutes(app)

	log.Fatal(app.Listen(":" + cfg.Port))
}

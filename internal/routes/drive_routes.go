package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-portal/internal/controllers"
	"placement-portal/internal/middleware"
	"placement-portal/internal/models"
)

// Drives are readable by every authenticated role; only admins manage them.
func RegisterDriveRoutes(g fiber.Router) {
	g.Get("/", controllers.ListDrives)
	g.Get("/:id", controllers.DriveDetails)

	admin := middleware.RequireRole(models.RoleAdmin)
	g.Post("/", admin, controllers.CreateDrive)
	g.Put("/:id", admin, controllers.UpdateDrive)
	g.Delete("/:id", admin, controllers.DeleteDrive)
}

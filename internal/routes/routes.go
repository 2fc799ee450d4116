package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-portal/internal/middleware"
	"placement-portal/internal/models"
)

// SetupRoutes registers the whole API surface. Everything under /api except
// /api/auth/register and /api/auth/login requires a valid JWT; the JWT gate
// sits between the auth routes and everything else.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	RegisterAuthRoutes(api)

	api.Use(middleware.RequireAuth())

	RegisterStudentRoutes(api.Group("/student", middleware.RequireRole(models.RoleStudent)))
	RegisterCompanyRoutes(api.Group("/company", middleware.RequireRole(models.RoleCompany)))
	RegisterAdminRoutes(api.Group("/admin", middleware.RequireRole(models.RoleAdmin)))
	RegisterDriveRoutes(api.Group("/placement-drives"))
	RegisterNotificationRoutes(api.Group("/notifications"))
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-portal/internal/controllers"
	"placement-portal/internal/middleware"
)

func RegisterAuthRoutes(api fiber.Router) {
	auth := api.Group("/auth")
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Get("/me", middleware.RequireAuth(), controllers.Me)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-portal/internal/controllers"
)

func RegisterNotificationRoutes(g fiber.Router) {
	g.Get("/", controllers.MyNotifications)
	g.Post("/read", controllers.MarkNotificationsRead)
	g.Post("/read-all", controllers.MarkAllNotificationsRead)
	g.Delete("/:id", controllers.DeleteNotification)
}

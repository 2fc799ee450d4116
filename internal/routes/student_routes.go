package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-portal/internal/controllers"
)

func RegisterStudentRoutes(g fiber.Router) {
	g.Get("/profile", controllers.StudentProfile)
	g.Put("/profile", controllers.UpdateStudentProfile)
	g.Post("/resume", controllers.UploadResume)

	g.Get("/jobs", controllers.EligibleJobs)
	g.Get("/jobs/:id", controllers.JobDetail)
	g.Post("/jobs/:id/apply", controllers.Apply)

	g.Get("/applications", controllers.MyApplications)
	g.Get("/applications/:id", controllers.ApplicationDetails)
}

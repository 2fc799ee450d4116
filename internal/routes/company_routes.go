package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-portal/internal/controllers"
)

func RegisterCompanyRoutes(g fiber.Router) {
	g.Get("/profile", controllers.CompanyProfile)

	g.Get("/jobs", controllers.MyJobs)
	g.Post("/jobs", controllers.PostJob)
	g.Put("/jobs/:id", controllers.UpdateJob)
	g.Delete("/jobs/:id", controllers.DeleteJob)
	g.Post("/jobs/:id/close", controllers.CloseJob)
	g.Get("/jobs/:id/applicants", controllers.JobApplicants)

	g.Put("/applications/:id/status", controllers.UpdateApplicationStatus)
}

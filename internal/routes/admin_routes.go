package routes

import (
	"github.com/gofiber/fiber/v2"

	"placement-portal/internal/controllers"
)

func RegisterAdminRoutes(g fiber.Router) {
	g.Get("/dashboard", controllers.AdminDashboard)
	g.Get("/approval-stats", controllers.ApprovalStats)
	g.Get("/activity", controllers.RecentActivity)

	g.Get("/companies", controllers.AllCompanies)
	g.Get("/companies/pending", controllers.PendingCompanies)
	g.Get("/companies/:id", controllers.CompanyDetails)
	g.Post("/companies/:id/approve", controllers.ApproveCompany)
	g.Post("/companies/:id/reject", controllers.RejectCompany)
	g.Post("/companies/:id/toggle-status", controllers.ToggleCompanyStatus)

	g.Get("/jobs/pending", controllers.PendingJobs)
	g.Get("/jobs/:id", controllers.JobDetails)
	g.Post("/jobs/:id/approve", controllers.ApproveJob)
	g.Post("/jobs/:id/reject", controllers.RejectJob)

	g.Get("/students", controllers.AllStudents)
	g.Post("/users/:id/activate", controllers.SetUserActive(true))
	g.Post("/users/:id/deactivate", controllers.SetUserActive(false))

	g.Get("/reports/placements", controllers.PlacementReport)
	g.Get("/reports/companies", controllers.CompanyWiseReport)
	g.Get("/reports/branches", controllers.BranchReport)
}

package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"placement-portal/dto"
	"placement-portal/helper"
	"placement-portal/internal/apperr"
	"placement-portal/internal/approval"
	"placement-portal/internal/models"
)

// AdminDashboard godoc
// @Summary Aggregate counts for the admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/dashboard [get]
func AdminDashboard(c *fiber.Ctx) error {
	ctx, cancel := reqCtx()
	defer cancel()

	totalStudents, err := students.Count(ctx)
	if err != nil {
		return fail(c, err)
	}
	placedStudents, err := students.CountPlaced(ctx)
	if err != nil {
		return fail(c, err)
	}
	pendingCompanies, err := companies.CountByStatus(ctx, models.ApprovalPending)
	if err != nil {
		return fail(c, err)
	}
	approvedCompanies, err := companies.CountByStatus(ctx, models.ApprovalApproved)
	if err != nil {
		return fail(c, err)
	}
	pendingJobs, err := jobs.CountByStatus(ctx, models.ApprovalPending)
	if err != nil {
		return fail(c, err)
	}
	openJobs, err := jobs.CountByStatus(ctx, models.ApprovalApproved)
	if err != nil {
		return fail(c, err)
	}
	totalApplications, err := applications.Count(ctx)
	if err != nil {
		return fail(c, err)
	}
	byStatus, err := applications.CountsByStatus(ctx)
	if err != nil {
		return fail(c, err)
	}

	placementRate := 0.0
	if totalStudents > 0 {
		placementRate = float64(placedStudents) / float64(totalStudents) * 100
	}

	return c.JSON(fiber.Map{
		"students": fiber.Map{
			"total":         totalStudents,
			"placed":        placedStudents,
			"placementRate": placementRate,
		},
		"companies": fiber.Map{
			"pending":  pendingCompanies,
			"approved": approvedCompanies,
		},
		"jobs": fiber.Map{
			"pending":  pendingJobs,
			"approved": openJobs,
		},
		"applications": fiber.Map{
			"total":    totalApplications,
			"byStatus": byStatus,
		},
	})
}

// ApprovalStats godoc
// @Summary Review-queue counts per status for companies and jobs
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/approval-stats [get]
func ApprovalStats(c *fiber.Ctx) error {
	ctx, cancel := reqCtx()
	defer cancel()

	statuses := []models.ApprovalStatus{
		models.ApprovalPending, models.ApprovalApproved, models.ApprovalRejected,
	}
	companyCounts := fiber.Map{}
	jobCounts := fiber.Map{}
	for _, s := range statuses {
		n, err := companies.CountByStatus(ctx, s)
		if err != nil {
			return fail(c, err)
		}
		companyCounts[string(s)] = n

		n, err = jobs.CountByStatus(ctx, s)
		if err != nil {
			return fail(c, err)
		}
		jobCounts[string(s)] = n
	}

	return c.JSON(fiber.Map{
		"companies": companyCounts,
		"jobs":      jobCounts,
	})
}

// ToggleCompanyStatus godoc
// @Summary Block or unblock an approved company
// @Description Blocked companies keep their data but cannot post; toggling back restores Approved.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} models.Company
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/companies/{id}/toggle-status [post]
func ToggleCompanyStatus(c *fiber.Ctx) error {
	id, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	company, err := companies.FindByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}

	var next models.ApprovalStatus
	switch company.ApprovalStatus {
	case models.ApprovalApproved:
		next = models.ApprovalBlocked
	case models.ApprovalBlocked:
		next = models.ApprovalApproved
	default:
		return fail(c, apperr.State("only approved companies can be blocked"))
	}

	if err := companies.ApplyApproval(ctx, id, company.ApprovalStatus, approval.Patch{Status: next}); err != nil {
		return fail(c, err)
	}
	// pull the company's postings out of (or back into) the open pool
	if err := jobs.SetActiveByCompany(ctx, id, next == models.ApprovalApproved); err != nil {
		return fail(c, err)
	}
	company.ApprovalStatus = next
	return c.JSON(company)
}

// RecentActivity godoc
// @Summary Latest approval log entries
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries, default 20"
// @Success 200 {array} models.ApprovalLog
// @Router /api/admin/activity [get]
func RecentActivity(c *fiber.Ctx) error {
	limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := reqCtx()
	defer cancel()

	entries, err := approvalLogs.Recent(ctx, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(entries)
}

// PendingCompanies godoc
// @Summary Companies waiting for review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against company name or industry"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 10"
// @Success 200 {object} dto.Page
// @Router /api/admin/companies/pending [get]
func PendingCompanies(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	ctx, cancel := reqCtx()
	defer cancel()

	items, total, err := companies.Pending(ctx, c.Query("search"), page, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.Page{Items: items, Total: total, Page: int(page), Limit: int(limit)})
}

// PendingJobs godoc
// @Summary Jobs waiting for review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against title or description"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 10"
// @Success 200 {object} dto.Page
// @Router /api/admin/jobs/pending [get]
func PendingJobs(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	ctx, cancel := reqCtx()
	defer cancel()

	items, total, err := jobs.Pending(ctx, c.Query("search"), page, limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.Page{Items: items, Total: total, Page: int(page), Limit: int(limit)})
}

// CompanyDetails godoc
// @Summary One company with its jobs and review history
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/companies/{id} [get]
func CompanyDetails(c *fiber.Ctx) error {
	id, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	company, err := companies.FindByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	companyJobs, err := jobs.ByCompany(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	history, err := approvalLogs.History(ctx, models.EntityCompany, id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"company": company,
		"jobs":    companyJobs,
		"history": history,
	})
}

// JobDetails godoc
// @Summary One job with its company and review history
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/jobs/{id} [get]
func JobDetails(c *fiber.Ctx) error {
	id, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	job, err := jobs.FindByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	company, err := companies.FindByID(ctx, job.CompanyID)
	if err != nil {
		return fail(c, err)
	}
	history, err := approvalLogs.History(ctx, models.EntityJob, id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"job":     job,
		"company": company,
		"history": history,
	})
}

// ApproveCompany godoc
// @Summary Approve a pending company
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param body body dto.ApproveRequest false "Optional notes"
// @Success 200 {object} models.Company
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/companies/{id}/approve [post]
func ApproveCompany(c *fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ApproveRequest
	_ = c.BodyParser(&req) // body is optional

	ctx, cancel := reqCtx()
	defer cancel()

	company, err := workflow.ApproveCompany(ctx, actor, id, req.Notes)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(company)
}

// RejectCompany godoc
// @Summary Reject a pending company with a reason
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Param body body dto.RejectRequest true "Reason, min 10 chars"
// @Success 200 {object} models.Company
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/companies/{id}/reject [post]
func RejectCompany(c *fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	var req dto.RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	ctx, cancel := reqCtx()
	defer cancel()

	company, err := workflow.RejectCompany(ctx, actor, id, req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(company)
}

// ApproveJob godoc
// @Summary Approve a pending job
// @Description Fails if the posting company is not itself approved.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param body body dto.ApproveRequest false "Optional notes"
// @Success 200 {object} models.Job
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/jobs/{id}/approve [post]
func ApproveJob(c *fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ApproveRequest
	_ = c.BodyParser(&req)

	ctx, cancel := reqCtx()
	defer cancel()

	job, err := workflow.ApproveJob(ctx, actor, id, req.Notes)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(job)
}

// RejectJob godoc
// @Summary Reject a pending job with a reason
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param body body dto.RejectRequest true "Reason, min 10 chars"
// @Success 200 {object} models.Job
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/admin/jobs/{id}/reject [post]
func RejectJob(c *fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	var req dto.RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	ctx, cancel := reqCtx()
	defer cancel()

	job, err := workflow.RejectJob(ctx, actor, id, req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(job)
}

// AllCompanies godoc
// @Summary Every registered company, any status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Company
// @Router /api/admin/companies [get]
func AllCompanies(c *fiber.Ctx) error {
	ctx, cancel := reqCtx()
	defer cancel()

	items, err := companies.All(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// AllStudents godoc
// @Summary Every student profile, highest CGPA first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.StudentProfile
// @Router /api/admin/students [get]
func AllStudents(c *fiber.Ctx) error {
	ctx, cancel := reqCtx()
	defer cancel()

	items, err := students.All(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// SetUserActive godoc
// @Summary Activate or deactivate a user account
// @Description Deactivated users cannot log in. POST /activate or /deactivate.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/admin/users/{id}/activate [post]
func SetUserActive(active bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramOID(c, "id")
		if err != nil {
			return err
		}

		ctx, cancel := reqCtx()
		defer cancel()

		if err := users.SetActive(ctx, id, active); err != nil {
			return fail(c, err)
		}
		msg := "user deactivated"
		if active {
			msg = "user activated"
		}
		return c.JSON(fiber.Map{"message": msg})
	}
}

// PlacementReport godoc
// @Summary Student placement report, JSON or CSV
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param format query string false "csv for a file download, default json"
// @Param branch query string false "Filter by branch"
// @Param startDate query string false "Window start, RFC3339 or 2006-01-02"
// @Param endDate query string false "Window end"
// @Success 200 {array} map[string]interface{}
// @Router /api/admin/reports/placements [get]
func PlacementReport(c *fiber.Ctx) error {
	var start, end *time.Time
	if s, e := c.Query("startDate"), c.Query("endDate"); s != "" && e != "" {
		st, err1 := parseDate(s)
		en, err2 := parseDate(e)
		if err1 != nil || err2 != nil {
			return badRequest(c, "dates must be RFC3339 or YYYY-MM-DD")
		}
		start, end = &st, &en
	}

	ctx, cancel := reqCtx()
	defer cancel()

	rows, err := students.PlacementReport(ctx, start, end, c.Query("branch"))
	if err != nil {
		return fail(c, err)
	}

	if c.Query("format") != "csv" {
		return c.JSON(rows)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="placement-report.csv"`)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Name", "Email", "Roll No", "Branch", "CGPA", "Placed", "Company"})
	for _, row := range rows {
		placed := "No"
		if b, _ := row["placed"].(bool); b {
			placed = "Yes"
		}
		_ = w.Write([]string{
			str(row["name"]),
			str(row["email"]),
			str(row["rollNo"]),
			str(row["branch"]),
			fmt.Sprintf("%.2f", num(row["cgpa"])),
			placed,
			str(row["placedCompany"]),
		})
	}
	w.Flush()
	return c.Send(buf.Bytes())
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

// CompanyWiseReport godoc
// @Summary Hires per company with average and best package
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]interface{}
// @Router /api/admin/reports/companies [get]
func CompanyWiseReport(c *fiber.Ctx) error {
	ctx, cancel := reqCtx()
	defer cancel()

	rows, err := applications.CompanyWise(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

// BranchReport godoc
// @Summary Placement totals grouped by branch
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]interface{}
// @Router /api/admin/reports/branches [get]
func BranchReport(c *fiber.Ctx) error {
	ctx, cancel := reqCtx()
	defer cancel()

	rows, err := students.BranchPlacement(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

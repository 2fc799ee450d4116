package controllers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"placement-portal/config"
	"placement-portal/dto"
	"placement-portal/helper"
	"placement-portal/internal/apperr"
	"placement-portal/internal/matching"
	"placement-portal/internal/middleware"
	"placement-portal/internal/models"
)

// StudentProfile godoc
// @Summary Get my student profile
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StudentProfile
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/student/profile [get]
func StudentProfile(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	profile, err := students.FindByUserID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}

// UpdateStudentProfile godoc
// @Summary Update skills, phone and CGPA
// @Description Marks the profile complete once saved.
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.StudentProfile
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/student/profile [put]
func UpdateStudentProfile(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	skills := make([]string, 0, len(req.Skills))
	for _, s := range req.Skills {
		s = strings.TrimSpace(s)
		if s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) == 0 {
		return badRequest(c, "at least one skill is required")
	}

	ctx, cancel := reqCtx()
	defer cancel()

	profile, err := students.UpdateProfile(ctx, uid, skills, req.Phone, req.CGPA)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}

// resume uploads are capped at 5 MB and must be PDFs
const maxResumeSize = 5 << 20

// UploadResume godoc
// @Summary Upload a resume PDF
// @Tags student
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "PDF resume, max 5MB"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/student/resume [post]
func UploadResume(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return badRequest(c, "resume file is required")
	}
	if file.Size > maxResumeSize {
		return badRequest(c, "resume must be 5MB or smaller")
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return badRequest(c, "resume must be a PDF")
	}

	dir := config.UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fail(c, err)
	}
	name := uuid.New().String() + ".pdf"
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return fail(c, err)
	}

	ctx, cancel := reqCtx()
	defer cancel()

	url := "/uploads/" + name
	if err := students.SetResume(ctx, uid, url); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"resumeUrl": url})
}

// EligibleJobs godoc
// @Summary List open jobs I am eligible for, ranked by match score
// @Description Excludes jobs already applied to. Jobs past their deadline never appear.
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {array} matching.RankedJob
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/student/jobs [get]
func EligibleJobs(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	profile, err := students.FindByUserID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}

	pool, err := jobs.OpenPool(ctx, time.Now().UTC())
	if err != nil {
		return fail(c, err)
	}

	applied, err := applications.AppliedJobIDs(ctx, profile.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(matching.Rank(profile, pool, applied))
}

// JobDetail godoc
// @Summary One open job with my match score
// @Description Counts a view on the posting.
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} matching.RankedJob
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/student/jobs/{id} [get]
func JobDetail(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	jobID, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	profile, err := students.FindByUserID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	job, err := jobs.FindByID(ctx, jobID)
	if err != nil {
		return fail(c, err)
	}
	if !job.AcceptingApplications(time.Now().UTC()) {
		return fail(c, apperr.NotFound("job not found"))
	}

	if err := jobs.IncViewCount(ctx, job.ID); err != nil {
		log.Println("failed to bump view count:", err)
	}

	return c.JSON(matching.RankedJob{Job: *job, MatchScore: matching.Score(profile, job)})
}

// Apply godoc
// @Summary Apply to a job
// @Description Requires an uploaded resume, an eligible profile and an open job. One application per job.
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param application body dto.ApplyRequest true "Application"
// @Success 201 {object} models.Application
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/student/jobs/{id}/apply [post]
func Apply(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	jobID, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}
	if !req.AgreeToTerms {
		return badRequest(c, "you must agree to the terms to apply")
	}

	ctx, cancel := reqCtx()
	defer cancel()

	profile, err := students.FindByUserID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	if profile.ResumeURL == "" {
		return fail(c, apperr.State("upload a resume before applying"))
	}

	job, err := jobs.FindByID(ctx, jobID)
	if err != nil {
		return fail(c, err)
	}
	if !job.AcceptingApplications(time.Now().UTC()) {
		return fail(c, apperr.State("this job is not accepting applications"))
	}
	if !matching.Eligible(profile, job) {
		return fail(c, apperr.Forbidden("you do not meet the eligibility criteria for this job"))
	}

	now := time.Now().UTC()
	application := models.Application{
		JobID:          job.ID,
		StudentID:      profile.ID,
		Status:         models.ApplicationApplied,
		CoverLetter:    req.CoverLetter,
		ExpectedSalary: req.ExpectedSalary,
		AvailableFrom:  req.AvailableFrom,
		ReferenceEmail: req.ReferenceEmail,
		AgreeToTerms:   req.AgreeToTerms,
		AppliedAt:      now,
		UpdatedAt:      now,
	}
	if err := applications.Create(ctx, &application); err != nil {
		return fail(c, err)
	}
	if err := jobs.IncApplicationCount(ctx, job.ID); err != nil {
		// count is cosmetic, the application itself already landed
		log.Println("failed to bump application count:", err)
	}

	// let the company know
	if company, err := companies.FindByID(ctx, job.CompanyID); err == nil {
		dispatcher.Notify(ctx, company.UserID, models.NotiApplication,
			"New Application",
			fmt.Sprintf("A student applied to %s", job.Title),
			models.Ref{Entity: models.EntityApplication, ID: application.ID})
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}

// MyApplications godoc
// @Summary List my applications
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(Applied, Shortlisted, Selected, Rejected)
// @Param sort query string false "applied_asc for oldest first, default newest first"
// @Success 200 {array} models.Application
// @Router /api/student/applications [get]
func MyApplications(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	profile, err := students.FindByUserID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}

	status := models.ApplicationStatus(c.Query("status"))
	oldestFirst := c.Query("sort") == "applied_asc"

	apps, err := applications.ByStudent(ctx, profile.ID, status, oldestFirst)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(apps)
}

// ApplicationDetails godoc
// @Summary Get one of my applications, with the job attached
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/student/applications/{id} [get]
func ApplicationDetails(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	appID, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	profile, err := students.FindByUserID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}

	application, err := applications.FindForStudent(ctx, appID, profile.ID)
	if err != nil {
		return fail(c, err)
	}

	job, err := jobs.FindByID(ctx, application.JobID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"application": application,
		"job":         job,
	})
}

package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"placement-portal/dto"
	"placement-portal/helper"
	"placement-portal/internal/apperr"
	"placement-portal/internal/middleware"
	"placement-portal/internal/models"
)

// CompanyProfile godoc
// @Summary Get my company profile, including review state
// @Tags company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Company
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/company/profile [get]
func CompanyProfile(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	company, err := companies.FindByUserID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(company)
}

// PostJob godoc
// @Summary Post a job
// @Description Only approved companies may post. saveAsDraft keeps the job out of the review queue; otherwise it goes straight to Pending and admins are notified.
// @Tags company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param job body dto.PostJobRequest true "Job"
// @Success 201 {object} models.Job
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/company/jobs [post]
func PostJob(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	var req dto.PostJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}
	if !req.Deadline.After(time.Now()) {
		return badRequest(c, "deadline must be in the future")
	}

	ctx, cancel := reqCtx()
	defer cancel()

	company, err := companies.FindByUserID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	if !company.Approved() {
		return fail(c, apperr.Forbidden("your company must be approved before posting jobs"))
	}

	now := time.Now().UTC()
	job := models.Job{
		CompanyID:        company.ID,
		Title:            req.Title,
		Description:      req.Description,
		Role:             req.Role,
		EmploymentType:   req.EmploymentType,
		JobMode:          req.JobMode,
		NumberOfOpenings: req.NumberOfOpenings,
		Location: models.JobLocation{
			City:    req.Location.City,
			State:   req.Location.State,
			Country: req.Location.Country,
		},
		Package:         req.Package,
		Eligibility:     eligibilityFromDTO(req.Eligibility),
		RequiredSkills:  req.RequiredSkills,
		PreferredSkills: req.PreferredSkills,
		Deadline:        req.Deadline,
		SelectionProc:   stagesFromDTO(req.SelectionProcess),
		IsActive:        true,
		CreatedBy:       uid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Stipend != nil {
		job.Stipend = &models.Stipend{Amount: req.Stipend.Amount, Currency: req.Stipend.Currency}
	}
	if req.Bond != nil {
		job.Bond = &models.Bond{Required: req.Bond.Required, Duration: req.Bond.Duration, Details: req.Bond.Details}
	}

	if req.SaveAsDraft {
		job.ApprovalStatus = models.ApprovalDraft
		job.Status = models.JobDraft
	} else {
		job.ApprovalStatus = models.ApprovalPending
		job.Status = models.JobPendingApproval
	}

	if err := jobs.Create(ctx, &job); err != nil {
		return fail(c, err)
	}

	if !req.SaveAsDraft {
		workflow.NotifyAdminsNewJob(ctx, &job, company.CompanyName)
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

func eligibilityFromDTO(e dto.EligibilityDTO) models.Eligibility {
	return models.Eligibility{
		MinCGPA:         e.MinCGPA,
		Branches:        e.Branches,
		GraduationYears: e.GraduationYears,
		MaxBacklogs:     e.MaxBacklogs,
	}
}

func stagesFromDTO(stages []dto.SelectionStageDTO) []models.SelectionStage {
	if len(stages) == 0 {
		return nil
	}
	out := make([]models.SelectionStage, 0, len(stages))
	for _, s := range stages {
		out = append(out, models.SelectionStage{Stage: s.Stage, Description: s.Description, Duration: s.Duration})
	}
	return out
}

// ownJob loads a job and checks the caller's company owns it.
func ownJob(c *fiber.Ctx, uid bson.ObjectID) (*models.Company, *models.Job, error) {
	jobID, err := paramOID(c, "id")
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	company, err := companies.FindByUserID(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	job, err := jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	if job.CompanyID != company.ID {
		return nil, nil, apperr.Forbidden("this job belongs to another company")
	}
	return company, job, nil
}

// UpdateJob godoc
// @Summary Edit a Draft or Rejected job
// @Description With resubmit=true the job also returns to the review queue; from Rejected that bumps the resubmission counter.
// @Tags company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param job body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} models.Job
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/company/jobs/{id} [put]
func UpdateJob(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	company, job, err := ownJob(c, uid)
	if err != nil {
		return fail(c, err)
	}
	if job.ApprovalStatus != models.ApprovalDraft && job.ApprovalStatus != models.ApprovalRejected {
		return fail(c, apperr.State("only draft or rejected jobs can be edited"))
	}

	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Role != nil {
		set["role"] = *req.Role
	}
	if req.EmploymentType != nil {
		set["employment_type"] = *req.EmploymentType
	}
	if req.JobMode != nil {
		set["job_mode"] = *req.JobMode
	}
	if req.NumberOfOpenings != nil {
		set["number_of_openings"] = *req.NumberOfOpenings
	}
	if req.Location != nil {
		set["location"] = models.JobLocation{City: req.Location.City, State: req.Location.State, Country: req.Location.Country}
	}
	if req.Package != nil {
		set["package"] = *req.Package
	}
	if req.Stipend != nil {
		set["stipend"] = models.Stipend{Amount: req.Stipend.Amount, Currency: req.Stipend.Currency}
	}
	if req.Bond != nil {
		set["bond"] = models.Bond{Required: req.Bond.Required, Duration: req.Bond.Duration, Details: req.Bond.Details}
	}
	if req.Eligibility != nil {
		set["eligibility"] = eligibilityFromDTO(*req.Eligibility)
	}
	if req.RequiredSkills != nil {
		set["required_skills"] = req.RequiredSkills
	}
	if req.PreferredSkills != nil {
		set["preferred_skills"] = req.PreferredSkills
	}
	if req.Deadline != nil {
		if !req.Deadline.After(time.Now()) {
			return badRequest(c, "deadline must be in the future")
		}
		set["deadline"] = *req.Deadline
	}
	if req.SelectionProcess != nil {
		set["selection_process"] = stagesFromDTO(req.SelectionProcess)
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if len(set) > 0 {
		if err := jobs.UpdateFields(ctx, job.ID, set); err != nil {
			return fail(c, err)
		}
	}

	if req.Resubmit {
		actor, err := actorFrom(c)
		if err != nil {
			return err
		}
		updated, err := workflow.SubmitJob(ctx, actor, job.ID, company.CompanyName)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(updated)
	}

	updated, err := jobs.FindByID(ctx, job.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated)
}

// CloseJob godoc
// @Summary Close an open job to further applications
// @Tags company
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/company/jobs/{id}/close [post]
func CloseJob(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	_, job, err := ownJob(c, uid)
	if err != nil {
		return fail(c, err)
	}
	if job.Status != models.JobOpen {
		return fail(c, apperr.State("only open jobs can be closed"))
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if err := jobs.Close(ctx, job.ID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "job closed"})
}

// DeleteJob godoc
// @Summary Delete a job that never went live
// @Description Only Draft or Cancelled jobs can be deleted; anything that reached the review queue stays for the audit trail.
// @Tags company
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/company/jobs/{id} [delete]
func DeleteJob(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	_, job, err := ownJob(c, uid)
	if err != nil {
		return fail(c, err)
	}
	if job.Status != models.JobDraft && job.Status != models.JobCancelled {
		return fail(c, apperr.State("only draft or cancelled jobs can be deleted"))
	}

	ctx, cancel := reqCtx()
	defer cancel()

	if err := jobs.Delete(ctx, job.ID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "job deleted"})
}

// MyJobs godoc
// @Summary List my company's jobs, newest first
// @Tags company
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Job
// @Router /api/company/jobs [get]
func MyJobs(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	company, err := companies.FindByUserID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	list, err := jobs.ByCompany(ctx, company.ID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// applicantView is an application joined with its student's profile.
type applicantView struct {
	Application models.Application    `json:"application"`
	Student     models.StudentProfile `json:"student"`
	Name        string                `json:"name"`
	Email       string                `json:"email"`
}

// JobApplicants godoc
// @Summary List applicants for one of my jobs
// @Tags company
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param status query string false "Filter by application status"
// @Param branch query string false "Filter by student branch"
// @Param minCGPA query number false "Minimum student CGPA"
// @Success 200 {array} applicantView
// @Router /api/company/jobs/{id}/applicants [get]
func JobApplicants(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	_, job, err := ownJob(c, uid)
	if err != nil {
		return fail(c, err)
	}

	ctx, cancel := reqCtx()
	defer cancel()

	status := models.ApplicationStatus(c.Query("status"))
	apps, err := applications.ByJob(ctx, job.ID, status)
	if err != nil {
		return fail(c, err)
	}

	branch := c.Query("branch")
	minCGPA := c.QueryFloat("minCGPA", 0)

	out := make([]applicantView, 0, len(apps))
	for _, app := range apps {
		profile, err := students.FindByID(ctx, app.StudentID)
		if err != nil {
			continue
		}
		if branch != "" && profile.Branch != branch {
			continue
		}
		if profile.CGPA < minCGPA {
			continue
		}
		view := applicantView{Application: app, Student: *profile}
		if user, err := users.FindByID(ctx, profile.UserID); err == nil {
			view.Name = user.Name
			view.Email = user.Email
		}
		out = append(out, view)
	}
	return c.JSON(out)
}

// UpdateApplicationStatus godoc
// @Summary Move an applicant through the pipeline
// @Description Selecting a student marks them placed and emails them.
// @Tags company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param status body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/company/applications/{id}/status [put]
func UpdateApplicationStatus(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	appID, err := paramOID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	ctx, cancel := reqCtx()
	defer cancel()

	company, err := companies.FindByUserID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	application, err := applications.FindByID(ctx, appID)
	if err != nil {
		return fail(c, err)
	}
	job, err := jobs.FindByID(ctx, application.JobID)
	if err != nil {
		return fail(c, err)
	}
	if job.CompanyID != company.ID {
		return fail(c, apperr.Forbidden("this application belongs to another company's job"))
	}

	status := models.ApplicationStatus(req.Status)
	if err := applications.UpdateStatus(ctx, application.ID, status, uid); err != nil {
		return fail(c, err)
	}

	profile, err := students.FindByID(ctx, application.StudentID)
	if err == nil {
		body := fmt.Sprintf("Your application for %s at %s is now %s.", job.Title, company.CompanyName, status)
		dispatcher.Notify(ctx, profile.UserID, models.NotiStatusUpdate,
			"Application "+string(status), body,
			models.Ref{Entity: models.EntityApplication, ID: application.ID})

		if status == models.ApplicationSelected {
			if err := students.MarkPlaced(ctx, profile.ID, company.CompanyName); err != nil {
				return fail(c, err)
			}
			if user, err := users.FindByID(ctx, profile.UserID); err == nil {
				dispatcher.Mail(user.Email,
					fmt.Sprintf("Congratulations! Selected at %s", company.CompanyName),
					fmt.Sprintf("Dear %s,\n\nCongratulations! You have been selected for the role of %s at %s.\n\nThe placement cell will reach out with the next steps.\n\nBest wishes,\nPlacement Cell", user.Name, job.Title, company.CompanyName))
			}
		}
	}

	return c.JSON(fiber.Map{"message": "application status updated"})
}

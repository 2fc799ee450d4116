// Package approval is the review workflow for companies and jobs:
// Draft -> Pending -> Approved/Rejected, with Rejected -> Pending as the only
// cycle (resubmission). Every successful transition appends one approval log
// row and emits notification and email events for a dispatcher to deliver
// after the write has landed.
package approval

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"placement-portal/internal/apperr"
	"placement-portal/internal/models"
)

type CompanyStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Company, error)
	ApplyApproval(ctx context.Context, id bson.ObjectID, expect models.ApprovalStatus, p Patch) error
}

type JobStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Job, error)
	ApplyApproval(ctx context.Context, id bson.ObjectID, expect models.ApprovalStatus, p Patch) error
}

type LogStore interface {
	Append(ctx context.Context, entry models.ApprovalLog) error
}

type UserDirectory interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	Admins(ctx context.Context) ([]models.User, error)
}

// Dispatcher delivers post-commit events. Implementations swallow their own
// failures; the workflow never hears about them.
type Dispatcher interface {
	Dispatch(ctx context.Context, events []Event)
}

type Workflow struct {
	companies CompanyStore
	jobs      JobStore
	logs      LogStore
	users     UserDirectory
	dispatch  Dispatcher
	now       func() time.Time
}

func NewWorkflow(companies CompanyStore, jobs JobStore, logs LogStore, users UserDirectory, d Dispatcher) *Workflow {
	return &Workflow{
		companies: companies,
		jobs:      jobs,
		logs:      logs,
		users:     users,
		dispatch:  d,
		now:       time.Now,
	}
}

// ApproveCompany moves a company to Approved and notifies its owner.
func (w *Workflow) ApproveCompany(ctx context.Context, actor Actor, id bson.ObjectID, notes string) (*models.Company, error) {
	company, err := w.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanApprove(models.EntityCompany, company.ApprovalStatus); err != nil {
		return nil, err
	}

	now := w.now().UTC()
	prev := company.ApprovalStatus
	if err := w.companies.ApplyApproval(ctx, id, prev, approvePatch(actor, now, "")); err != nil {
		return nil, err
	}
	company.ApprovalStatus = models.ApprovalApproved
	company.ApprovedBy = actor.ID
	company.ApprovedAt = &now
	company.LastReviewedAt = &now

	w.appendLog(ctx, models.EntityCompany, id, models.ActionApproved, actor, notes, prev, models.ApprovalApproved)

	events := []Event{
		NotifyEvent{
			UserID: company.UserID,
			Type:   models.NotiCompanyApproved,
			Title:  "Registration Approved",
			Body:   "Your company has been approved. You can now post jobs!",
			Ref:    models.Ref{Entity: models.EntityCompany, ID: company.ID},
		},
	}
	if owner, err := w.users.FindByID(ctx, company.UserID); err == nil {
		events = append(events, EmailEvent{
			To:      owner.Email,
			Subject: "Company Registration Approved - Placement Portal",
			Body:    companyApprovedMail(company.CompanyName),
		})
	}
	w.dispatch.Dispatch(ctx, events)

	return company, nil
}

// RejectCompany records a rejection with a mandatory reason.
func (w *Workflow) RejectCompany(ctx context.Context, actor Actor, id bson.ObjectID, reason string) (*models.Company, error) {
	if err := ValidateReason(reason); err != nil {
		return nil, err
	}

	company, err := w.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := w.now().UTC()
	prev := company.ApprovalStatus
	if err := w.companies.ApplyApproval(ctx, id, prev, rejectPatch(actor, reason, now, "")); err != nil {
		return nil, err
	}
	company.ApprovalStatus = models.ApprovalRejected
	company.RejectedBy = actor.ID
	company.RejectedAt = &now
	company.RejectedReason = reason
	company.LastReviewedAt = &now

	w.appendLog(ctx, models.EntityCompany, id, models.ActionRejected, actor, reason, prev, models.ApprovalRejected)

	events := []Event{
		NotifyEvent{
			UserID: company.UserID,
			Type:   models.NotiSystem,
			Title:  "Registration Not Approved",
			Body:   fmt.Sprintf("Your company registration was not approved. Reason: %s", reason),
			Ref:    models.Ref{Entity: models.EntityCompany, ID: company.ID},
		},
	}
	if owner, err := w.users.FindByID(ctx, company.UserID); err == nil {
		events = append(events, EmailEvent{
			To:      owner.Email,
			Subject: "Company Registration Status - Placement Portal",
			Body:    companyRejectedMail(company.CompanyName, reason),
		})
	}
	w.dispatch.Dispatch(ctx, events)

	return company, nil
}

// ApproveJob opens a job for applications. A job from a company that is not
// itself Approved can never go live.
func (w *Workflow) ApproveJob(ctx context.Context, actor Actor, id bson.ObjectID, notes string) (*models.Job, error) {
	job, err := w.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanApprove(models.EntityJob, job.ApprovalStatus); err != nil {
		return nil, err
	}

	company, err := w.companies.FindByID(ctx, job.CompanyID)
	if err != nil {
		return nil, err
	}
	if !company.Approved() {
		return nil, apperr.State("cannot approve job from unapproved company")
	}

	now := w.now().UTC()
	prev := job.ApprovalStatus
	if err := w.jobs.ApplyApproval(ctx, id, prev, approvePatch(actor, now, models.JobOpen)); err != nil {
		return nil, err
	}
	job.ApprovalStatus = models.ApprovalApproved
	job.Status = models.JobOpen
	job.ApprovedBy = actor.ID
	job.ApprovedAt = &now
	job.LastReviewedAt = &now

	w.appendLog(ctx, models.EntityJob, id, models.ActionApproved, actor, notes, prev, models.ApprovalApproved)

	events := []Event{
		NotifyEvent{
			UserID: job.CreatedBy,
			Type:   models.NotiJobApproved,
			Title:  "Job Posting Approved",
			Body:   fmt.Sprintf("Your job posting %q has been approved and is now visible to students", job.Title),
			Ref:    models.Ref{Entity: models.EntityJob, ID: job.ID},
		},
	}
	if owner, err := w.users.FindByID(ctx, job.CreatedBy); err == nil {
		events = append(events, EmailEvent{
			To:      owner.Email,
			Subject: fmt.Sprintf("Job Posting Approved - %s", job.Title),
			Body:    jobApprovedMail(company.CompanyName, job),
		})
	}
	w.dispatch.Dispatch(ctx, events)

	return job, nil
}

// RejectJob cancels a job posting with a mandatory reason. The company may
// edit and resubmit it.
func (w *Workflow) RejectJob(ctx context.Context, actor Actor, id bson.ObjectID, reason string) (*models.Job, error) {
	if err := ValidateReason(reason); err != nil {
		return nil, err
	}

	job, err := w.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := w.now().UTC()
	prev := job.ApprovalStatus
	if err := w.jobs.ApplyApproval(ctx, id, prev, rejectPatch(actor, reason, now, models.JobCancelled)); err != nil {
		return nil, err
	}
	job.ApprovalStatus = models.ApprovalRejected
	job.Status = models.JobCancelled
	job.RejectedBy = actor.ID
	job.RejectedAt = &now
	job.RejectedReason = reason
	job.LastReviewedAt = &now

	w.appendLog(ctx, models.EntityJob, id, models.ActionRejected, actor, reason, prev, models.ApprovalRejected)

	events := []Event{
		NotifyEvent{
			UserID: job.CreatedBy,
			Type:   models.NotiSystem,
			Title:  "Job Not Approved",
			Body:   fmt.Sprintf("Your job posting %q was not approved. Reason: %s", job.Title, reason),
			Ref:    models.Ref{Entity: models.EntityJob, ID: job.ID},
		},
	}
	if owner, err := w.users.FindByID(ctx, job.CreatedBy); err == nil {
		events = append(events, EmailEvent{
			To:      owner.Email,
			Subject: fmt.Sprintf("Job Posting Status - %s", job.Title),
			Body:    jobRejectedMail(job.Title, reason),
		})
	}
	w.dispatch.Dispatch(ctx, events)

	return job, nil
}

// SubmitJob returns a Draft or Rejected job to the review queue. Coming from
// Rejected it clears the prior review metadata, bumps the resubmission counter
// and logs a Resubmitted action; every admin gets one notification either way.
func (w *Workflow) SubmitJob(ctx context.Context, actor Actor, id bson.ObjectID, companyName string) (*models.Job, error) {
	job, err := w.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanSubmit(job.ApprovalStatus); err != nil {
		return nil, err
	}

	prev := job.ApprovalStatus
	fromRejected := prev == models.ApprovalRejected
	if err := w.jobs.ApplyApproval(ctx, id, prev, resubmitPatch(fromRejected)); err != nil {
		return nil, err
	}
	job.ApprovalStatus = models.ApprovalPending
	job.Status = models.JobPendingApproval
	job.ApprovedBy = bson.NilObjectID
	job.ApprovedAt = nil
	job.RejectedBy = bson.NilObjectID
	job.RejectedAt = nil
	job.RejectedReason = ""
	if fromRejected {
		job.ResubmissionCount++
		w.appendLog(ctx, models.EntityJob, id, models.ActionResubmitted, actor, "", prev, models.ApprovalPending)
	}

	title := "New Job Posted"
	body := fmt.Sprintf("%s posted a new job: %s", companyName, job.Title)
	if fromRejected {
		title = "Job Pending Review"
		body = fmt.Sprintf("%s resubmitted job: %s", companyName, job.Title)
	}

	admins, err := w.users.Admins(ctx)
	if err == nil {
		events := make([]Event, 0, len(admins))
		for _, admin := range admins {
			events = append(events, NotifyEvent{
				UserID: admin.ID,
				Type:   models.NotiJobResubmitted,
				Title:  title,
				Body:   body,
				Ref:    models.Ref{Entity: models.EntityJob, ID: job.ID},
			})
		}
		w.dispatch.Dispatch(ctx, events)
	}

	return job, nil
}

// NotifyAdminsNewJob fans out the "new job awaiting review" notification when
// a job is created directly in Pending Approval.
func (w *Workflow) NotifyAdminsNewJob(ctx context.Context, job *models.Job, companyName string) {
	admins, err := w.users.Admins(ctx)
	if err != nil {
		return
	}
	events := make([]Event, 0, len(admins))
	for _, admin := range admins {
		events = append(events, NotifyEvent{
			UserID: admin.ID,
			Type:   models.NotiSystem,
			Title:  "New Job Posted",
			Body:   fmt.Sprintf("%s posted a new job: %s", companyName, job.Title),
			Ref:    models.Ref{Entity: models.EntityJob, ID: job.ID},
		})
	}
	w.dispatch.Dispatch(ctx, events)
}

// appendLog records the transition. The log is the audit trail; a write
// failure here is logged by the store and must not undo the approval.
func (w *Workflow) appendLog(ctx context.Context, kind models.EntityKind, id bson.ObjectID, action models.ApprovalAction, actor Actor, reason string, prev, next models.ApprovalStatus) {
	_ = w.logs.Append(ctx, models.ApprovalLog{
		EntityType:     kind,
		EntityID:       id,
		Action:         action,
		PerformedBy:    actor.ID,
		Reason:         reason,
		PreviousStatus: prev,
		NewStatus:      next,
		Timestamp:      w.now().UTC(),
	})
}

func companyApprovedMail(name string) string {
	return fmt.Sprintf(`Dear %s,

Congratulations! Your company registration has been approved by our placement team.

You can now:
- Post job openings
- View student applications
- Manage recruitment process

Login to your dashboard to get started.

Best regards,
Placement Team`, name)
}

func companyRejectedMail(name, reason string) string {
	return fmt.Sprintf(`Dear %s,

Thank you for your interest in our placement portal.

After careful review, we are unable to approve your registration at this time.

Reason: %s

You may contact our placement office for clarification or resubmit your application after addressing the concerns.

Best regards,
Placement Team`, name, reason)
}

func jobApprovedMail(companyName string, job *models.Job) string {
	return fmt.Sprintf(`Dear %s,

Your job posting %q has been approved and is now live on the portal.

Eligible students can now view and apply to this position.

Job Details:
- Position: %s
- Package: %.2f LPA
- Deadline: %s

Login to your dashboard to manage applications.

Best regards,
Placement Team`, companyName, job.Title, job.Title, job.Package, job.Deadline.Format("02 Jan 2006"))
}

func jobRejectedMail(title, reason string) string {
	return fmt.Sprintf(`Your job posting %q could not be approved at this time.

Reason: %s

You may modify the job posting and resubmit for approval.

Best regards,
Placement Team`, title, reason)
}

package approval

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"placement-portal/internal/apperr"
	"placement-portal/internal/models"
)

// MinReasonLen is the policy floor for rejection reasons, so companies always
// get actionable feedback.
const MinReasonLen = 10

// ValidateReason enforces the rejection-reason policy before any mutation.
func ValidateReason(reason string) error {
	if len(strings.TrimSpace(reason)) < MinReasonLen {
		return apperr.Validation("rejection reason is required (minimum %d characters)", MinReasonLen)
	}
	return nil
}

// CanApprove rejects a second approval of the same entity.
func CanApprove(kind models.EntityKind, cur models.ApprovalStatus) error {
	if cur == models.ApprovalApproved {
		return apperr.State("%s already approved", strings.ToLower(string(kind)))
	}
	return nil
}

// CanSubmit allows submission for review only from Draft or Rejected.
func CanSubmit(cur models.ApprovalStatus) error {
	switch cur {
	case models.ApprovalDraft, models.ApprovalRejected:
		return nil
	case models.ApprovalPending:
		return apperr.State("already awaiting review")
	default:
		return apperr.State("cannot submit for approval from status %q", cur)
	}
}

// Patch is the write a transition wants applied. The store turns it into a
// conditional update keyed on the status the engine read, so two racing
// reviews cannot both land.
type Patch struct {
	Status    models.ApprovalStatus
	JobStatus models.JobStatus // jobs only; empty leaves the operational status alone

	ApprovedBy     bson.ObjectID
	ApprovedAt     *time.Time
	RejectedBy     bson.ObjectID
	RejectedAt     *time.Time
	RejectedReason string

	// ClearReview wipes prior approver/rejecter metadata (resubmission).
	ClearReview     bool
	IncResubmission bool

	LastReviewedAt *time.Time
}

func approvePatch(actor Actor, now time.Time, jobStatus models.JobStatus) Patch {
	return Patch{
		Status:         models.ApprovalApproved,
		JobStatus:      jobStatus,
		ApprovedBy:     actor.ID,
		ApprovedAt:     &now,
		LastReviewedAt: &now,
	}
}

func rejectPatch(actor Actor, reason string, now time.Time, jobStatus models.JobStatus) Patch {
	return Patch{
		Status:         models.ApprovalRejected,
		JobStatus:      jobStatus,
		RejectedBy:     actor.ID,
		RejectedAt:     &now,
		RejectedReason: reason,
		LastReviewedAt: &now,
	}
}

func resubmitPatch(fromRejected bool) Patch {
	return Patch{
		Status:          models.ApprovalPending,
		JobStatus:       models.JobPendingApproval,
		ClearReview:     true,
		IncResubmission: fromRejected,
	}
}

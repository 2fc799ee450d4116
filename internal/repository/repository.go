// Package repository holds the Mongo collection access for every portal
// entity. Uniqueness (email, roll number, company name, job title per
// company, one application per job per student) is enforced by the indexes
// bootstrap creates, and duplicate-key writes surface as conflict errors.
package repository

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"placement-portal/internal/apperr"
	"placement-portal/internal/approval"
)

// isDup reports a unique-index violation (Mongo error code 11000).
func isDup(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return mongo.IsDuplicateKeyError(err)
}

// approvalUpdate turns an engine patch into a Mongo update document.
func approvalUpdate(p approval.Patch) bson.M {
	set := bson.M{
		"approval_status": p.Status,
		"updated_at":      time.Now().UTC(),
	}
	if p.JobStatus != "" {
		set["status"] = p.JobStatus
	}
	if p.ApprovedAt != nil {
		set["approved_by"] = p.ApprovedBy
		set["approved_at"] = *p.ApprovedAt
	}
	if p.RejectedAt != nil {
		set["rejected_by"] = p.RejectedBy
		set["rejected_at"] = *p.RejectedAt
		set["rejected_reason"] = p.RejectedReason
	}
	if p.LastReviewedAt != nil {
		set["last_reviewed_at"] = *p.LastReviewedAt
	}

	update := bson.M{"$set": set}
	if p.ClearReview {
		update["$unset"] = bson.M{
			"approved_by":     "",
			"approved_at":     "",
			"rejected_by":     "",
			"rejected_at":     "",
			"rejected_reason": "",
		}
	}
	if p.IncResubmission {
		update["$inc"] = bson.M{"resubmission_count": 1}
	}
	return update
}

// errStale is returned when a conditional approval update matched nothing:
// the document's status moved between the engine's read and its write.
func errStale() error {
	return apperr.State("approval state changed, please retry")
}

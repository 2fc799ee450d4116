package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Company holds a recruiter's profile. The review state lives in a single
// ApprovalStatus enum; the boolean view the frontend wants is derived, so the
// two can never disagree.
type Company struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      bson.ObjectID `bson:"user_id"       json:"userId"`
	CompanyName string        `bson:"company_name"  json:"companyName"`
	Description string        `bson:"description"   json:"description"`
	Industry    string        `bson:"industry,omitempty" json:"industry,omitempty"`
	Website     string        `bson:"website,omitempty"  json:"website,omitempty"`
	Location    string        `bson:"location,omitempty" json:"location,omitempty"`

	ApprovalStatus    ApprovalStatus `bson:"approval_status"            json:"approvalStatus"`
	ApprovedBy        bson.ObjectID  `bson:"approved_by,omitempty"      json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time     `bson:"approved_at,omitempty"      json:"approvedAt,omitempty"`
	RejectedBy        bson.ObjectID  `bson:"rejected_by,omitempty"      json:"rejectedBy,omitempty"`
	RejectedAt        *time.Time     `bson:"rejected_at,omitempty"      json:"rejectedAt,omitempty"`
	RejectedReason    string         `bson:"rejected_reason,omitempty"  json:"rejectedReason,omitempty"`
	ResubmissionCount int            `bson:"resubmission_count"         json:"resubmissionCount"`
	LastReviewedAt    *time.Time     `bson:"last_reviewed_at,omitempty" json:"lastReviewedAt,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

func (c *Company) Approved() bool {
	return c.ApprovalStatus == ApprovalApproved
}

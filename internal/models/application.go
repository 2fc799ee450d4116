package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Application is unique per (job, student) pair, enforced by an index.
type Application struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID     bson.ObjectID `bson:"job_id"        json:"jobId"`
	StudentID bson.ObjectID `bson:"student_id"    json:"studentId"`

	Status         ApplicationStatus `bson:"status"                    json:"status"`
	CoverLetter    string            `bson:"cover_letter"              json:"coverLetter"`
	ExpectedSalary float64           `bson:"expected_salary,omitempty" json:"expectedSalary,omitempty"`
	AvailableFrom  time.Time         `bson:"available_from"            json:"availableFrom"`
	ReferenceEmail string            `bson:"reference_email,omitempty" json:"referenceEmail,omitempty"`
	AgreeToTerms   bool              `bson:"agree_to_terms"            json:"agreeToTerms"`

	AppliedAt time.Time     `bson:"applied_at"           json:"appliedAt"`
	UpdatedBy bson.ObjectID `bson:"updated_by,omitempty" json:"updatedBy,omitempty"`
	UpdatedAt time.Time     `bson:"updated_at"           json:"updatedAt"`
}

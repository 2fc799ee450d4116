package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Eligibility struct {
	MinCGPA         float64  `bson:"min_cgpa"                   json:"minCGPA"`
	Branches        []string `bson:"branches"                   json:"branches"`
	GraduationYears []int    `bson:"graduation_years,omitempty" json:"graduationYears,omitempty"`
	MaxBacklogs     int      `bson:"max_backlogs"               json:"maxBacklogs"`
}

type JobLocation struct {
	City    string `bson:"city,omitempty"    json:"city,omitempty"`
	State   string `bson:"state,omitempty"   json:"state,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

type Stipend struct {
	Amount   float64 `bson:"amount,omitempty"   json:"amount,omitempty"`
	Currency string  `bson:"currency,omitempty" json:"currency,omitempty"`
}

type Bond struct {
	Required bool   `bson:"required"           json:"required"`
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"`
	Details  string `bson:"details,omitempty"  json:"details,omitempty"`
}

type SelectionStage struct {
	Stage       string `bson:"stage"                 json:"stage"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Duration    string `bson:"duration,omitempty"    json:"duration,omitempty"`
}

type Job struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID bson.ObjectID `bson:"company_id"    json:"companyId"`

	Title            string      `bson:"title"                        json:"title"`
	Description      string      `bson:"description"                  json:"description"`
	Role             string      `bson:"role"                         json:"role"`
	EmploymentType   string      `bson:"employment_type"              json:"employmentType"`
	JobMode          string      `bson:"job_mode"                     json:"jobMode"`
	NumberOfOpenings int         `bson:"number_of_openings"           json:"numberOfOpenings"`
	Location         JobLocation `bson:"location,omitempty"           json:"location,omitempty"`
	Package          float64     `bson:"package"                      json:"package"`
	Stipend          *Stipend    `bson:"stipend,omitempty"            json:"stipend,omitempty"`
	Bond             *Bond       `bson:"bond,omitempty"               json:"bond,omitempty"`

	Eligibility     Eligibility      `bson:"eligibility"                 json:"eligibility"`
	RequiredSkills  []string         `bson:"required_skills"             json:"requiredSkills"`
	PreferredSkills []string         `bson:"preferred_skills,omitempty"  json:"preferredSkills,omitempty"`
	Deadline        time.Time        `bson:"deadline"                    json:"deadline"`
	SelectionProc   []SelectionStage `bson:"selection_process,omitempty" json:"selectionProcess,omitempty"`

	Status            JobStatus      `bson:"status"                     json:"status"`
	ApprovalStatus    ApprovalStatus `bson:"approval_status"            json:"approvalStatus"`
	ApprovedBy        bson.ObjectID  `bson:"approved_by,omitempty"      json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time     `bson:"approved_at,omitempty"      json:"approvedAt,omitempty"`
	RejectedBy        bson.ObjectID  `bson:"rejected_by,omitempty"      json:"rejectedBy,omitempty"`
	RejectedAt        *time.Time     `bson:"rejected_at,omitempty"      json:"rejectedAt,omitempty"`
	RejectedReason    string         `bson:"rejected_reason,omitempty"  json:"rejectedReason,omitempty"`
	ResubmissionCount int            `bson:"resubmission_count"         json:"resubmissionCount"`
	LastReviewedAt    *time.Time     `bson:"last_reviewed_at,omitempty" json:"lastReviewedAt,omitempty"`

	IsActive         bool          `bson:"is_active"         json:"isActive"`
	ViewCount        int           `bson:"view_count"        json:"viewCount"`
	ApplicationCount int           `bson:"application_count" json:"applicationCount"`
	CreatedBy        bson.ObjectID `bson:"created_by"        json:"createdBy"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

func (j *Job) Approved() bool {
	return j.ApprovalStatus == ApprovalApproved
}

// AcceptingApplications is the gate the apply operation checks, on top of the
// listing-time pool restriction.
func (j *Job) AcceptingApplications(now time.Time) bool {
	return j.Approved() && j.Status == JobOpen && j.IsActive && !j.Deadline.Before(now)
}

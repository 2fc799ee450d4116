package dto

import "time"

type EligibilityDTO struct {
	MinCGPA         float64  `json:"minCGPA"         validate:"gte=0,lte=10" example:"7.0"`
	Branches        []string `json:"branches"        validate:"required,min=1" example:"CSE,IT"`
	GraduationYears []int    `json:"graduationYears,omitempty" example:"2026,2027"`
	MaxBacklogs     int      `json:"maxBacklogs,omitempty"     validate:"gte=0" example:"0"`
}

type JobLocationDTO struct {
	City    string `json:"city,omitempty"    example:"Bengaluru"`
	State   string `json:"state,omitempty"   example:"Karnataka"`
	Country string `json:"country,omitempty" example:"India"`
}

type StipendDTO struct {
	Amount   float64 `json:"amount,omitempty"   validate:"gte=0" example:"40000"`
	Currency string  `json:"currency,omitempty" example:"INR"`
}

type BondDTO struct {
	Required bool   `json:"required"           example:"true"`
	Duration string `json:"duration,omitempty" example:"1 year"`
	Details  string `json:"details,omitempty"`
}

type SelectionStageDTO struct {
	Stage       string `json:"stage"       validate:"required" example:"technical interview"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty" example:"45 min"`
}

// ===== Request =====
type PostJobRequest struct {
	Title            string              `json:"title"       validate:"required,min=3,max=150" example:"Backend Engineer Intern"`
	Description      string              `json:"description" validate:"required,min=20"        example:"Work on Go services for the billing platform."`
	Role             string              `json:"role,omitempty" example:"SDE-1"`
	EmploymentType   string              `json:"employmentType" validate:"omitempty,oneof=full-time internship" example:"full-time"`
	JobMode          string              `json:"jobMode"        validate:"omitempty,oneof=onsite remote hybrid"  example:"hybrid"`
	NumberOfOpenings int                 `json:"numberOfOpenings" validate:"required,gte=1" example:"5"`
	Location         JobLocationDTO      `json:"location,omitempty"`
	Package          float64             `json:"package" validate:"gte=0" example:"12.5"`
	Stipend          *StipendDTO         `json:"stipend,omitempty"`
	Bond             *BondDTO            `json:"bond,omitempty"`
	Eligibility      EligibilityDTO      `json:"eligibility" validate:"required"`
	RequiredSkills   []string            `json:"requiredSkills" validate:"required,min=1" example:"go,mongodb"`
	PreferredSkills  []string            `json:"preferredSkills,omitempty" example:"docker"`
	Deadline         time.Time           `json:"deadline" validate:"required" example:"2026-10-15T00:00:00Z"`
	SelectionProcess []SelectionStageDTO `json:"selectionProcess,omitempty"`
	SaveAsDraft      bool                `json:"saveAsDraft" example:"false"`
}

// UpdateJobRequest edits a Draft or Rejected job; Resubmit moves it back to
// Pending Approval in the same call.
type UpdateJobRequest struct {
	Title            *string             `json:"title,omitempty"       validate:"omitempty,min=3,max=150"`
	Description      *string             `json:"description,omitempty" validate:"omitempty,min=20"`
	Role             *string             `json:"role,omitempty"`
	EmploymentType   *string             `json:"employmentType,omitempty" validate:"omitempty,oneof=full-time internship"`
	JobMode          *string             `json:"jobMode,omitempty"        validate:"omitempty,oneof=onsite remote hybrid"`
	NumberOfOpenings *int                `json:"numberOfOpenings,omitempty" validate:"omitempty,gte=1"`
	Location         *JobLocationDTO     `json:"location,omitempty"`
	Package          *float64            `json:"package,omitempty" validate:"omitempty,gte=0"`
	Stipend          *StipendDTO         `json:"stipend,omitempty"`
	Bond             *BondDTO            `json:"bond,omitempty"`
	Eligibility      *EligibilityDTO     `json:"eligibility,omitempty"`
	RequiredSkills   []string            `json:"requiredSkills,omitempty"`
	PreferredSkills  []string            `json:"preferredSkills,omitempty"`
	Deadline         *time.Time          `json:"deadline,omitempty"`
	SelectionProcess []SelectionStageDTO `json:"selectionProcess,omitempty"`
	Resubmit         bool                `json:"resubmit" example:"true"`
}

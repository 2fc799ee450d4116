package dto

import "time"

// ===== Request =====

type DriveCriteriaDTO struct {
	MinCGPA  float64  `json:"minCGPA"  validate:"gte=0,lte=10" example:"6.5"`
	Branches []string `json:"branches" validate:"required,min=1" example:"ALL"`
	Backlogs int      `json:"backlogs" validate:"gte=0" example:"0"`
}

type CreateDriveRequest struct {
	Title       string           `json:"title"       validate:"required,min=3,max=150" example:"Winter Placement Drive 2026"`
	Description string           `json:"description" validate:"required,min=10"`
	StartDate   time.Time        `json:"startDate"   validate:"required"`
	EndDate     time.Time        `json:"endDate"     validate:"required,gtfield=StartDate"`
	Venue       string           `json:"venue"       example:"Main Auditorium"`
	Criteria    DriveCriteriaDTO `json:"criteria"    validate:"required"`
	CompanyIDs  []string         `json:"companyIds,omitempty"`
}

type UpdateDriveRequest struct {
	Title       *string           `json:"title,omitempty"       validate:"omitempty,min=3,max=150"`
	Description *string           `json:"description,omitempty" validate:"omitempty,min=10"`
	StartDate   *time.Time        `json:"startDate,omitempty"`
	EndDate     *time.Time        `json:"endDate,omitempty"`
	Venue       *string           `json:"venue,omitempty"`
	Criteria    *DriveCriteriaDTO `json:"criteria,omitempty"`
	CompanyIDs  []string          `json:"companyIds,omitempty"`
	Status      *string           `json:"status,omitempty" validate:"omitempty,oneof=Scheduled Ongoing Completed Cancelled"`
}

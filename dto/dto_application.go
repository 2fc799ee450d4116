package dto

import "time"

// ===== Request =====

type ApplyRequest struct {
	CoverLetter    string    `json:"coverLetter"    validate:"required,min=50" example:"I have built two Go services backed by MongoDB during my internship at ..."`
	ExpectedSalary float64   `json:"expectedSalary,omitempty" validate:"omitempty,gte=0" example:"10"`
	AvailableFrom  time.Time `json:"availableFrom"  validate:"required" example:"2026-07-01T00:00:00Z"`
	ReferenceEmail string    `json:"referenceEmail,omitempty" validate:"omitempty,email" example:"mentor@univ.edu"`
	AgreeToTerms   bool      `json:"agreeToTerms"   example:"true"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Applied Shortlisted Selected Rejected" example:"Shortlisted"`
	Notes  string `json:"notes,omitempty" example:"strong DSA round"`
}

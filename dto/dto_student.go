package dto

// ===== Request =====

// UpdateProfileRequest edits the mutable part of a student profile. Roll
// number and branch are fixed at registration.
type UpdateProfileRequest struct {
	CGPA   float64  `json:"cgpa"   validate:"gte=0,lte=10" example:"8.7"`
	Skills []string `json:"skills" validate:"required,min=1" example:"go,react,sql"`
	Phone  string   `json:"phone,omitempty" validate:"omitempty,len=10,numeric" example:"9876543210"`
}

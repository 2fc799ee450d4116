package dto

// ===== Request =====

type ApproveRequest struct {
	Notes string `json:"notes,omitempty" example:"verified GST registration"`
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"required,min=10" example:"company website unreachable, registration number missing"`
}

package dto

// Page wraps paginated list responses.
type Page struct {
	Items any   `json:"items"`
	Total int64 `json:"total" example:"42"`
	Page  int   `json:"page"  example:"1"`
	Limit int   `json:"limit" example:"10"`
}

// ===== Error Response =====
type ErrorResponse struct {
	Error string `json:"error" example:"invalid body"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

package dto

// ===== Request =====

// RegisterRequest carries the signup payload. Student and company fields are
// conditional on Role and validated again in the controller.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100" example:"Asha Verma"`
	Email    string `json:"email"    validate:"required,email"         example:"asha@univ.edu"`
	Password string `json:"password" validate:"required,min=8"         example:"s3cretpass"`
	Role     string `json:"role"     validate:"required,oneof=student company" example:"student"`

	// student only
	RollNo string  `json:"rollNo,omitempty" example:"21CS1042"`
	Branch string  `json:"branch,omitempty" example:"CSE"`
	CGPA   float64 `json:"cgpa,omitempty"   example:"8.4"`

	// company only
	CompanyName string `json:"companyName,omitempty" example:"Acme Corp"`
	Website     string `json:"website,omitempty"     example:"https://acme.example"`
	Industry    string `json:"industry,omitempty"    example:"Software"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"asha@univ.edu"`
	Password string `json:"password" validate:"required"       example:"s3cretpass"`
}

// ===== Success Response =====

type AuthResponse struct {
	Token string   `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  UserInfo `json:"user"`
}

type UserInfo struct {
	ID    string `json:"id"    example:"66c6248b98c56c39f018e7d2"`
	Name  string `json:"name"  example:"Asha Verma"`
	Email string `json:"email" example:"asha@univ.edu"`
	Role  string `json:"role"  example:"student"`
}

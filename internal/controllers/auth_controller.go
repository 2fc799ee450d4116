package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"placement-portal/dto"
	"placement-portal/helper"
	"placement-portal/internal/apperr"
	"placement-portal/internal/middleware"
	"placement-portal/internal/models"
)

// Register godoc
// @Summary Register a student or company account
// @Description Creates the user plus its role profile. Company accounts start unapproved and wait for an admin review.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body dto.RegisterRequest true "Register Request"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}
	if err := validateRoleFields(&req); err != nil {
		return fail(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, err)
	}

	ctx, cancel := reqCtx()
	defer cancel()

	now := time.Now().UTC()
	user := models.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  string(hash),
		Role:      req.Role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := users.Create(ctx, &user); err != nil {
		return fail(c, err)
	}

	switch req.Role {
	case models.RoleStudent:
		profile := models.StudentProfile{
			UserID:    user.ID,
			RollNo:    strings.ToUpper(strings.TrimSpace(req.RollNo)),
			Branch:    req.Branch,
			CGPA:      req.CGPA,
			Skills:    []string{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := students.Create(ctx, &profile); err != nil {
			return fail(c, err)
		}
	case models.RoleCompany:
		company := models.Company{
			UserID:      user.ID,
			CompanyName: strings.TrimSpace(req.CompanyName),
			Website:     req.Website,
			Industry:    req.Industry,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := companies.Create(ctx, &company); err != nil {
			return fail(c, err)
		}
	}

	token, err := helper.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Token: token,
		User:  userInfo(&user),
	})
}

// validateRoleFields enforces the conditional part of the register payload.
func validateRoleFields(req *dto.RegisterRequest) error {
	switch req.Role {
	case models.RoleStudent:
		if strings.TrimSpace(req.RollNo) == "" {
			return apperr.Validation("rollNo is required for students")
		}
		if !validBranch(req.Branch) {
			return apperr.Validation("branch must be one of %s", strings.Join(models.Branches, ", "))
		}
		if req.CGPA < 0 || req.CGPA > 10 {
			return apperr.Validation("cgpa must be between 0 and 10")
		}
	case models.RoleCompany:
		if strings.TrimSpace(req.CompanyName) == "" {
			return apperr.Validation("companyName is required for companies")
		}
	}
	return nil
}

func validBranch(branch string) bool {
	for _, b := range models.Branches {
		if branch == b {
			return true
		}
	}
	return false
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return badRequest(c, helper.FormatValidationErrors(err))
	}

	ctx, cancel := reqCtx()
	defer cancel()

	user, err := users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// same message for unknown email and bad password
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}
	if !user.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "account is deactivated"})
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	token, err := helper.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.AuthResponse{Token: token, User: userInfo(user)})
}

// Me godoc
// @Summary Current authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserInfo
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/me [get]
func Me(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := reqCtx()
	defer cancel()

	user, err := users.FindByID(ctx, uid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(userInfo(user))
}

func userInfo(u *models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

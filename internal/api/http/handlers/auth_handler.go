package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/neogig/neogig/internal/api/dto"
	"github.com/neogig/neogig/internal/auth"
	"github.com/neogig/neogig/internal/service"
	apperrors "github.com/neogig/neogig/pkg/util"
)

// AuthHandler exposes signup and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// SignupSeeker handles POST /auth/seekers/signup.
func (h *AuthHandler) SignupSeeker(c *fiber.Ctx) error {
	var req dto.SeekerSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	availability, err := req.Availability.ToDomain()
	if err != nil {
		return err
	}

	account, token, exp, err := h.auth.SignupSeeker(c.Context(), service.SeekerSignupInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Headline:     req.Headline,
		Availability: availability,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"account": dto.AccountResponse{ID: account.ID, Email: account.Email, Role: account.Role},
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// SignupCompany handles POST /auth/companies/signup.
func (h *AuthHandler) SignupCompany(c *fiber.Ctx) error {
	var req dto.CompanySignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	account, token, exp, err := h.auth.SignupCompany(c.Context(), service.CompanySignupInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"account": dto.AccountResponse{ID: account.ID, Email: account.Email, Role: account.Role},
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	account, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"account": dto.AccountResponse{ID: account.ID, Email: account.Email, Role: account.Role},
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	account, err := h.auth.GetAccount(c.Context(), identity.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.AccountResponse{ID: account.ID, Email: account.Email, Role: account.Role},
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neogig/neogig/internal/api/dto"
	"github.com/neogig/neogig/internal/auth"
	"github.com/neogig/neogig/internal/service"
	apperrors "github.com/neogig/neogig/pkg/util"
)

// ProfilesHandler manages seeker and company profile endpoints.
type ProfilesHandler struct {
	profiles *service.ProfileService
}

// NewProfilesHandler constructs handler.
func NewProfilesHandler(profileService *service.ProfileService) *ProfilesHandler {
	return &ProfilesHandler{profiles: profileService}
}

// GetSeeker GET /profiles/seeker.
func (h *ProfilesHandler) GetSeeker(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	seeker, err := h.profiles.GetSeeker(c.Context(), identity.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSeekerProfileView(seeker)})
}

// UpdateSeeker PUT /profiles/seeker.
func (h *ProfilesHandler) UpdateSeeker(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	var req dto.UpdateSeekerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	availability, err := req.Availability.ToDomain()
	if err != nil {
		return err
	}

	seeker, err := h.profiles.UpdateSeeker(c.Context(), identity.SubjectID, service.SeekerUpdateInput{
		Name:         req.Name,
		Headline:     req.Headline,
		Availability: availability,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSeekerProfileView(seeker)})
}

// GetCompany GET /profiles/company.
func (h *ProfilesHandler) GetCompany(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	company, err := h.profiles.GetCompany(c.Context(), identity.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCompanyProfileView(company)})
}

// UpdateCompany PUT /profiles/company.
func (h *ProfilesHandler) UpdateCompany(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	var req dto.UpdateCompanyProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	company, err := h.profiles.UpdateCompany(c.Context(), identity.SubjectID, service.CompanyUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCompanyProfileView(company)})
}

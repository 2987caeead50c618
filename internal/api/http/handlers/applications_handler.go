package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/neogig/neogig/internal/api/dto"
	"github.com/neogig/neogig/internal/auth"
	"github.com/neogig/neogig/internal/service"
	apperrors "github.com/neogig/neogig/pkg/util"
)

// ApplicationsHandler manages the apply/decide endpoints.
type ApplicationsHandler struct {
	applications *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{applications: applicationService}
}

// Apply POST /jobs/:id/applications.
func (h *ApplicationsHandler) Apply(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	application, err := h.applications.Apply(c.Context(), identity.SubjectID, c.Params("id"), req.CoverNote)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewApplicationView(application)})
}

// ListMine GET /applications.
func (h *ApplicationsHandler) ListMine(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	limit, offset := parsePagination(c)
	applications, err := h.applications.ListForSeeker(c.Context(), identity.SubjectID, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.ApplicationView, 0, len(applications))
	for i := range applications {
		items = append(items, dto.NewApplicationView(&applications[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListForJob GET /jobs/:id/applications.
func (h *ApplicationsHandler) ListForJob(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	limit, offset := parsePagination(c)
	applications, err := h.applications.ListForJob(c.Context(), identity.SubjectID, c.Params("id"), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.ApplicationView, 0, len(applications))
	for i := range applications {
		items = append(items, dto.NewApplicationView(&applications[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Decide POST /applications/:id/decision.
func (h *ApplicationsHandler) Decide(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	var req dto.DecideRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	application, err := h.applications.Decide(c.Context(), identity.SubjectID, c.Params("id"), req.Accept)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewApplicationView(application)})
}

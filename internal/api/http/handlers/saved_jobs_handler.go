package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/neogig/neogig/internal/api/dto"
	"github.com/neogig/neogig/internal/auth"
	"github.com/neogig/neogig/internal/service"
)

// SavedJobsHandler manages seeker bookmarks.
type SavedJobsHandler struct {
	saved *service.SavedJobService
}

// NewSavedJobsHandler constructs handler.
func NewSavedJobsHandler(savedJobService *service.SavedJobService) *SavedJobsHandler {
	return &SavedJobsHandler{saved: savedJobService}
}

// Save POST /jobs/:id/save.
func (h *SavedJobsHandler) Save(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	saved, err := h.saved.Save(c.Context(), identity.SubjectID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"id":     saved.ID,
		"job_id": saved.JobID,
	}})
}

// Unsave DELETE /jobs/:id/save.
func (h *SavedJobsHandler) Unsave(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	if err := h.saved.Unsave(c.Context(), identity.SubjectID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// List GET /saved-jobs.
func (h *SavedJobsHandler) List(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	limit, offset := parsePagination(c)
	_, jobs, err := h.saved.List(c.Context(), identity.SubjectID, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.JobSummary, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobSummary(&jobs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

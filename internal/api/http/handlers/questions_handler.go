package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/neogig/neogig/internal/api/dto"
	"github.com/neogig/neogig/internal/auth"
	"github.com/neogig/neogig/internal/service"
	apperrors "github.com/neogig/neogig/pkg/util"
)

// QuestionsHandler manages job Q&A endpoints.
type QuestionsHandler struct {
	questions *service.QuestionService
}

// NewQuestionsHandler constructs handler.
func NewQuestionsHandler(questionService *service.QuestionService) *QuestionsHandler {
	return &QuestionsHandler{questions: questionService}
}

// Ask POST /jobs/:id/questions.
func (h *QuestionsHandler) Ask(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	var req dto.AskQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	question, err := h.questions.Ask(c.Context(), identity.SubjectID, c.Params("id"), req.Body)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewQuestionView(question)})
}

// Answer POST /questions/:id/answer.
func (h *QuestionsHandler) Answer(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	var req dto.AnswerQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	question, err := h.questions.Answer(c.Context(), identity.SubjectID, c.Params("id"), req.Answer)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewQuestionView(question)})
}

// ListForJob GET /jobs/:id/questions.
func (h *QuestionsHandler) ListForJob(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	questions, err := h.questions.ListForJob(c.Context(), c.Params("id"), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.QuestionView, 0, len(questions))
	for i := range questions {
		items = append(items, dto.NewQuestionView(&questions[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/neogig/neogig/internal/api/dto"
	"github.com/neogig/neogig/internal/auth"
	"github.com/neogig/neogig/internal/domain"
	"github.com/neogig/neogig/internal/service"
	apperrors "github.com/neogig/neogig/pkg/util"
)

// JobsHandler manages posting and browsing jobs.
type JobsHandler struct {
	jobs      *service.JobService
	questions *service.QuestionService
	saved     *service.SavedJobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService, questionService *service.QuestionService, savedJobService *service.SavedJobService) *JobsHandler {
	return &JobsHandler{jobs: jobService, questions: questionService, saved: savedJobService}
}

// Create POST /jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	workDays, err := req.WorkDays.ToDomain()
	if err != nil {
		return err
	}

	job, err := h.jobs.PostJob(c.Context(), identity.SubjectID, service.JobCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		WorkDays:    workDays,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewJobDetail(job, nil, nil)})
}

// Update PATCH /jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	workDays, err := req.WorkDays.ToDomain()
	if err != nil {
		return err
	}

	job, err := h.jobs.UpdateJob(c.Context(), identity.SubjectID, c.Params("id"), service.JobUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		WorkDays:    workDays,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobDetail(job, nil, nil)})
}

// Close POST /jobs/:id/close.
func (h *JobsHandler) Close(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	job, err := h.jobs.CloseJob(c.Context(), identity.SubjectID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobSummary(job)})
}

// Browse GET /jobs.
func (h *JobsHandler) Browse(c *fiber.Ctx) error {
	filter := parseBrowseQuery(c)
	jobs, err := h.jobs.Browse(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.JobSummary, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobSummary(&jobs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.jobs.GetJob(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	questions, err := h.questions.ListForJob(c.Context(), job.ID, 50, 0)
	if err != nil {
		return err
	}

	// The saved flag only appears for authenticated seekers.
	var saved *bool
	identity := auth.IdentityFromContext(c)
	if !identity.IsAnonymous() && identity.Role == domain.RoleSeeker {
		flag := h.saved.IsSaved(c.Context(), identity.SubjectID, job.ID)
		saved = &flag
	}
	return c.JSON(fiber.Map{"data": dto.NewJobDetail(job, questions, saved)})
}

// ListMine GET /company/jobs.
func (h *JobsHandler) ListMine(c *fiber.Ctx) error {
	identity := auth.IdentityFromContext(c)
	limit, offset := parsePagination(c)
	jobs, err := h.jobs.ListCompanyJobs(c.Context(), identity.SubjectID, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.JobSummary, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobSummary(&jobs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func parseBrowseQuery(c *fiber.Ctx) service.JobBrowseFilter {
	filter := service.JobBrowseFilter{}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		filter.SearchTerm = &q
	}
	if loc := strings.TrimSpace(c.Query("location")); loc != "" {
		filter.Location = &loc
	}
	if day := strings.ToUpper(strings.TrimSpace(c.Query("day"))); day != "" {
		weekday := domain.Weekday(day)
		filter.ScheduleDay = &weekday
	}
	if sal := c.Query("salary_min"); sal != "" {
		if parsed, err := strconv.Atoi(sal); err == nil {
			filter.SalaryFloor = &parsed
		}
	}
	if tags := c.Query("tags"); tags != "" {
		for _, part := range strings.Split(tags, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				filter.Tags = append(filter.Tags, trimmed)
			}
		}
	}
	filter.Limit, filter.Offset = parsePagination(c)
	return filter
}

func parsePagination(c *fiber.Ctx) (limit, offset int) {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return pageSize, (page - 1) * pageSize
}

func parseInt(val string, fallback int) int {
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/neogig/neogig/internal/cache"
	"github.com/neogig/neogig/internal/domain"
	"github.com/neogig/neogig/internal/events"
	"github.com/neogig/neogig/internal/repository"
	apperrors "github.com/neogig/neogig/pkg/util"
)

const jobListCachePrefix = "jobs:list:"

// JobService coordinates posting, browsing and lifecycle of jobs.
type JobService struct {
	jobs       repository.JobRepository
	companies  repository.CompanyRepository
	dispatcher events.Dispatcher
	listCache  *cache.Cache
	listTTL    time.Duration
	logger     *zap.Logger
}

// JobDependencies bundles repositories for job service.
type JobDependencies struct {
	JobRepo     repository.JobRepository
	CompanyRepo repository.CompanyRepository
	Dispatcher  events.Dispatcher
	ListCache   *cache.Cache
	ListTTL     time.Duration
	Logger      *zap.Logger
}

// JobCreateInput describes job posting payload.
type JobCreateInput struct {
	Title       string
	Description string
	Location    string
	SalaryMin   *int
	SalaryMax   *int
	WorkDays    domain.Schedule
	Tags        []string
}

// JobUpdateInput describes job update payload.
type JobUpdateInput struct {
	Title       *string
	Description *string
	Location    *string
	SalaryMin   *int
	SalaryMax   *int
	WorkDays    domain.Schedule
	Tags        []string
}

// JobBrowseFilter describes public browse filters.
type JobBrowseFilter struct {
	SearchTerm  *string
	Location    *string
	ScheduleDay *domain.Weekday
	SalaryFloor *int
	Tags        []string
	Limit       int
	Offset      int
}

// NewJobService constructs the service.
func NewJobService(deps JobDependencies) *JobService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{
		jobs:       deps.JobRepo,
		companies:  deps.CompanyRepo,
		dispatcher: deps.Dispatcher,
		listCache:  deps.ListCache,
		listTTL:    deps.ListTTL,
		logger:     logger,
	}
}

// PostJob creates a job for the company owning the account.
func (s *JobService) PostJob(ctx context.Context, accountID string, input JobCreateInput) (*domain.Job, error) {
	company, err := s.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		Slug:        generateJobSlug(input.Title),
		CompanyID:   company.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Location:    strings.TrimSpace(input.Location),
		SalaryMin:   input.SalaryMin,
		SalaryMax:   input.SalaryMax,
		WorkDays:    input.WorkDays,
		Tags:        input.Tags,
		Status:      domain.JobStatusOpen,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	s.publishEvent(ctx, events.Event{
		Type:  events.EventJobPosted,
		JobID: job.ID,
		Actor: companyActor(accountID),
		Payload: events.JobPostedPayload{
			CompanyID: job.CompanyID,
			Title:     job.Title,
			Location:  job.Location,
			Tags:      job.Tags,
		},
	})
	return job, nil
}

// UpdateJob applies changes to a job the company owns.
func (s *JobService) UpdateJob(ctx context.Context, accountID, jobID string, input JobUpdateInput) (*domain.Job, error) {
	job, err := s.ownedJob(ctx, accountID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusOpen {
		return nil, apperrors.NewConflict("job is closed", nil)
	}

	if input.Title != nil {
		job.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		job.Description = strings.TrimSpace(*input.Description)
	}
	if input.Location != nil {
		job.Location = strings.TrimSpace(*input.Location)
	}
	if input.SalaryMin != nil {
		job.SalaryMin = input.SalaryMin
	}
	if input.SalaryMax != nil {
		job.SalaryMax = input.SalaryMax
	}
	if input.WorkDays != nil {
		job.WorkDays = input.WorkDays
	}
	if input.Tags != nil {
		job.Tags = input.Tags
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	s.invalidateListings(ctx)
	return job, nil
}

// CloseJob marks a job the company owns as closed.
func (s *JobService) CloseJob(ctx context.Context, accountID, jobID string) (*domain.Job, error) {
	job, err := s.ownedJob(ctx, accountID, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == domain.JobStatusClosed {
		return nil, apperrors.NewConflict("job already closed", nil)
	}

	now := time.Now()
	job.Status = domain.JobStatusClosed
	job.ClosedAt = &now
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	s.publishEvent(ctx, events.Event{
		Type:    events.EventJobClosed,
		JobID:   job.ID,
		Actor:   companyActor(accountID),
		Payload: events.JobClosedPayload{CompanyID: job.CompanyID},
	})
	return job, nil
}

// Browse returns open jobs matching the public filters, served through
// the listing cache when one is configured.
func (s *JobService) Browse(ctx context.Context, filter JobBrowseFilter) ([]domain.Job, error) {
	key := browseCacheKey(filter)
	var cached []domain.Job
	if hit, err := s.listCache.Get(ctx, key, &cached); err != nil {
		s.logger.Warn("job listing cache read failed", zap.Error(err))
	} else if hit {
		return cached, nil
	}

	repoFilter := repository.JobFilter{
		Statuses:    []domain.JobStatus{domain.JobStatusOpen},
		Location:    filter.Location,
		SearchTerm:  filter.SearchTerm,
		ScheduleDay: filter.ScheduleDay,
		SalaryFloor: filter.SalaryFloor,
		Tags:        filter.Tags,
		Limit:       filter.Limit,
		Offset:      filter.Offset,
	}
	jobs, err := s.jobs.ListWithFilter(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	if err := s.listCache.Set(ctx, key, jobs, s.listTTL); err != nil {
		s.logger.Warn("job listing cache write failed", zap.Error(err))
	}
	return jobs, nil
}

// GetJob fetches a job by id for public detail views.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, jobID)
}

// ListCompanyJobs returns all jobs posted by the account's company.
func (s *JobService) ListCompanyJobs(ctx context.Context, accountID string, limit, offset int) ([]domain.Job, error) {
	company, err := s.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.jobs.ListByCompany(ctx, company.ID, limit, offset)
}

// ownedJob loads a job and verifies the account's company owns it.
func (s *JobService) ownedJob(ctx context.Context, accountID, jobID string) (*domain.Job, error) {
	company, err := s.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CompanyID != company.ID {
		return nil, apperrors.NewAuthorizationDenied("job belongs to another company")
	}
	return job, nil
}

func (s *JobService) invalidateListings(ctx context.Context) {
	if err := s.listCache.InvalidatePrefix(ctx, jobListCachePrefix); err != nil {
		s.logger.Warn("job listing cache invalidation failed", zap.Error(err))
	}
}

func (s *JobService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	fillEventDefaults(&event)
	_ = s.dispatcher.Publish(ctx, event)
}

func fillEventDefaults(event *events.Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
}

func browseCacheKey(filter JobBrowseFilter) string {
	var b strings.Builder
	b.WriteString(jobListCachePrefix)
	if filter.SearchTerm != nil {
		b.WriteString("q=" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + ";")
	}
	if filter.Location != nil {
		b.WriteString("loc=" + strings.ToLower(strings.TrimSpace(*filter.Location)) + ";")
	}
	if filter.ScheduleDay != nil {
		b.WriteString("day=" + string(*filter.ScheduleDay) + ";")
	}
	if filter.SalaryFloor != nil {
		b.WriteString(fmt.Sprintf("sal=%d;", *filter.SalaryFloor))
	}
	if len(filter.Tags) > 0 {
		b.WriteString("tags=" + strings.Join(filter.Tags, ",") + ";")
	}
	b.WriteString(fmt.Sprintf("limit=%d;offset=%d", filter.Limit, filter.Offset))
	return b.String()
}

func generateJobSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	if slug == "" {
		return suffix
	}
	return slug + "-" + suffix
}

func seekerActor(accountID string) events.Actor {
	return events.Actor{Role: domain.RoleSeeker, SubjectID: accountID}
}

func companyActor(accountID string) events.Actor {
	return events.Actor{Role: domain.RoleCompany, SubjectID: accountID}
}

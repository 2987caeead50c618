package service

import (
	"context"
	"errors"
	"time"

	"github.com/neogig/neogig/internal/domain"
	"github.com/neogig/neogig/internal/events"
	"github.com/neogig/neogig/internal/repository"
	apperrors "github.com/neogig/neogig/pkg/util"
)

// ApplicationService coordinates the apply/decide workflow.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	seekers      repository.SeekerRepository
	companies    repository.CompanyRepository
	dispatcher   events.Dispatcher
}

// ApplicationDependencies bundles repositories for application service.
type ApplicationDependencies struct {
	ApplicationRepo repository.ApplicationRepository
	JobRepo         repository.JobRepository
	SeekerRepo      repository.SeekerRepository
	CompanyRepo     repository.CompanyRepository
	Dispatcher      events.Dispatcher
}

// NewApplicationService constructs the service.
func NewApplicationService(deps ApplicationDependencies) *ApplicationService {
	return &ApplicationService{
		applications: deps.ApplicationRepo,
		jobs:         deps.JobRepo,
		seekers:      deps.SeekerRepo,
		companies:    deps.CompanyRepo,
		dispatcher:   deps.Dispatcher,
	}
}

// Apply submits an application for the seeker owning the account. The
// match score is the fraction of the job's schedule the seeker's
// availability covers at apply time.
func (s *ApplicationService) Apply(ctx context.Context, accountID, jobID, coverNote string) (*domain.Application, error) {
	seeker, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusOpen {
		return nil, apperrors.NewConflict("job is closed", nil)
	}

	application := &domain.Application{
		JobID:      job.ID,
		SeekerID:   seeker.ID,
		CoverNote:  coverNote,
		MatchScore: domain.OverlapScore(seeker.Availability, job.WorkDays),
		Status:     domain.ApplicationStatusSubmitted,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return nil, apperrors.NewConflict("already applied to this job", nil)
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventApplicationSubmitted,
		JobID: job.ID,
		Actor: seekerActor(accountID),
		Payload: events.ApplicationSubmittedPayload{
			ApplicationID: application.ID,
			SeekerID:      seeker.ID,
			MatchScore:    application.MatchScore,
		},
	})
	return application, nil
}

// ListForSeeker returns the seeker's own applications.
func (s *ApplicationService) ListForSeeker(ctx context.Context, accountID string, limit, offset int) ([]domain.Application, error) {
	seeker, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.applications.ListBySeeker(ctx, seeker.ID, limit, offset)
}

// ListForJob returns a job's applications for the company owning it.
func (s *ApplicationService) ListForJob(ctx context.Context, accountID, jobID string, limit, offset int) ([]domain.Application, error) {
	if _, err := s.ownedJob(ctx, accountID, jobID); err != nil {
		return nil, err
	}
	return s.applications.ListByJob(ctx, jobID, limit, offset)
}

// Decide accepts or rejects a submitted application on a job the
// company owns.
func (s *ApplicationService) Decide(ctx context.Context, accountID, applicationID string, accept bool) (*domain.Application, error) {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	job, err := s.ownedJob(ctx, accountID, application.JobID)
	if err != nil {
		return nil, err
	}
	if application.Status != domain.ApplicationStatusSubmitted {
		return nil, apperrors.NewConflict("application already decided", nil)
	}

	now := time.Now()
	if accept {
		application.Status = domain.ApplicationStatusAccepted
	} else {
		application.Status = domain.ApplicationStatusRejected
	}
	application.DecidedAt = &now
	if err := s.applications.Update(ctx, application); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventApplicationDecided,
		JobID: job.ID,
		Actor: companyActor(accountID),
		Payload: events.ApplicationDecidedPayload{
			ApplicationID: application.ID,
			SeekerID:      application.SeekerID,
			Status:        application.Status,
		},
	})
	return application, nil
}

func (s *ApplicationService) ownedJob(ctx context.Context, accountID, jobID string) (*domain.Job, error) {
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

func (s *ApplicationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	fillEventDefaults(&event)
	_ = s.dispatcher.Publish(ctx, event)
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/neogig/neogig/internal/domain"
	"github.com/neogig/neogig/internal/events"
	"github.com/neogig/neogig/internal/repository"
	apperrors "github.com/neogig/neogig/pkg/util"
)

// QuestionService coordinates job Q&A.
type QuestionService struct {
	questions  repository.QuestionRepository
	jobs       repository.JobRepository
	seekers    repository.SeekerRepository
	companies  repository.CompanyRepository
	dispatcher events.Dispatcher
}

// QuestionDependencies bundles repositories for question service.
type QuestionDependencies struct {
	QuestionRepo repository.QuestionRepository
	JobRepo      repository.JobRepository
	SeekerRepo   repository.SeekerRepository
	CompanyRepo  repository.CompanyRepository
	Dispatcher   events.Dispatcher
}

// NewQuestionService constructs the service.
func NewQuestionService(deps QuestionDependencies) *QuestionService {
	return &QuestionService{
		questions:  deps.QuestionRepo,
		jobs:       deps.JobRepo,
		seekers:    deps.SeekerRepo,
		companies:  deps.CompanyRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Ask records a seeker question on an open job.
func (s *QuestionService) Ask(ctx context.Context, accountID, jobID, body string) (*domain.Question, error) {
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

	question := &domain.Question{
		JobID:    job.ID,
		SeekerID: seeker.ID,
		Body:     strings.TrimSpace(body),
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventQuestionAsked,
		JobID: job.ID,
		Actor: seekerActor(accountID),
		Payload: events.QuestionAskedPayload{
			QuestionID:  question.ID,
			SeekerID:    seeker.ID,
			BodyPreview: bodyPreview(question.Body, 80),
		},
	})
	return question, nil
}

// Answer records the owning company's answer to a question.
func (s *QuestionService) Answer(ctx context.Context, accountID, questionID, answer string) (*domain.Question, error) {
	company, err := s.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	question, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, question.JobID)
	if err != nil {
		return nil, err
	}
	if job.CompanyID != company.ID {
		return nil, apperrors.NewAuthorizationDenied("question belongs to another company's job")
	}
	if question.Answer != nil {
		return nil, apperrors.NewConflict("question already answered", nil)
	}

	now := time.Now()
	trimmed := strings.TrimSpace(answer)
	question.Answer = &trimmed
	question.AnsweredAt = &now
	if err := s.questions.SetAnswer(ctx, question); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventQuestionAnswered,
		JobID: job.ID,
		Actor: companyActor(accountID),
		Payload: events.QuestionAnsweredPayload{
			QuestionID: question.ID,
			CompanyID:  company.ID,
		},
	})
	return question, nil
}

// ListForJob returns a job's questions for public detail views.
func (s *QuestionService) ListForJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Question, error) {
	return s.questions.ListByJob(ctx, jobID, limit, offset)
}

func (s *QuestionService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	fillEventDefaults(&event)
	_ = s.dispatcher.Publish(ctx, event)
}

func bodyPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}

package service

import (
	"context"
	"errors"

	"github.com/neogig/neogig/internal/domain"
	"github.com/neogig/neogig/internal/repository"
	apperrors "github.com/neogig/neogig/pkg/util"
)

// SavedJobService manages seeker bookmarks.
type SavedJobService struct {
	saved   repository.SavedJobRepository
	seekers repository.SeekerRepository
	jobs    repository.JobRepository
}

// NewSavedJobService constructs the service.
func NewSavedJobService(saved repository.SavedJobRepository, seekers repository.SeekerRepository, jobs repository.JobRepository) *SavedJobService {
	return &SavedJobService{saved: saved, seekers: seekers, jobs: jobs}
}

// Save bookmarks a job for the seeker owning the account.
func (s *SavedJobService) Save(ctx context.Context, accountID, jobID string) (*domain.SavedJob, error) {
	seeker, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	saved := &domain.SavedJob{SeekerID: seeker.ID, JobID: jobID}
	if err := s.saved.Create(ctx, saved); err != nil {
		if errors.Is(err, repository.ErrAlreadySaved) {
			return nil, apperrors.NewConflict("job already saved", nil)
		}
		return nil, err
	}
	return saved, nil
}

// Unsave removes a bookmark.
func (s *SavedJobService) Unsave(ctx context.Context, accountID, jobID string) error {
	seeker, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		return err
	}
	return s.saved.Delete(ctx, seeker.ID, jobID)
}

// List returns the seeker's bookmarks with the referenced jobs.
func (s *SavedJobService) List(ctx context.Context, accountID string, limit, offset int) ([]domain.SavedJob, []domain.Job, error) {
	seeker, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	bookmarks, err := s.saved.ListBySeeker(ctx, seeker.ID, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	jobs := make([]domain.Job, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		job, err := s.jobs.GetByID(ctx, bookmark.JobID)
		if err != nil {
			return nil, nil, err
		}
		jobs = append(jobs, *job)
	}
	return bookmarks, jobs, nil
}

// IsSaved reports whether the account's seeker bookmarked the job.
// Errors read as false; the flag is decorative on public views.
func (s *SavedJobService) IsSaved(ctx context.Context, accountID, jobID string) bool {
	seeker, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		return false
	}
	exists, err := s.saved.Exists(ctx, seeker.ID, jobID)
	if err != nil {
		return false
	}
	return exists
}

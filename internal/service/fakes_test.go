package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/neogig/neogig/internal/domain"
	"github.com/neogig/neogig/internal/events"
	"github.com/neogig/neogig/internal/repository"
)

type fakeSeekerRepo struct {
	byAccount map[string]*domain.Seeker
}

func newFakeSeekerRepo() *fakeSeekerRepo {
	return &fakeSeekerRepo{byAccount: map[string]*domain.Seeker{}}
}

func (r *fakeSeekerRepo) add(seeker *domain.Seeker) {
	r.byAccount[seeker.AccountID] = seeker
}

func (r *fakeSeekerRepo) GetByID(ctx context.Context, id string) (*domain.Seeker, error) {
	for _, s := range r.byAccount {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeSeekerRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.Seeker, error) {
	s, ok := r.byAccount[accountID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return s, nil
}

func (r *fakeSeekerRepo) Update(ctx context.Context, seeker *domain.Seeker) error {
	if _, ok := r.byAccount[seeker.AccountID]; !ok {
		return pgx.ErrNoRows
	}
	r.byAccount[seeker.AccountID] = seeker
	return nil
}

type fakeCompanyRepo struct {
	byAccount map[string]*domain.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byAccount: map[string]*domain.Company{}}
}

func (r *fakeCompanyRepo) add(company *domain.Company) {
	r.byAccount[company.AccountID] = company
}

func (r *fakeCompanyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	for _, c := range r.byAccount {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCompanyRepo) GetByAccountID(ctx context.Context, accountID string) (*domain.Company, error) {
	c, ok := r.byAccount[accountID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return c, nil
}

func (r *fakeCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	if _, ok := r.byAccount[company.AccountID]; !ok {
		return pgx.ErrNoRows
	}
	r.byAccount[company.AccountID] = company
	return nil
}

type fakeJobRepo struct {
	byID   map[string]*domain.Job
	nextID int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: map[string]*domain.Job{}}
}

func (r *fakeJobRepo) add(job *domain.Job) {
	r.byID[job.ID] = job
}

func (r *fakeJobRepo) Create(ctx context.Context, job *domain.Job) error {
	r.nextID++
	job.ID = fmt.Sprintf("job-%d", r.nextID)
	r.byID[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Update(ctx context.Context, job *domain.Job) error {
	if _, ok := r.byID[job.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.byID[job.ID] = job
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	job, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	for _, job := range r.byID {
		if job.Slug == slug {
			copied := *job
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeJobRepo) ListWithFilter(ctx context.Context, filter repository.JobFilter) ([]domain.Job, error) {
	jobs := make([]domain.Job, 0, len(r.byID))
	for _, job := range r.byID {
		if len(filter.Statuses) > 0 {
			match := false
			for _, status := range filter.Statuses {
				if job.Status == status {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

func (r *fakeJobRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.Job, error) {
	jobs := make([]domain.Job, 0)
	for _, job := range r.byID {
		if job.CompanyID == companyID {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

type fakeApplicationRepo struct {
	byID   map[string]*domain.Application
	nextID int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: map[string]*domain.Application{}}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *domain.Application) error {
	for _, existing := range r.byID {
		if existing.JobID == application.JobID && existing.SeekerID == application.SeekerID {
			return repository.ErrDuplicateApplication
		}
	}
	r.nextID++
	application.ID = fmt.Sprintf("application-%d", r.nextID)
	r.byID[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, application *domain.Application) error {
	if _, ok := r.byID[application.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.byID[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	application, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *application
	return &copied, nil
}

func (r *fakeApplicationRepo) ListBySeeker(ctx context.Context, seekerID string, limit, offset int) ([]domain.Application, error) {
	out := make([]domain.Application, 0)
	for _, application := range r.byID {
		if application.SeekerID == seekerID {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Application, error) {
	out := make([]domain.Application, 0)
	for _, application := range r.byID {
		if application.JobID == jobID {
			out = append(out, *application)
		}
	}
	return out, nil
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.Event, len(d.events))
	copy(out, d.events)
	return out
}

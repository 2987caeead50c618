package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neogig/neogig/internal/domain"
	"github.com/neogig/neogig/internal/events"
	apperrors "github.com/neogig/neogig/pkg/util"
)

func newTestJobService(jobs *fakeJobRepo, companies *fakeCompanyRepo, dispatcher *recordingDispatcher) *JobService {
	return NewJobService(JobDependencies{
		JobRepo:     jobs,
		CompanyRepo: companies,
		Dispatcher:  dispatcher,
	})
}

func seedCompany(companies *fakeCompanyRepo, accountID, companyID string) {
	companies.add(&domain.Company{ID: companyID, AccountID: accountID, Name: "Acme"})
}

func TestPostJob(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	dispatcher := &recordingDispatcher{}
	svc := newTestJobService(jobs, companies, dispatcher)
	seedCompany(companies, "acct-1", "company-1")

	job, err := svc.PostJob(context.Background(), "acct-1", JobCreateInput{
		Title:    "  Warehouse Associate  ",
		Location: "Rotterdam",
		WorkDays: domain.Schedule{domain.Monday: {Start: "09:00", End: "17:00"}},
		Tags:     []string{"logistics"},
	})
	require.NoError(t, err)
	assert.Equal(t, "company-1", job.CompanyID)
	assert.Equal(t, "Warehouse Associate", job.Title)
	assert.Equal(t, domain.JobStatusOpen, job.Status)
	assert.Regexp(t, regexp.MustCompile(`^warehouse-associate-[0-9a-f]{8}$`), job.Slug)

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventJobPosted, published[0].Type)
	assert.Equal(t, job.ID, published[0].JobID)
	assert.NotEmpty(t, published[0].ID)
	assert.False(t, published[0].Timestamp.IsZero())
}

func TestPostJobUnknownCompany(t *testing.T) {
	svc := newTestJobService(newFakeJobRepo(), newFakeCompanyRepo(), nil)

	_, err := svc.PostJob(context.Background(), "acct-unknown", JobCreateInput{Title: "Job"})
	require.Error(t, err)
}

func TestUpdateJobOwnership(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	svc := newTestJobService(jobs, companies, nil)
	seedCompany(companies, "acct-1", "company-1")
	seedCompany(companies, "acct-2", "company-2")
	jobs.add(&domain.Job{ID: "job-1", CompanyID: "company-1", Title: "Old", Status: domain.JobStatusOpen})

	newTitle := "New Title"
	_, err := svc.UpdateJob(context.Background(), "acct-2", "job-1", JobUpdateInput{Title: &newTitle})
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "AUTHORIZATION_DENIED", domainErr.Code)
	assert.Equal(t, "Old", jobs.byID["job-1"].Title, "denied update must not mutate the job")

	updated, err := svc.UpdateJob(context.Background(), "acct-1", "job-1", JobUpdateInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
}

func TestUpdateClosedJob(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	svc := newTestJobService(jobs, companies, nil)
	seedCompany(companies, "acct-1", "company-1")
	jobs.add(&domain.Job{ID: "job-1", CompanyID: "company-1", Status: domain.JobStatusClosed})

	title := "New"
	_, err := svc.UpdateJob(context.Background(), "acct-1", "job-1", JobUpdateInput{Title: &title})
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestCloseJob(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	dispatcher := &recordingDispatcher{}
	svc := newTestJobService(jobs, companies, dispatcher)
	seedCompany(companies, "acct-1", "company-1")
	jobs.add(&domain.Job{ID: "job-1", CompanyID: "company-1", Status: domain.JobStatusOpen})

	closed, err := svc.CloseJob(context.Background(), "acct-1", "job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)

	_, err = svc.CloseJob(context.Background(), "acct-1", "job-1")
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)

	published := dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventJobClosed, published[0].Type)
}

func TestBrowseReturnsOnlyOpenJobs(t *testing.T) {
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	svc := newTestJobService(jobs, companies, nil)
	jobs.add(&domain.Job{ID: "job-open", CompanyID: "company-1", Status: domain.JobStatusOpen})
	jobs.add(&domain.Job{ID: "job-closed", CompanyID: "company-1", Status: domain.JobStatusClosed})

	listed, err := svc.Browse(context.Background(), JobBrowseFilter{Limit: 20})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "job-open", listed[0].ID)
}

func TestBrowseCacheKeyDistinguishesFilters(t *testing.T) {
	loc := "Rotterdam"
	day := domain.Monday
	base := browseCacheKey(JobBrowseFilter{Limit: 20})
	withLoc := browseCacheKey(JobBrowseFilter{Location: &loc, Limit: 20})
	withDay := browseCacheKey(JobBrowseFilter{ScheduleDay: &day, Limit: 20})
	paged := browseCacheKey(JobBrowseFilter{Limit: 20, Offset: 20})

	keys := map[string]bool{base: true, withLoc: true, withDay: true, paged: true}
	assert.Len(t, keys, 4, "distinct filters must map to distinct cache keys")
	for key := range keys {
		assert.Contains(t, key, jobListCachePrefix)
	}
}

func TestGenerateJobSlug(t *testing.T) {
	slug := generateJobSlug("Señor Gödel's  Job!!")
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9-]+$`), slug)
	assert.NotContains(t, slug, "--")

	empty := generateJobSlug("!!!")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}$`), empty)
}

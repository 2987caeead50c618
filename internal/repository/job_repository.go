package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neogig/neogig/internal/domain"
)

// JobFilter captures browse/search parameters for job listings.
type JobFilter struct {
	CompanyID   *string
	Statuses    []domain.JobStatus
	Location    *string
	SearchTerm  *string
	ScheduleDay *domain.Weekday
	SalaryFloor *int
	Tags        []string
	Limit       int
	Offset      int
}

// JobRepository encapsulates job persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Job, error)
	ListWithFilter(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.Job, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `id, slug, company_id, title, description, location, salary_min, salary_max,
                    work_days, tags, status, created_at, updated_at, closed_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	workDays, err := json.Marshal(job.WorkDays)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO jobs (slug, company_id, title, description, location, salary_min, salary_max, work_days, tags, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		job.Slug,
		job.CompanyID,
		job.Title,
		job.Description,
		job.Location,
		job.SalaryMin,
		job.SalaryMax,
		workDays,
		job.Tags,
		job.Status,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	workDays, err := json.Marshal(job.WorkDays)
	if err != nil {
		return err
	}

	const query = `
        UPDATE jobs SET title=$1, description=$2, location=$3, salary_min=$4, salary_max=$5,
            work_days=$6, tags=$7, status=$8, closed_at=$9, updated_at=NOW()
        WHERE id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		job.Title,
		job.Description,
		job.Location,
		job.SalaryMin,
		job.SalaryMax,
		workDays,
		job.Tags,
		job.Status,
		job.ClosedAt,
		job.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id=$1`, jobColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *jobRepository) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE slug=$1`, jobColumns)
	return r.fetchSingle(ctx, query, slug)
}

func (r *jobRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Job, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	return scanJob(row)
}

func (r *jobRepository) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.Job, error) {
	filter := JobFilter{
		CompanyID: &companyID,
		Limit:     limit,
		Offset:    offset,
	}
	return r.ListWithFilter(ctx, filter)
}

func (r *jobRepository) ListWithFilter(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	base := fmt.Sprintf(`SELECT %s FROM jobs`, jobColumns)
	clauses := []string{"1=1"}
	args := []any{}

	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		clauses = append(clauses, fmt.Sprintf("company_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.Location != nil && strings.TrimSpace(*filter.Location) != "" {
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(*filter.Location))+"%")
		clauses = append(clauses, fmt.Sprintf("LOWER(location) LIKE $%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(title) LIKE %s OR LOWER(description) LIKE %s)", placeholder, placeholder))
	}
	if filter.ScheduleDay != nil {
		args = append(args, string(*filter.ScheduleDay))
		clauses = append(clauses, fmt.Sprintf("work_days ? $%d", len(args)))
	}
	if filter.SalaryFloor != nil {
		args = append(args, *filter.SalaryFloor)
		clauses = append(clauses, fmt.Sprintf("salary_max >= $%d", len(args)))
	}
	if len(filter.Tags) > 0 {
		args = append(args, filter.Tags)
		clauses = append(clauses, fmt.Sprintf("tags && $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var (
		job      domain.Job
		workDays []byte
	)
	if err := row.Scan(
		&job.ID,
		&job.Slug,
		&job.CompanyID,
		&job.Title,
		&job.Description,
		&job.Location,
		&job.SalaryMin,
		&job.SalaryMax,
		&workDays,
		&job.Tags,
		&job.Status,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.ClosedAt,
	); err != nil {
		return nil, err
	}
	if len(workDays) > 0 {
		if err := json.Unmarshal(workDays, &job.WorkDays); err != nil {
			return nil, err
		}
	}
	return &job, nil
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var result []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *job)
	}
	return result, rows.Err()
}

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neogig/neogig/internal/domain"
)

// ErrDuplicateApplication surfaces the one-application-per-seeker-and-job
// unique constraint.
var ErrDuplicateApplication = errors.New("application already submitted")

// ApplicationRepository encapsulates application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	Update(ctx context.Context, application *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	ListBySeeker(ctx context.Context, seekerID string, limit, offset int) ([]domain.Application, error)
	ListByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Application, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	const query = `
        INSERT INTO applications (job_id, seeker_id, cover_note, match_score, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		application.JobID,
		application.SeekerID,
		application.CoverNote,
		application.MatchScore,
		application.Status,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *applicationRepository) Update(ctx context.Context, application *domain.Application) error {
	const query = `
        UPDATE applications SET status=$1, decided_at=$2, updated_at=NOW()
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query,
		application.Status,
		application.DecidedAt,
		application.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	const query = `
        SELECT id, job_id, seeker_id, cover_note, match_score, status, created_at, updated_at, decided_at
        FROM applications WHERE id=$1`
	var application domain.Application
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&application.ID,
		&application.JobID,
		&application.SeekerID,
		&application.CoverNote,
		&application.MatchScore,
		&application.Status,
		&application.CreatedAt,
		&application.UpdatedAt,
		&application.DecidedAt,
	); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ListBySeeker(ctx context.Context, seekerID string, limit, offset int) ([]domain.Application, error) {
	const query = `
        SELECT id, job_id, seeker_id, cover_note, match_score, status, created_at, updated_at, decided_at
        FROM applications WHERE seeker_id=$1
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, seekerID, normalizeLimit(limit), normalizeOffset(offset))
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Application, error) {
	const query = `
        SELECT id, job_id, seeker_id, cover_note, match_score, status, created_at, updated_at, decided_at
        FROM applications WHERE job_id=$1
        ORDER BY match_score DESC, created_at ASC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, jobID, normalizeLimit(limit), normalizeOffset(offset))
}

func (r *applicationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Application
	for rows.Next() {
		var application domain.Application
		if err := rows.Scan(
			&application.ID,
			&application.JobID,
			&application.SeekerID,
			&application.CoverNote,
			&application.MatchScore,
			&application.Status,
			&application.CreatedAt,
			&application.UpdatedAt,
			&application.DecidedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, application)
	}
	return result, rows.Err()
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

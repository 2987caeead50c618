package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neogig/neogig/internal/domain"
)

// ErrAlreadySaved surfaces the one-bookmark-per-seeker-and-job unique
// constraint.
var ErrAlreadySaved = errors.New("job already saved")

// SavedJobRepository encapsulates bookmark persistence.
type SavedJobRepository interface {
	Create(ctx context.Context, saved *domain.SavedJob) error
	Delete(ctx context.Context, seekerID, jobID string) error
	ListBySeeker(ctx context.Context, seekerID string, limit, offset int) ([]domain.SavedJob, error)
	Exists(ctx context.Context, seekerID, jobID string) (bool, error)
}

type savedJobRepository struct {
	pool *pgxpool.Pool
}

// NewSavedJobRepository instantiates repository.
func NewSavedJobRepository(pool *pgxpool.Pool) SavedJobRepository {
	return &savedJobRepository{pool: pool}
}

func (r *savedJobRepository) Create(ctx context.Context, saved *domain.SavedJob) error {
	const query = `
        INSERT INTO saved_jobs (seeker_id, job_id)
        VALUES ($1,$2)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query, saved.SeekerID, saved.JobID).
		Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadySaved
		}
		return err
	}
	return nil
}

func (r *savedJobRepository) Delete(ctx context.Context, seekerID, jobID string) error {
	const query = `DELETE FROM saved_jobs WHERE seeker_id=$1 AND job_id=$2`
	cmd, err := r.pool.Exec(ctx, query, seekerID, jobID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *savedJobRepository) ListBySeeker(ctx context.Context, seekerID string, limit, offset int) ([]domain.SavedJob, error) {
	const query = `
        SELECT id, seeker_id, job_id, created_at
        FROM saved_jobs WHERE seeker_id=$1
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, seekerID, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SavedJob
	for rows.Next() {
		var saved domain.SavedJob
		if err := rows.Scan(&saved.ID, &saved.SeekerID, &saved.JobID, &saved.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, saved)
	}
	return result, rows.Err()
}

func (r *savedJobRepository) Exists(ctx context.Context, seekerID, jobID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE seeker_id=$1 AND job_id=$2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, seekerID, jobID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

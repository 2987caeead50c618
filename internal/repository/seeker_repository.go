package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neogig/neogig/internal/domain"
)

// SeekerRepository defines persistence access for seeker profiles.
type SeekerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Seeker, error)
	GetByAccountID(ctx context.Context, accountID string) (*domain.Seeker, error)
	Update(ctx context.Context, seeker *domain.Seeker) error
}

type seekerRepository struct {
	pool *pgxpool.Pool
}

// NewSeekerRepository returns a Postgres-backed implementation.
func NewSeekerRepository(pool *pgxpool.Pool) SeekerRepository {
	return &seekerRepository{pool: pool}
}

func (r *seekerRepository) GetByID(ctx context.Context, id string) (*domain.Seeker, error) {
	const query = `
        SELECT id, account_id, name, headline, availability, created_at, updated_at
        FROM seekers WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *seekerRepository) GetByAccountID(ctx context.Context, accountID string) (*domain.Seeker, error) {
	const query = `
        SELECT id, account_id, name, headline, availability, created_at, updated_at
        FROM seekers WHERE account_id=$1`
	return r.fetchSingle(ctx, query, accountID)
}

func (r *seekerRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Seeker, error) {
	var (
		seeker       domain.Seeker
		availability []byte
	)
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&seeker.ID,
		&seeker.AccountID,
		&seeker.Name,
		&seeker.Headline,
		&availability,
		&seeker.CreatedAt,
		&seeker.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(availability) > 0 {
		if err := json.Unmarshal(availability, &seeker.Availability); err != nil {
			return nil, err
		}
	}
	return &seeker, nil
}

func (r *seekerRepository) Update(ctx context.Context, seeker *domain.Seeker) error {
	availability, err := json.Marshal(seeker.Availability)
	if err != nil {
		return err
	}

	const query = `
        UPDATE seekers SET name=$1, headline=$2, availability=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		seeker.Name,
		seeker.Headline,
		availability,
		seeker.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

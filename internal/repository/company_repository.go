package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neogig/neogig/internal/domain"
)

// CompanyRepository defines persistence access for company profiles.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	GetByAccountID(ctx context.Context, accountID string) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
}

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository returns a Postgres-backed implementation.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	const query = `
        SELECT id, account_id, name, description, website, created_at, updated_at
        FROM companies WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *companyRepository) GetByAccountID(ctx context.Context, accountID string) (*domain.Company, error) {
	const query = `
        SELECT id, account_id, name, description, website, created_at, updated_at
        FROM companies WHERE account_id=$1`
	return r.fetchSingle(ctx, query, accountID)
}

func (r *companyRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Company, error) {
	var company domain.Company
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&company.ID,
		&company.AccountID,
		&company.Name,
		&company.Description,
		&company.Website,
		&company.CreatedAt,
		&company.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	const query = `
        UPDATE companies SET name=$1, description=$2, website=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		company.Name,
		company.Description,
		company.Website,
		company.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

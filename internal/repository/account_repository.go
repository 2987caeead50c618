package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neogig/neogig/internal/domain"
)

// ErrEmailTaken surfaces the accounts email unique constraint.
var ErrEmailTaken = errors.New("email already registered")

// AccountRepository defines persistence access for credential records.
// Signup creates the credential and its role profile in one transaction:
// either both rows exist afterwards or neither does.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	CreateWithSeeker(ctx context.Context, account *domain.Account, seeker *domain.Seeker) error
	CreateWithCompany(ctx context.Context, account *domain.Account, company *domain.Company) error
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const query = `
        SELECT id, email, password_hash, role, created_at, updated_at
        FROM accounts WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const query = `
        SELECT id, email, password_hash, role, created_at, updated_at
        FROM accounts WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *accountRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) CreateWithSeeker(ctx context.Context, account *domain.Account, seeker *domain.Seeker) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const accountQuery = `
        INSERT INTO accounts (email, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, accountQuery,
		account.Email,
		account.PasswordHash,
		account.Role,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt); err != nil {
		return mapUniqueViolation(err)
	}

	availability, err := json.Marshal(seeker.Availability)
	if err != nil {
		return err
	}

	const seekerQuery = `
        INSERT INTO seekers (account_id, name, headline, availability)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	seeker.AccountID = account.ID
	if err := tx.QueryRow(ctx, seekerQuery,
		seeker.AccountID,
		seeker.Name,
		seeker.Headline,
		availability,
	).Scan(&seeker.ID, &seeker.CreatedAt, &seeker.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *accountRepository) CreateWithCompany(ctx context.Context, account *domain.Account, company *domain.Company) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const accountQuery = `
        INSERT INTO accounts (email, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, accountQuery,
		account.Email,
		account.PasswordHash,
		account.Role,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt); err != nil {
		return mapUniqueViolation(err)
	}

	const companyQuery = `
        INSERT INTO companies (account_id, name, description, website)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	company.AccountID = account.ID
	if err := tx.QueryRow(ctx, companyQuery,
		company.AccountID,
		company.Name,
		company.Description,
		company.Website,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

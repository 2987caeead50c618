package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/neogig/neogig/internal/auth"
	"github.com/neogig/neogig/internal/config"
	"github.com/neogig/neogig/internal/domain"
	"github.com/neogig/neogig/internal/repository"
	apperrors "github.com/neogig/neogig/pkg/util"
)

// AuthService coordinates signup and login flows. Tokens come out of it
// only after a successful credential check.
type AuthService struct {
	accounts   repository.AccountRepository
	seekers    repository.SeekerRepository
	companies  repository.CompanyRepository
	tokens     *auth.TokenService
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	AccountRepo repository.AccountRepository
	SeekerRepo  repository.SeekerRepository
	CompanyRepo repository.CompanyRepository
}

// NewAuthService builds the service. The signing secret lives inside the
// injected config; nothing here reads process globals.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		accounts:   deps.AccountRepo,
		seekers:    deps.SeekerRepo,
		companies:  deps.CompanyRepo,
		tokens:     auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// SeekerSignupInput describes seeker registration.
type SeekerSignupInput struct {
	Email        string
	Password     string
	Name         string
	Headline     string
	Availability domain.Schedule
}

// CompanySignupInput describes company registration.
type CompanySignupInput struct {
	Email       string
	Password    string
	Name        string
	Description string
	Website     string
}

// SignupSeeker creates a credential record and seeker profile as one
// atomic unit and returns a session token.
func (s *AuthService) SignupSeeker(ctx context.Context, input SeekerSignupInput) (*domain.Account, string, time.Time, error) {
	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	account := &domain.Account{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleSeeker,
	}
	seeker := &domain.Seeker{
		Name:         input.Name,
		Headline:     input.Headline,
		Availability: input.Availability,
	}
	if err := s.accounts.CreateWithSeeker(ctx, account, seeker); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, "", time.Time{}, apperrors.NewEmailTaken()
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// SignupCompany creates a credential record and company profile as one
// atomic unit and returns a session token.
func (s *AuthService) SignupCompany(ctx context.Context, input CompanySignupInput) (*domain.Account, string, time.Time, error) {
	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	account := &domain.Account{
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleCompany,
	}
	company := &domain.Company{
		Name:        input.Name,
		Description: input.Description,
		Website:     input.Website,
	}
	if err := s.accounts.CreateWithCompany(ctx, account, company); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, "", time.Time{}, apperrors.NewEmailTaken()
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// Login verifies credentials and issues a token. A missing account and a
// wrong password produce the same failure so callers cannot tell which
// one happened.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, string, time.Time, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// GetAccount loads the credential record for an identity.
func (s *AuthService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, accountID)
}

// TokenService exposes the underlying token service for middleware usage.
func (s *AuthService) TokenService() *auth.TokenService {
	return s.tokens
}

package service

import (
	"context"

	"github.com/neogig/neogig/internal/domain"
	"github.com/neogig/neogig/internal/repository"
)

// ProfileService manages role profile reads and updates.
type ProfileService struct {
	seekers   repository.SeekerRepository
	companies repository.CompanyRepository
}

// NewProfileService constructs the service.
func NewProfileService(seekers repository.SeekerRepository, companies repository.CompanyRepository) *ProfileService {
	return &ProfileService{seekers: seekers, companies: companies}
}

// GetSeeker loads the seeker profile for an account.
func (s *ProfileService) GetSeeker(ctx context.Context, accountID string) (*domain.Seeker, error) {
	return s.seekers.GetByAccountID(ctx, accountID)
}

// SeekerUpdateInput describes seeker profile changes.
type SeekerUpdateInput struct {
	Name         *string
	Headline     *string
	Availability domain.Schedule
}

// UpdateSeeker applies changes to the account's seeker profile.
func (s *ProfileService) UpdateSeeker(ctx context.Context, accountID string, input SeekerUpdateInput) (*domain.Seeker, error) {
	seeker, err := s.seekers.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		seeker.Name = *input.Name
	}
	if input.Headline != nil {
		seeker.Headline = *input.Headline
	}
	if input.Availability != nil {
		seeker.Availability = input.Availability
	}
	if err := s.seekers.Update(ctx, seeker); err != nil {
		return nil, err
	}
	return seeker, nil
}

// GetCompany loads the company profile for an account.
func (s *ProfileService) GetCompany(ctx context.Context, accountID string) (*domain.Company, error) {
	return s.companies.GetByAccountID(ctx, accountID)
}

// CompanyUpdateInput describes company profile changes.
type CompanyUpdateInput struct {
	Name        *string
	Description *string
	Website     *string
}

// UpdateCompany applies changes to the account's company profile.
func (s *ProfileService) UpdateCompany(ctx context.Context, accountID string, input CompanyUpdateInput) (*domain.Company, error) {
	company, err := s.companies.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Description != nil {
		company.Description = *input.Description
	}
	if input.Website != nil {
		company.Website = *input.Website
	}
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

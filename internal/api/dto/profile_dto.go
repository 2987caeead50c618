package dto

import (
	"github.com/neogig/neogig/internal/domain"
)

// UpdateSeekerProfileRequest payload; nil fields are unchanged.
type UpdateSeekerProfileRequest struct {
	Name         *string         `json:"name"`
	Headline     *string         `json:"headline"`
	Availability SchedulePayload `json:"availability"`
}

// UpdateCompanyProfileRequest payload; nil fields are unchanged.
type UpdateCompanyProfileRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website" validate:"omitempty,url"`
}

// SeekerProfileView is the response form of a seeker profile.
type SeekerProfileView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Headline     string          `json:"headline,omitempty"`
	Availability SchedulePayload `json:"availability,omitempty"`
}

// CompanyProfileView is the response form of a company profile.
type CompanyProfileView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}

// NewSeekerProfileView converts a domain seeker.
func NewSeekerProfileView(seeker *domain.Seeker) SeekerProfileView {
	return SeekerProfileView{
		ID:           seeker.ID,
		Name:         seeker.Name,
		Headline:     seeker.Headline,
		Availability: ScheduleFromDomain(seeker.Availability),
	}
}

// NewCompanyProfileView converts a domain company.
func NewCompanyProfileView(company *domain.Company) CompanyProfileView {
	return CompanyProfileView{
		ID:          company.ID,
		Name:        company.Name,
		Description: company.Description,
		Website:     company.Website,
	}
}

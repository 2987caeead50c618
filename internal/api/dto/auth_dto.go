package dto

import (
	"time"

	"github.com/neogig/neogig/internal/domain"
)

// SeekerSignupRequest payload for new seeker accounts.
type SeekerSignupRequest struct {
	Email        string          `json:"email" validate:"required,email"`
	Password     string          `json:"password" validate:"required,min=8"`
	Name         string          `json:"name" validate:"required"`
	Headline     string          `json:"headline"`
	Availability SchedulePayload `json:"availability"`
}

// CompanySignupRequest payload for new company accounts.
type CompanySignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Website     string `json:"website" validate:"omitempty,url"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AccountResponse summarizes the credential record.
type AccountResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

package dto

import (
	"time"

	"github.com/neogig/neogig/internal/domain"
)

// ApplyRequest payload for submitting an application.
type ApplyRequest struct {
	CoverNote string `json:"cover_note" validate:"max=2000"`
}

// DecideRequest payload for accepting or rejecting an application.
type DecideRequest struct {
	Accept bool `json:"accept"`
}

// ApplicationView is the response form of an application.
type ApplicationView struct {
	ID         string                   `json:"id"`
	JobID      string                   `json:"job_id"`
	SeekerID   string                   `json:"seeker_id"`
	CoverNote  string                   `json:"cover_note,omitempty"`
	MatchScore float64                  `json:"match_score"`
	Status     domain.ApplicationStatus `json:"status"`
	CreatedAt  time.Time                `json:"created_at"`
	DecidedAt  *time.Time               `json:"decided_at,omitempty"`
}

// NewApplicationView converts a domain application.
func NewApplicationView(application *domain.Application) ApplicationView {
	return ApplicationView{
		ID:         application.ID,
		JobID:      application.JobID,
		SeekerID:   application.SeekerID,
		CoverNote:  application.CoverNote,
		MatchScore: application.MatchScore,
		Status:     application.Status,
		CreatedAt:  application.CreatedAt,
		DecidedAt:  application.DecidedAt,
	}
}

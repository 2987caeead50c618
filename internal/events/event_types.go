package events

import (
	"time"

	"github.com/neogig/neogig/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventJobPosted            EventType = "job_posted"
	EventJobClosed            EventType = "job_closed"
	EventApplicationSubmitted EventType = "application_submitted"
	EventApplicationDecided   EventType = "application_decided"
	EventQuestionAsked        EventType = "question_asked"
	EventQuestionAnswered     EventType = "question_answered"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Role      domain.Role `json:"role"`
	SubjectID string      `json:"subject_id"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	JobID     string      `json:"job_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// JobPostedPayload payload.
type JobPostedPayload struct {
	CompanyID string   `json:"company_id"`
	Title     string   `json:"title"`
	Location  string   `json:"location"`
	Tags      []string `json:"tags,omitempty"`
}

// JobClosedPayload payload.
type JobClosedPayload struct {
	CompanyID string `json:"company_id"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	ApplicationID string  `json:"application_id"`
	SeekerID      string  `json:"seeker_id"`
	MatchScore    float64 `json:"match_score"`
}

// ApplicationDecidedPayload payload.
type ApplicationDecidedPayload struct {
	ApplicationID string                   `json:"application_id"`
	SeekerID      string                   `json:"seeker_id"`
	Status        domain.ApplicationStatus `json:"status"`
}

// QuestionAskedPayload payload.
type QuestionAskedPayload struct {
	QuestionID  string `json:"question_id"`
	SeekerID    string `json:"seeker_id"`
	BodyPreview string `json:"body_preview"`
}

// QuestionAnsweredPayload payload.
type QuestionAnsweredPayload struct {
	QuestionID string `json:"question_id"`
	CompanyID  string `json:"company_id"`
}

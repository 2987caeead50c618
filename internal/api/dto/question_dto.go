package dto

import (
	"time"

	"github.com/neogig/neogig/internal/domain"
)

// AskQuestionRequest payload for asking a question on a job.
type AskQuestionRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

// AnswerQuestionRequest payload for answering a question.
type AnswerQuestionRequest struct {
	Answer string `json:"answer" validate:"required,max=2000"`
}

// QuestionView is the response form of a question.
type QuestionView struct {
	ID         string     `json:"id"`
	JobID      string     `json:"job_id"`
	SeekerID   string     `json:"seeker_id"`
	Body       string     `json:"body"`
	Answer     *string    `json:"answer,omitempty"`
	AnsweredAt *time.Time `json:"answered_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewQuestionView converts a domain question.
func NewQuestionView(question *domain.Question) QuestionView {
	return QuestionView{
		ID:         question.ID,
		JobID:      question.JobID,
		SeekerID:   question.SeekerID,
		Body:       question.Body,
		Answer:     question.Answer,
		AnsweredAt: question.AnsweredAt,
		CreatedAt:  question.CreatedAt,
	}
}

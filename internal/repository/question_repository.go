package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neogig/neogig/internal/domain"
)

// QuestionRepository encapsulates job Q&A persistence.
type QuestionRepository interface {
	Create(ctx context.Context, question *domain.Question) error
	GetByID(ctx context.Context, id string) (*domain.Question, error)
	ListByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Question, error)
	SetAnswer(ctx context.Context, question *domain.Question) error
}

type questionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository instantiates repository.
func NewQuestionRepository(pool *pgxpool.Pool) QuestionRepository {
	return &questionRepository{pool: pool}
}

func (r *questionRepository) Create(ctx context.Context, question *domain.Question) error {
	const query = `
        INSERT INTO questions (job_id, seeker_id, body)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		question.JobID,
		question.SeekerID,
		question.Body,
	).Scan(&question.ID, &question.CreatedAt)
}

func (r *questionRepository) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	const query = `
        SELECT id, job_id, seeker_id, body, answer, answered_at, created_at
        FROM questions WHERE id=$1`
	var question domain.Question
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&question.ID,
		&question.JobID,
		&question.SeekerID,
		&question.Body,
		&question.Answer,
		&question.AnsweredAt,
		&question.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) ListByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.Question, error) {
	const query = `
        SELECT id, job_id, seeker_id, body, answer, answered_at, created_at
        FROM questions WHERE job_id=$1
        ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, jobID, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Question
	for rows.Next() {
		var question domain.Question
		if err := rows.Scan(
			&question.ID,
			&question.JobID,
			&question.SeekerID,
			&question.Body,
			&question.Answer,
			&question.AnsweredAt,
			&question.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, question)
	}
	return result, rows.Err()
}

func (r *questionRepository) SetAnswer(ctx context.Context, question *domain.Question) error {
	const query = `
        UPDATE questions SET answer=$1, answered_at=$2
        WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, question.Answer, question.AnsweredAt, question.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/models"
)

// QuestionRepository persists puzzles fetched from the external provider.
type QuestionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new question repository.
func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create stores a fetched puzzle and fills in its assigned id and timestamp.
func (r *QuestionRepository) Create(ctx context.Context, q *models.PuzzleQuestion) error {
	query := `INSERT INTO questions (question, solution) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, q.Question, q.Solution)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	q.ID = id
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}
	return nil
}

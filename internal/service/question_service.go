package service

import (
	"context"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/models"
)

// QuestionService fetches puzzles from the external provider and persists
// them.
type QuestionService struct {
	provider  PuzzleProvider
	questions QuestionStore
}

// NewQuestionService creates a new question service.
func NewQuestionService(provider PuzzleProvider, questions QuestionStore) *QuestionService {
	return &QuestionService{provider: provider, questions: questions}
}

// FetchAndStore retrieves one puzzle from the provider, stores it, and
// returns the persisted record.
func (s *QuestionService) FetchAndStore(ctx context.Context) (*models.PuzzleQuestion, error) {
	fetched, err := s.provider.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	q := &models.PuzzleQuestion{
		Question: fetched.Question,
		Solution: fetched.Solution,
	}
	if err := s.questions.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

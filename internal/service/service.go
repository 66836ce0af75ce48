// Package service implements the application logic between the HTTP handlers
// and the repositories.
package service

import (
	"context"
	"errors"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/models"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/puzzle"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/ranking"
)

// UserStore is the persistence contract the services need for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	IncrementScore(ctx context.Context, id string, level ranking.Level, delta int) error
	ListAll(ctx context.Context) ([]models.User, error)
}

// UserCache caches user records; a nil user on Get means a miss.
type UserCache interface {
	Get(ctx context.Context, userID string) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
	Invalidate(ctx context.Context, userID string) error
}

// BoardCache caches the rendered leaderboard; a nil payload on Get means a miss.
type BoardCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
	Invalidate(ctx context.Context) error
}

// QuestionStore persists fetched puzzles.
type QuestionStore interface {
	Create(ctx context.Context, q *models.PuzzleQuestion) error
}

// PuzzleProvider fetches puzzles from the external API.
type PuzzleProvider interface {
	Fetch(ctx context.Context) (puzzle.Question, error)
}

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrMissingFields      = errors.New("username, email and password are required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmailTaken         = errors.New("user already existed")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrInvalidDelta       = errors.New("score delta must be non-negative")
)

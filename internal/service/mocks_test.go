package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/models"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/puzzle"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/ranking"
)

type userStoreMock struct {
	mock.Mock
}

func (m *userStoreMock) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *userStoreMock) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *userStoreMock) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userStoreMock) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *userStoreMock) IncrementScore(ctx context.Context, id string, level ranking.Level, delta int) error {
	return m.Called(ctx, id, level, delta).Error(0)
}

func (m *userStoreMock) ListAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

type mailerMock struct {
	mock.Mock
}

func (m *mailerMock) Send(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

type providerMock struct {
	mock.Mock
}

func (m *providerMock) Fetch(ctx context.Context) (puzzle.Question, error) {
	args := m.Called(ctx)
	q, _ := args.Get(0).(puzzle.Question)
	return q, args.Error(1)
}

type questionStoreMock struct {
	mock.Mock
}

func (m *questionStoreMock) Create(ctx context.Context, q *models.PuzzleQuestion) error {
	return m.Called(ctx, q).Error(0)
}

// noopUserCache is an always-miss user cache for tests.
type noopUserCache struct{}

func (noopUserCache) Get(ctx context.Context, userID string) (*models.User, error) { return nil, nil }
func (noopUserCache) Set(ctx context.Context, user *models.User) error             { return nil }
func (noopUserCache) Invalidate(ctx context.Context, userID string) error          { return nil }

// memoryBoardCache is an in-memory board cache for tests.
type memoryBoardCache struct {
	payload []byte
}

func (c *memoryBoardCache) Get(ctx context.Context) ([]byte, error) { return c.payload, nil }

func (c *memoryBoardCache) Set(ctx context.Context, payload []byte) error {
	c.payload = payload
	return nil
}

func (c *memoryBoardCache) Invalidate(ctx context.Context) error {
	c.payload = nil
	return nil
}

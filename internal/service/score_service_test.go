package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/models"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/ranking"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/repository"
)

func newScoreService(users *userStoreMock) (*ScoreService, *memoryBoardCache) {
	board := &memoryBoardCache{}
	return NewScoreService(users, noopUserCache{}, board), board
}

func TestApplyDeltaUpdatesOneLevel(t *testing.T) {
	users := new(userStoreMock)
	users.On("GetByID", mock.Anything, "id-1").Return(&models.User{
		ID: "id-1", Score: models.Score{Easy: 10, Medium: 2, Hard: 1},
	}, nil)
	users.On("IncrementScore", mock.Anything, "id-1", ranking.LevelEasy, 5).Return(nil)

	svc, _ := newScoreService(users)
	score, err := svc.ApplyDelta(context.Background(), "id-1", "easy", 5)
	require.NoError(t, err)

	// {easy:10} + 5 easy = {easy:15}; the other levels unchanged.
	assert.Equal(t, models.Score{Easy: 15, Medium: 2, Hard: 1}, score)
	users.AssertExpectations(t)
}

func TestApplyDeltaRejectsUnknownLevel(t *testing.T) {
	users := new(userStoreMock)
	svc, _ := newScoreService(users)

	_, err := svc.ApplyDelta(context.Background(), "id-1", "extreme", 5)
	assert.ErrorIs(t, err, ranking.ErrInvalidLevel)
	users.AssertNotCalled(t, "IncrementScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyDeltaRejectsNegativeDelta(t *testing.T) {
	users := new(userStoreMock)
	svc, _ := newScoreService(users)

	_, err := svc.ApplyDelta(context.Background(), "id-1", "easy", -5)
	assert.ErrorIs(t, err, ErrInvalidDelta)
}

func TestApplyDeltaUnknownUser(t *testing.T) {
	users := new(userStoreMock)
	users.On("GetByID", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	svc, _ := newScoreService(users)
	_, err := svc.ApplyDelta(context.Background(), "ghost", "easy", 5)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestApplyDeltaInvalidatesBoardCache(t *testing.T) {
	users := new(userStoreMock)
	users.On("GetByID", mock.Anything, "id-1").Return(&models.User{ID: "id-1"}, nil)
	users.On("IncrementScore", mock.Anything, "id-1", ranking.LevelHard, 3).Return(nil)

	svc, board := newScoreService(users)
	board.payload = []byte(`{"stale":true}`)

	_, err := svc.ApplyDelta(context.Background(), "id-1", "hard", 3)
	require.NoError(t, err)
	assert.Nil(t, board.payload, "score writes must drop the cached board")
}

func TestGetProfileComputesRanks(t *testing.T) {
	users := new(userStoreMock)
	users.On("ListAll", mock.Anything).Return([]models.User{
		{ID: "id-1", Username: "alice", Email: "a@example.com", Score: models.Score{Easy: 10, Hard: 9}},
		{ID: "id-2", Username: "bob", Email: "b@example.com", Score: models.Score{Easy: 20, Medium: 4}},
	}, nil)

	svc, _ := newScoreService(users)
	profile, err := svc.GetProfile(context.Background(), "id-1")
	require.NoError(t, err)

	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "a@example.com", profile.Email)
	assert.Equal(t, models.Score{Easy: 10, Hard: 9}, profile.Score)
	assert.Equal(t, 2, profile.Rank[ranking.LevelEasy])
	assert.Equal(t, 2, profile.Rank[ranking.LevelMedium])
	assert.Equal(t, 1, profile.Rank[ranking.LevelHard])
}

func TestGetProfileUnknownUser(t *testing.T) {
	users := new(userStoreMock)
	users.On("ListAll", mock.Anything).Return([]models.User{}, nil)

	svc, _ := newScoreService(users)
	_, err := svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetLeaderboardComputesAndCaches(t *testing.T) {
	users := new(userStoreMock)
	users.On("ListAll", mock.Anything).Return([]models.User{
		{ID: "id-1", Username: "alice", Email: "a@example.com", Score: models.Score{Easy: 10}},
		{ID: "id-2", Username: "bob", Email: "b@example.com", Score: models.Score{Easy: 20}},
	}, nil).Once()

	svc, board := newScoreService(users)

	got, err := svc.GetLeaderboard(context.Background())
	require.NoError(t, err)
	easy := got[ranking.LevelEasy]
	require.Len(t, easy, 2)
	assert.Equal(t, "bob", easy[0].Username)
	assert.Equal(t, 1, easy[0].Rank)
	assert.Equal(t, 20, easy[0].Score)
	assert.NotNil(t, board.payload)

	// Second read is served from the cache; ListAll is not hit again.
	again, err := svc.GetLeaderboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, got, again)
	users.AssertNumberOfCalls(t, "ListAll", 1)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/models"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/ranking"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/repository"
)

// Profile is the authenticated user's view: identity plus score and the
// freshly computed per-level ranks.
type Profile struct {
	Username string                `json:"username"`
	Email    string                `json:"email"`
	Rank     map[ranking.Level]int `json:"rank"`
	Score    models.Score          `json:"score"`
}

// ScoreService applies score deltas and derives ranks and leaderboards from
// the stored user records.
type ScoreService struct {
	users UserStore
	cache UserCache
	board BoardCache
}

// NewScoreService creates a new score service.
func NewScoreService(users UserStore, cache UserCache, board BoardCache) *ScoreService {
	return &ScoreService{users: users, cache: cache, board: board}
}

// getUser reads through the cache.
func (s *ScoreService) getUser(ctx context.Context, userID string) (*models.User, error) {
	cached, err := s.cache.Get(ctx, userID)
	if err != nil {
		log.Printf("User cache read failed for %s: %v", userID, err)
	} else if cached != nil {
		return cached, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, user); err != nil {
		log.Printf("User cache write failed for %s: %v", userID, err)
	}
	return user, nil
}

// ApplyDelta adds delta to one difficulty counter for the user and returns
// the updated score record. The level must be one of the three known
// difficulties and the delta must be non-negative; score counters only grow.
func (s *ScoreService) ApplyDelta(ctx context.Context, userID, levelStr string, delta int) (models.Score, error) {
	level, err := ranking.ParseLevel(levelStr)
	if err != nil {
		return models.Score{}, err
	}
	if delta < 0 {
		return models.Score{}, ErrInvalidDelta
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return models.Score{}, err
	}

	// Single atomic increment in the store; concurrent updates for the same
	// user cannot lose writes.
	if err := s.users.IncrementScore(ctx, userID, level, delta); err != nil {
		return models.Score{}, err
	}

	if err := s.cache.Invalidate(ctx, userID); err != nil {
		log.Printf("User cache invalidation failed for %s: %v", userID, err)
	}
	if err := s.board.Invalidate(ctx); err != nil {
		log.Printf("Leaderboard cache invalidation failed: %v", err)
	}

	return level.Add(user.Score, delta), nil
}

// GetProfile returns the user's identity, score and per-level ranks. Ranks
// are recomputed from the full user set on every call.
func (s *ScoreService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ranks, score, err := ranking.Ranks(users, userID)
	if errors.Is(err, ranking.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	profile := &Profile{Rank: ranks, Score: score}
	for _, u := range users {
		if u.ID == userID {
			profile.Username = u.Username
			profile.Email = u.Email
			break
		}
	}
	return profile, nil
}

// GetLeaderboard returns the ranked entry lists for all three levels. The
// rendered board is cached for a few seconds; any score write drops it.
func (s *ScoreService) GetLeaderboard(ctx context.Context) (map[ranking.Level][]ranking.Entry, error) {
	if payload, err := s.board.Get(ctx); err != nil {
		log.Printf("Leaderboard cache read failed: %v", err)
	} else if payload != nil {
		var board map[ranking.Level][]ranking.Entry
		if err := json.Unmarshal(payload, &board); err == nil {
			return board, nil
		}
		log.Printf("Discarding undecodable leaderboard cache entry")
	}

	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	board := ranking.Leaderboard(users)

	if payload, err := json.Marshal(board); err == nil {
		if err := s.board.Set(ctx, payload); err != nil {
			log.Printf("Leaderboard cache write failed: %v", err)
		}
	}
	return board, nil
}

package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	boardCacheKey = "leaderboard:snapshot"
	boardCacheTTL = 5 * time.Second
)

// BoardCacheRepository caches the rendered leaderboard in Redis for a few
// seconds, so bursts of reads do not each re-sort the full user table. Every
// score write invalidates it.
type BoardCacheRepository struct {
	client *redis.Client
}

// NewBoardCacheRepository creates a new leaderboard cache repository.
func NewBoardCacheRepository(client *redis.Client) *BoardCacheRepository {
	return &BoardCacheRepository{client: client}
}

// Get returns the cached leaderboard payload, or (nil, nil) on a miss.
func (r *BoardCacheRepository) Get(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, boardCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set stores the rendered leaderboard.
func (r *BoardCacheRepository) Set(ctx context.Context, payload []byte) error {
	return r.client.Set(ctx, boardCacheKey, payload, boardCacheTTL).Err()
}

// Invalidate drops the cached leaderboard.
func (r *BoardCacheRepository) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, boardCacheKey).Err()
}

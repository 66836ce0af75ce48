package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/models"
)

const (
	userCacheKeyPrefix = "user:info:"
	userCacheTTL       = 24 * time.Hour
)

// UserCacheRepository caches user records in Redis. Entries are dropped on
// every mutation of the underlying record.
type UserCacheRepository struct {
	client *redis.Client
}

// NewUserCacheRepository creates a new user cache repository.
func NewUserCacheRepository(client *redis.Client) *UserCacheRepository {
	return &UserCacheRepository{client: client}
}

// Get returns the cached user, or (nil, nil) if not found.
func (r *UserCacheRepository) Get(ctx context.Context, userID string) (*models.User, error) {
	data, err := r.client.Get(ctx, userCacheKeyPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Set stores the user in cache with a 24h TTL.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, userCacheKeyPrefix+user.ID, data, userCacheTTL).Err()
}

// Invalidate drops the cached user.
func (r *UserCacheRepository) Invalidate(ctx context.Context, userID string) error {
	return r.client.Del(ctx, userCacheKeyPrefix+userID).Err()
}

package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/quisapi/quisapi/internal/logger"
	"github.com/redis/go-redis/v9"
)

// FollowCountCacheRepository provides cached per-group follower counts using
// Redis, so hot counts are readable without touching the quiz_groups table.
type FollowCountCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached counts
}

// NewFollowCountCacheRepository creates a new repository instance with a TTL
func NewFollowCountCacheRepository(client *redis.Client, expiration time.Duration) *FollowCountCacheRepository {
	return &FollowCountCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func followCountKey(quizGroupID uuid.UUID) string {
	return fmt.Sprintf("quiz_group_followings:%s", quizGroupID)
}

// Get fetches a cached follower count for a quiz group
func (r *FollowCountCacheRepository) Get(ctx context.Context, quizGroupID uuid.UUID) (int64, error) {
	key := followCountKey(quizGroupID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return 0, fmt.Errorf("follow count not found in cache for %s", quizGroupID)
		}
		return 0, err
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"result", 0,
			"error", err,
		)
		return 0, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", count,
		"error", nil,
	)

	return count, nil
}

// Set caches a follower count for a quiz group with expiration
func (r *FollowCountCacheRepository) Set(ctx context.Context, quizGroupID uuid.UUID, followings int64) error {
	key := followCountKey(quizGroupID)
	err := r.client.Set(ctx, key, strconv.FormatInt(followings, 10), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"followings", followings,
		"result", "ok",
		"error", err,
	)

	return err
}

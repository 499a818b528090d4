package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestFollowCountCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewFollowCountCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get follow count", func(t *testing.T) {
		groupID := uuid.New()

		err := repo.Set(ctx, groupID, 42)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, groupID)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), got)
	})

	t.Run("Get missing key returns error", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "follow count not found")
	})

	t.Run("Cached value expires", func(t *testing.T) {
		groupID := uuid.New()

		err := repo.Set(ctx, groupID, 7)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.Get(ctx, groupID)
		assert.Error(t, err)
	})
}

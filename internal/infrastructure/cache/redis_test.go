package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pravhesh/GrievAI/internal/domain/entity"
)

// setupMiniRedis creates a mini redis server backed store for testing
func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, NewRedisStore(client, time.Hour)
}

func TestRedisStore_SetAndGet(t *testing.T) {
	_, store := setupMiniRedis(t)
	ctx := context.Background()
	result := entity.Classification{Label: "Water", Score: 0.77, OriginalLabel: "water supply or leakage issue"}

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", result))

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, result, got)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	mr, store := setupMiniRedis(t)
	ctx := context.Background()
	result := entity.Classification{Label: "Road", Score: 0.9, OriginalLabel: "road damage or potholes"}

	require.NoError(t, store.Set(ctx, "k", result))

	mr.FastForward(2 * time.Hour)

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_CorruptValue(t *testing.T) {
	mr, store := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(redisKeyPrefix+"bad", "not json"))

	_, ok, err := store.Get(ctx, "bad")
	assert.Error(t, err)
	assert.False(t, ok)
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Pravhesh/GrievAI/internal/domain/entity"
	"github.com/Pravhesh/GrievAI/internal/infrastructure/config"
)

const redisKeyPrefix = "grievai:classification:"

// RedisStore is a Store backed by Redis. Expiry is enforced by Redis
// itself via per-key TTL; capacity is delegated to the server's own
// maxmemory policy.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects to Redis using the given config and verifies
// the connection with a ping.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// NewRedisStore wraps an existing Redis client as a classification store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get returns the stored classification if the key exists and has not expired.
func (s *RedisStore) Get(ctx context.Context, key string) (entity.Classification, bool, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Classification{}, false, nil
	}
	if err != nil {
		return entity.Classification{}, false, fmt.Errorf("redis get: %w", err)
	}

	var value entity.Classification
	if err := json.Unmarshal(data, &value); err != nil {
		return entity.Classification{}, false, fmt.Errorf("redis get: decode value: %w", err)
	}
	return value, true, nil
}

// Set stores the classification with the configured TTL.
func (s *RedisStore) Set(ctx context.Context, key string, value entity.Classification) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis set: encode value: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

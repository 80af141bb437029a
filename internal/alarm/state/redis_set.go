package state

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisSetKey = "sugarbyte:alarm:notified"

// RedisSet keeps the notified keys in Redis so they survive restarts.
type RedisSet struct {
	client *redis.Client
}

// NewRedisSet connects to Redis and returns a Redis-backed NotifiedSet
func NewRedisSet(host, port string) (*RedisSet, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSet{client: client}, nil
}

// Add records a key
func (s *RedisSet) Add(ctx context.Context, key string) error {
	return s.client.SAdd(ctx, redisSetKey, key).Err()
}

// Contains reports whether a key has been recorded
func (s *RedisSet) Contains(ctx context.Context, key string) (bool, error) {
	return s.client.SIsMember(ctx, redisSetKey, key).Result()
}

// Remove clears a single key
func (s *RedisSet) Remove(ctx context.Context, key string) error {
	return s.client.SRem(ctx, redisSetKey, key).Err()
}

// Clear empties the set
func (s *RedisSet) Clear(ctx context.Context) error {
	return s.client.Del(ctx, redisSetKey).Err()
}

// Close closes the Redis connection
func (s *RedisSet) Close() error {
	return s.client.Close()
}

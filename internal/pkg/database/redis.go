package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/groomer/internal/pkg/models"
)

// ErrKeyNotFound is returned when a requested key is absent
var ErrKeyNotFound = errors.New("key not found")

const connectTimeout = 5 * time.Second

// RedisClient is the device-local key-value store behind the session
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient connects and pings the configured server
func NewRedisClient(config models.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", client.Options().Addr, err)
	}

	return &RedisClient{Client: client}, nil
}

// SetMany writes key/value pairs in one MSET so a reader never sees half
// of them.
func (r *RedisClient) SetMany(ctx context.Context, pairs ...string) error {
	if len(pairs)%2 != 0 {
		return fmt.Errorf("SetMany: odd number of arguments (%d)", len(pairs))
	}
	if len(pairs) == 0 {
		return nil
	}
	values := make([]interface{}, len(pairs))
	for i, p := range pairs {
		values[i] = p
	}
	return r.Client.MSet(ctx, values...).Err()
}

// GetMany reads keys in one MGET. Missing keys yield ErrKeyNotFound
// naming the first absent key.
func (r *RedisClient) GetMany(ctx context.Context, keys ...string) ([]string, error) {
	raw, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	values := make([]string, len(keys))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, keys[i])
		}
		values[i] = s
	}
	return values, nil
}

// Delete removes keys, ignoring ones already absent
func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}

// Close closes the Redis client
func (r *RedisClient) Close() error {
	return r.Client.Close()
}

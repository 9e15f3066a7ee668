package db

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

// StoreRedisClient wraps the go-redis client behind the RedisClient interface.
type StoreRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewStoreRedisClient initializes a Redis-backed client and verifies the
// connection.
func NewStoreRedisClient(ctx context.Context, client *redis.Client) *StoreRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	log.Println("Connected to Redis")

	return &StoreRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *StoreRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *StoreRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Keys lists all keys matching the given pattern.
func (r *StoreRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key.
func (r *StoreRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *StoreRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *StoreRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

package db

import "context"

// RedisClient defines the key-value operations the catalog cache needs.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	GetContext() context.Context
	Ping() error
}

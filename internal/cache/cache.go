// Package cache stores serialized query results in Redis.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Cache is a JSON value store with a fixed expiry.
type Cache interface {
	// Get decodes the value stored under key into dst and reports whether it was present.
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// Key derives a stable key from a namespace and any JSON encodable argument.
func Key(namespace string, arg interface{}) string {
	raw, err := json.Marshal(arg)
	if err != nil {
		return namespace
	}
	sum := sha256.Sum256(raw)
	return namespace + ":" + hex.EncodeToString(sum[:12])
}

// New creates a Redis client and checks it answers.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "cache: ping")
	}

	return client, nil
}

type redisCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedis(client redis.UniversalClient, prefix string, ttl time.Duration) Cache {
	return &redisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "cache: get")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errors.Wrap(err, "cache: decode")
	}
	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "cache: encode")
	}
	return errors.Wrap(c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(), "cache: set")
}

type noop struct{}

// NewNoop returns a cache that never holds anything.
func NewNoop() Cache {
	return noop{}
}

func (noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (noop) Set(context.Context, string, interface{}) error { return nil }

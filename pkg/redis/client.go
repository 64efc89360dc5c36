package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/razorsharp/storefront-backend/pkg/config"
)

const idempotencyKeyFormat = "sf:idempotency:%s:%s"

// commands is the slice of redis.Cmdable the client issues.
type commands interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	SetNX(context.Context, string, any, time.Duration) *redis.BoolCmd
}

// Client wraps the Redis connection used for idempotency storage.
type Client struct {
	cmds commands
	raw  *redis.Client
}

// Pinger exposes the health-check surface.
type Pinger interface {
	Ping(context.Context) error
}

// IdempotencyStore is what the idempotency middleware needs from Redis.
type IdempotencyStore interface {
	Get(context.Context, string) (string, error)
	SetNX(context.Context, string, any, time.Duration) (bool, error)
	IdempotencyKey(scope, id string) string
}

// New connects to Redis and verifies connectivity before returning.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	opts, err := buildOptions(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Client{cmds: raw, raw: raw}, nil
}

// buildOptions prefers a full URL; discrete config fields fill any option
// the URL leaves unset.
func buildOptions(cfg config.RedisConfig) (*redis.Options, error) {
	var opts *redis.Options
	switch {
	case cfg.URL != "":
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	case cfg.Address != "":
		opts = &redis.Options{Addr: cfg.Address, Password: cfg.Password}
	default:
		return nil, errors.New("redis url or address is required")
	}

	if opts.DB == 0 {
		opts.DB = cfg.DB
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.MinIdleConns == 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

// Get returns the string stored at key; redis.Nil when absent.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	if c == nil || c.cmds == nil {
		return "", errors.New("redis client not initialized")
	}
	return c.cmds.Get(ctx, key).Result()
}

// SetNX stores value only if the key does not exist yet.
func (c *Client) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	if c == nil || c.cmds == nil {
		return false, errors.New("redis client not initialized")
	}
	return c.cmds.SetNX(ctx, key, value, ttl).Result()
}

// IdempotencyKey returns the namespaced key for an idempotency record.
func (c *Client) IdempotencyKey(scope, id string) string {
	return fmt.Sprintf(idempotencyKeyFormat, scope, id)
}

// Ping verifies the connection.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.cmds == nil {
		return errors.New("redis client not initialized")
	}
	return c.cmds.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.raw == nil {
		return nil
	}
	return c.raw.Close()
}

package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/razorsharp/storefront-backend/pkg/config"
)

type mockCommands struct {
	data    map[string]string
	pingErr error
}

func newMockCommands() *mockCommands {
	return &mockCommands{data: map[string]string{}}
}

func (m *mockCommands) Ping(ctx context.Context) *redis.StatusCmd {
	if m.pingErr != nil {
		cmd := redis.NewStatusCmd(ctx)
		cmd.SetErr(m.pingErr)
		return cmd
	}
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCommands) Get(ctx context.Context, key string) *redis.StringCmd {
	val, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (m *mockCommands) SetNX(ctx context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd {
	if _, ok := m.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key], _ = value.(string)
	return redis.NewBoolResult(true, nil)
}

func TestClientSetNXFirstWriterWins(t *testing.T) {
	client := &Client{cmds: newMockCommands()}
	ctx := context.Background()

	ok, err := client.SetNX(ctx, "k", "first", time.Minute)
	if err != nil {
		t.Fatalf("SetNX: %v", err)
	}
	if !ok {
		t.Fatal("expected first SetNX to win")
	}

	ok, err = client.SetNX(ctx, "k", "second", time.Minute)
	if err != nil {
		t.Fatalf("SetNX: %v", err)
	}
	if ok {
		t.Fatal("expected second SetNX to lose")
	}

	val, err := client.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "first" {
		t.Fatalf("expected stored value %q, got %q", "first", val)
	}
}

func TestClientGetMiss(t *testing.T) {
	client := &Client{cmds: newMockCommands()}

	_, err := client.Get(context.Background(), "absent")
	if !errors.Is(err, redis.Nil) {
		t.Fatalf("expected redis.Nil for missing key, got %v", err)
	}
}

func TestClientPing(t *testing.T) {
	mock := newMockCommands()
	client := &Client{cmds: mock}

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	mock.pingErr = errors.New("connection refused")
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error")
	}
}

func TestClientNilSafety(t *testing.T) {
	var client *Client
	ctx := context.Background()

	if _, err := client.Get(ctx, "k"); err == nil {
		t.Fatal("expected error from nil client Get")
	}
	if _, err := client.SetNX(ctx, "k", "v", time.Minute); err == nil {
		t.Fatal("expected error from nil client SetNX")
	}
	if err := client.Ping(ctx); err == nil {
		t.Fatal("expected error from nil client Ping")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("Close on nil client: %v", err)
	}
}

func TestIdempotencyKey(t *testing.T) {
	client := &Client{}

	got := client.IdempotencyKey("scope", "id")
	if got != "sf:idempotency:scope:id" {
		t.Fatalf("unexpected key: %q", got)
	}
}

func TestBuildOptions(t *testing.T) {
	t.Run("url takes precedence", func(t *testing.T) {
		opts, err := buildOptions(config.RedisConfig{
			URL:     "redis://:secret@cache.internal:6380/3",
			Address: "ignored:6379",
		})
		if err != nil {
			t.Fatalf("buildOptions: %v", err)
		}
		if opts.Addr != "cache.internal:6380" {
			t.Fatalf("unexpected addr: %q", opts.Addr)
		}
		if opts.Password != "secret" {
			t.Fatalf("unexpected password: %q", opts.Password)
		}
		if opts.DB != 3 {
			t.Fatalf("unexpected db: %d", opts.DB)
		}
	})

	t.Run("address fallback fills tuning fields", func(t *testing.T) {
		opts, err := buildOptions(config.RedisConfig{
			Address:      "localhost:6379",
			PoolSize:     20,
			MinIdleConns: 4,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 4 * time.Second,
		})
		if err != nil {
			t.Fatalf("buildOptions: %v", err)
		}
		if opts.Addr != "localhost:6379" {
			t.Fatalf("unexpected addr: %q", opts.Addr)
		}
		if opts.PoolSize != 20 || opts.MinIdleConns != 4 {
			t.Fatalf("pool settings not applied: %+v", opts)
		}
		if opts.DialTimeout != 2*time.Second || opts.ReadTimeout != 3*time.Second || opts.WriteTimeout != 4*time.Second {
			t.Fatalf("timeouts not applied: %+v", opts)
		}
	})

	t.Run("invalid url", func(t *testing.T) {
		if _, err := buildOptions(config.RedisConfig{URL: "://bad"}); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("missing url and address", func(t *testing.T) {
		if _, err := buildOptions(config.RedisConfig{}); err == nil {
			t.Fatal("expected configuration error")
		}
	})
}

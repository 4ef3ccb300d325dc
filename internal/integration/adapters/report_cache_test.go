package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*redisReportCache, *miniredis.Miniredis) {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &redisReportCache{client: client}, server
}

func TestRedisReportCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		cache, _ := newTestCache(t)

		value, err := cache.Get(ctx, "report:missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if value != nil {
			t.Fatalf("expected nil on miss, got %q", value)
		}
	})

	t.Run("set then get round trips", func(t *testing.T) {
		cache, _ := newTestCache(t)

		if err := cache.Set(ctx, "report:abc", []byte(`{"totalHours":"4.5"}`), time.Minute); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		value, err := cache.Get(ctx, "report:abc")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if string(value) != `{"totalHours":"4.5"}` {
			t.Fatalf("unexpected value: %q", value)
		}
	})

	t.Run("entries expire after ttl", func(t *testing.T) {
		cache, server := newTestCache(t)

		if err := cache.Set(ctx, "report:ttl", []byte("x"), time.Minute); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		server.FastForward(2 * time.Minute)

		value, err := cache.Get(ctx, "report:ttl")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if value != nil {
			t.Fatal("expected entry to expire")
		}
	})

	t.Run("invalidate clears only report keys", func(t *testing.T) {
		cache, server := newTestCache(t)

		if err := cache.Set(ctx, "report:one", []byte("1"), time.Minute); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if err := cache.Set(ctx, "report:two", []byte("2"), time.Minute); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		server.Set("session:keep", "yes")

		if err := cache.Invalidate(ctx); err != nil {
			t.Fatalf("invalidate failed: %v", err)
		}

		for _, key := range []string{"report:one", "report:two"} {
			value, err := cache.Get(ctx, key)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if value != nil {
				t.Fatalf("expected %s to be gone", key)
			}
		}
		if !server.Exists("session:keep") {
			t.Fatal("invalidate touched unrelated keys")
		}
	})
}

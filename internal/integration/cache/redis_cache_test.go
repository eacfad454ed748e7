package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/smart-paisa/backend/internal/application/adapter"
)

func newTestCache(t *testing.T) (adapter.CalculationCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client), srv
}

func TestRedisCache(t *testing.T) {
	t.Run("set then get round trips", func(t *testing.T) {
		cache, _ := newTestCache(t)

		if err := cache.Set(context.Background(), "calc:emi:1", []byte(`{"x":1}`), time.Hour); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := cache.Get(context.Background(), "calc:emi:1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != `{"x":1}` {
			t.Errorf("expected stored payload, got %q", got)
		}
	})

	t.Run("missing key reports cache miss", func(t *testing.T) {
		cache, _ := newTestCache(t)

		_, err := cache.Get(context.Background(), "calc:none")
		if !errors.Is(err, adapter.ErrCacheMiss) {
			t.Errorf("expected ErrCacheMiss, got %v", err)
		}
	})

	t.Run("entry expires after ttl", func(t *testing.T) {
		cache, srv := newTestCache(t)

		if err := cache.Set(context.Background(), "calc:ttl", []byte("v"), time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		srv.FastForward(2 * time.Minute)

		_, err := cache.Get(context.Background(), "calc:ttl")
		if !errors.Is(err, adapter.ErrCacheMiss) {
			t.Errorf("expected ErrCacheMiss after expiry, got %v", err)
		}
	})
}

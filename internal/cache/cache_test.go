// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "careers:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestCareersCacheSetGet(t *testing.T) {
	client := testValkeyClient(t)
	cc := NewCareersCache(client, time.Minute)
	ctx := context.Background()

	if _, ok := cc.Get(ctx, "acme-robotics"); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	body := []byte(`{"id":"acme-robotics"}`)
	cc.Set(ctx, "acme-robotics", body)

	got, ok := cc.Get(ctx, "acme-robotics")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(got) != string(body) {
		t.Errorf("body: got %s", got)
	}
}

func TestCareersCacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	cc := NewCareersCache(client, time.Minute)
	ctx := context.Background()

	cc.Set(ctx, "acme-robotics", []byte("stale"))
	cc.Invalidate(ctx, "acme-robotics")

	if _, ok := cc.Get(ctx, "acme-robotics"); ok {
		t.Error("expected miss after invalidation")
	}
}

func TestDefaultTTLApplied(t *testing.T) {
	cc := NewCareersCache(nil, 0)
	if cc.ttl != DefaultCareersTTL {
		t.Errorf("ttl: got %v, want %v", cc.ttl, DefaultCareersTTL)
	}
}

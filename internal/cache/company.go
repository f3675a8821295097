// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// company.go provides a Valkey-backed cache for the public careers-page
// response. When a candidate requests a published page, the serialized
// response is stored so subsequent requests skip the four-table fetch and
// assembly entirely. Entries are invalidated when a recruiter saves or
// deletes the company.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// careersKeyPrefix is the Valkey key prefix for cached pages.
	careersKeyPrefix = "careers:"

	// DefaultCareersTTL is how long a rendered careers page stays cached.
	DefaultCareersTTL = 5 * time.Minute
)

// CareersCache manages cached public careers-page responses in Valkey.
type CareersCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCareersCache creates a careers-page cache backed by the given client.
func NewCareersCache(client *redis.Client, ttl time.Duration) *CareersCache {
	if ttl == 0 {
		ttl = DefaultCareersTTL
	}
	return &CareersCache{client: client, ttl: ttl}
}

// Get retrieves the cached response for a company slug.
func (cc *CareersCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	val, err := cc.client.Get(ctx, careersKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("careers cache get error", "slug", slug, "error", err)
		return nil, false
	}
	slog.Debug("careers cache hit", "slug", slug)
	return val, true
}

// Set stores the serialized response for a company slug with the
// configured TTL.
func (cc *CareersCache) Set(ctx context.Context, slug string, body []byte) {
	if err := cc.client.Set(ctx, careersKeyPrefix+slug, body, cc.ttl).Err(); err != nil {
		slog.Warn("careers cache set error", "slug", slug, "error", err)
	}
}

// Invalidate removes a company's cached page. Called after every save or
// delete so recruiters see their edits immediately.
func (cc *CareersCache) Invalidate(ctx context.Context, slug string) {
	if err := cc.client.Del(ctx, careersKeyPrefix+slug).Err(); err != nil {
		slog.Warn("careers cache invalidate error", "slug", slug, "error", err)
	}
	slog.Debug("careers cache invalidated", "slug", slug)
}

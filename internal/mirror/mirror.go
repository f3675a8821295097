// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mirror is the degraded-mode company store: a Redis-backed copy
// of the company list, written when the primary store rejects a write and
// read only when the primary cannot serve a read. It is a fallback, not a
// source of truth.
//
// The mirror is read-modify-write with no concurrency guard: two
// near-simultaneous writers race and the later write wins. Acceptable for
// a single-tenant-session fallback.
package mirror

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"talentpage/internal/models"
)

// companiesKey is the single Redis key holding the mirrored company list.
const companiesKey = "mirror:companies"

// Policy states which repository operations fall back to the mirror and
// on what error class. All current classes are "any primary-store error";
// the split exists so individual legs can be switched off.
type Policy struct {
	// SaveOnWriteError mirrors a company after a failed primary save.
	SaveOnWriteError bool
	// DeleteOnWriteError removes a company from the mirror after a
	// failed primary delete.
	DeleteOnWriteError bool
	// ReadWhenUnavailable serves GetBySlug from the mirror when both the
	// direct lookup and the list fallback have failed.
	ReadWhenUnavailable bool
}

// DefaultPolicy falls back on every leg.
func DefaultPolicy() Policy {
	return Policy{
		SaveOnWriteError:    true,
		DeleteOnWriteError:  true,
		ReadWhenUnavailable: true,
	}
}

// Store persists the mirrored company list in Redis as one JSON document.
type Store struct {
	client *redis.Client
}

// NewStore creates a mirror store backed by the given Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// List returns the mirrored companies. A missing key is an empty mirror,
// not an error.
func (s *Store) List(ctx context.Context) ([]models.Company, error) {
	raw, err := s.client.Get(ctx, companiesKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mirror get: %w", err)
	}

	var companies []models.Company
	if err := json.Unmarshal(raw, &companies); err != nil {
		return nil, fmt.Errorf("mirror decode: %w", err)
	}
	return companies, nil
}

// Get returns one mirrored company by public id, or nil.
func (s *Store) Get(ctx context.Context, id string) (*models.Company, error) {
	companies, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range companies {
		if companies[i].ID == id {
			return &companies[i], nil
		}
	}
	return nil, nil
}

// Replace writes a company into the mirror, replacing an existing entry
// with the same id or appending a new one.
func (s *Store) Replace(ctx context.Context, company models.Company) error {
	companies, err := s.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range companies {
		if companies[i].ID == company.ID {
			companies[i] = company
			replaced = true
			break
		}
	}
	if !replaced {
		companies = append(companies, company)
	}

	return s.write(ctx, companies)
}

// Remove drops a company from the mirror by public id. Removing an id the
// mirror never held is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	companies, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := companies[:0]
	for _, c := range companies {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return s.write(ctx, kept)
}

func (s *Store) write(ctx context.Context, companies []models.Company) error {
	raw, err := json.Marshal(companies)
	if err != nil {
		return fmt.Errorf("mirror encode: %w", err)
	}
	// No TTL: degraded-mode data must survive until the primary recovers.
	if err := s.client.Set(ctx, companiesKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("mirror set: %w", err)
	}
	return nil
}

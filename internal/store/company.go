// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// CompanyRow is one row of the companies table. Key is the internal
// surrogate key; Slug is the public identifier. Theme columns hold empty
// strings when the tenant never set them — fallbacks are applied at
// assembly time, never persisted.
type CompanyRow struct {
	Key             int64
	Slug            string
	Name            string
	PrimaryColor    string
	SecondaryColor  string
	LogoURL         string
	BannerURL       string
	CultureVideoURL string
}

// CompanyStore handles companies table access.
type CompanyStore struct {
	db *sql.DB
}

// NewCompanyStore creates a new CompanyStore with the given database connection.
func NewCompanyStore(db *sql.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

// List returns all company rows ordered by name.
func (s *CompanyStore) List(ctx context.Context) ([]CompanyRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, name, primary_color, secondary_color,
		       logo_url, banner_url, culture_video_url
		FROM companies
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var items []CompanyRow
	for rows.Next() {
		var c CompanyRow
		if err := rows.Scan(
			&c.Key, &c.Slug, &c.Name, &c.PrimaryColor, &c.SecondaryColor,
			&c.LogoURL, &c.BannerURL, &c.CultureVideoURL,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a company row by its public slug. Returns nil if not found.
func (s *CompanyStore) FindBySlug(ctx context.Context, slug string) (*CompanyRow, error) {
	c := &CompanyRow{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, slug, name, primary_color, secondary_color,
		       logo_url, banner_url, culture_video_url
		FROM companies WHERE slug = $1
	`, slug).Scan(
		&c.Key, &c.Slug, &c.Name, &c.PrimaryColor, &c.SecondaryColor,
		&c.LogoURL, &c.BannerURL, &c.CultureVideoURL,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find company by slug: %w", err)
	}
	return c, nil
}

// Insert creates a new company row and returns it with the generated key.
func (s *CompanyStore) Insert(ctx context.Context, c CompanyRow) (*CompanyRow, error) {
	result := &CompanyRow{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO companies (slug, name, primary_color, secondary_color,
		                       logo_url, banner_url, culture_video_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, slug, name, primary_color, secondary_color,
		          logo_url, banner_url, culture_video_url
	`, c.Slug, c.Name, c.PrimaryColor, c.SecondaryColor,
		c.LogoURL, c.BannerURL, c.CultureVideoURL,
	).Scan(
		&result.Key, &result.Slug, &result.Name, &result.PrimaryColor,
		&result.SecondaryColor, &result.LogoURL, &result.BannerURL,
		&result.CultureVideoURL,
	)
	if err != nil {
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return result, nil
}

// Update writes all scalar fields of an existing company row. There is no
// partial-field diffing: the current value of every field is written.
func (s *CompanyStore) Update(ctx context.Context, c CompanyRow) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE companies SET
			name = $1, primary_color = $2, secondary_color = $3,
			logo_url = $4, banner_url = $5, culture_video_url = $6,
			updated_at = NOW()
		WHERE id = $7
	`, c.Name, c.PrimaryColor, c.SecondaryColor,
		c.LogoURL, c.BannerURL, c.CultureVideoURL, c.Key,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete removes a company row by key. Sections, jobs, and the career page
// are removed by the store's ON DELETE CASCADE constraints.
func (s *CompanyStore) Delete(ctx context.Context, key int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, key)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

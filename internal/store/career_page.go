// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// CareerPageRow is one row of the career_pages table. A company has at
// most one: the table carries a unique constraint on company_id.
type CareerPageRow struct {
	CompanyKey     int64
	Published      bool
	SEOTitle       string
	SEODescription string
}

// CareerPageStore handles career_pages table access.
type CareerPageStore struct {
	db *sql.DB
}

// NewCareerPageStore creates a new CareerPageStore with the given database connection.
func NewCareerPageStore(db *sql.DB) *CareerPageStore {
	return &CareerPageStore{db: db}
}

// FindByCompany retrieves the publication record for one company.
// Returns nil if the company has never been published or unpublished.
func (s *CareerPageStore) FindByCompany(ctx context.Context, companyKey int64) (*CareerPageRow, error) {
	cp := &CareerPageRow{}
	err := s.db.QueryRowContext(ctx, `
		SELECT company_id, published, seo_title, seo_description
		FROM career_pages WHERE company_id = $1
	`, companyKey).Scan(&cp.CompanyKey, &cp.Published, &cp.SEOTitle, &cp.SEODescription)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find career page: %w", err)
	}
	return cp, nil
}

// ListByCompanies returns publication records for a set of companies in
// one query. Used by the bulk list path.
func (s *CareerPageStore) ListByCompanies(ctx context.Context, companyKeys []int64) ([]CareerPageRow, error) {
	if len(companyKeys) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT company_id, published, seo_title, seo_description
		FROM career_pages WHERE company_id = ANY($1)
	`, companyKeys)
	if err != nil {
		return nil, fmt.Errorf("list career pages: %w", err)
	}
	defer rows.Close()

	var items []CareerPageRow
	for rows.Next() {
		var cp CareerPageRow
		if err := rows.Scan(&cp.CompanyKey, &cp.Published, &cp.SEOTitle, &cp.SEODescription); err != nil {
			return nil, fmt.Errorf("scan career page: %w", err)
		}
		items = append(items, cp)
	}
	return items, rows.Err()
}

// Upsert writes the publication record for a company, creating it on
// first publish.
func (s *CareerPageStore) Upsert(ctx context.Context, cp CareerPageRow) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO career_pages (company_id, published, seo_title, seo_description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id) DO UPDATE SET
			published = EXCLUDED.published,
			seo_title = EXCLUDED.seo_title,
			seo_description = EXCLUDED.seo_description,
			updated_at = NOW()
	`, cp.CompanyKey, cp.Published, cp.SEOTitle, cp.SEODescription)
	if err != nil {
		return fmt.Errorf("upsert career page: %w", err)
	}
	return nil
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SectionRow is one row of the page_sections table. Content is the single
// encoded text payload produced by the payload package; OrderIndex is
// stored verbatim and not renormalized at read time. The visible flag is
// set true on insert and never read back.
type SectionRow struct {
	Key        int64
	CompanyKey int64
	Type       string
	Content    string
	OrderIndex int
}

// SectionStore handles page_sections table access.
type SectionStore struct {
	db *sql.DB
}

// NewSectionStore creates a new SectionStore with the given database connection.
func NewSectionStore(db *sql.DB) *SectionStore {
	return &SectionStore{db: db}
}

// ListByCompany returns all section rows for one company in store order.
func (s *SectionStore) ListByCompany(ctx context.Context, companyKey int64) ([]SectionRow, error) {
	return s.list(ctx, `
		SELECT id, company_id, type, content, order_index
		FROM page_sections
		WHERE company_id = $1
	`, companyKey)
}

// ListByCompanies returns section rows for a set of companies in one query.
// Used by the bulk list path to avoid N+1 fetches.
func (s *SectionStore) ListByCompanies(ctx context.Context, companyKeys []int64) ([]SectionRow, error) {
	if len(companyKeys) == 0 {
		return nil, nil
	}
	return s.list(ctx, `
		SELECT id, company_id, type, content, order_index
		FROM page_sections
		WHERE company_id = ANY($1)
	`, companyKeys)
}

func (s *SectionStore) list(ctx context.Context, query string, arg any) ([]SectionRow, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var items []SectionRow
	for rows.Next() {
		var sec SectionRow
		if err := rows.Scan(&sec.Key, &sec.CompanyKey, &sec.Type, &sec.Content, &sec.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		items = append(items, sec)
	}
	return items, rows.Err()
}

// Insert creates a new section row and returns it with the generated key.
// Rows are always inserted visible.
func (s *SectionStore) Insert(ctx context.Context, sec SectionRow) (*SectionRow, error) {
	result := &SectionRow{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO page_sections (company_id, type, content, order_index, visible)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, company_id, type, content, order_index
	`, sec.CompanyKey, sec.Type, sec.Content, sec.OrderIndex,
	).Scan(&result.Key, &result.CompanyKey, &result.Type, &result.Content, &result.OrderIndex)
	if err != nil {
		return nil, fmt.Errorf("insert section: %w", err)
	}
	return result, nil
}

// Update rewrites the payload and order of an existing section row.
func (s *SectionStore) Update(ctx context.Context, sec SectionRow) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE page_sections SET
			content = $1, order_index = $2, updated_at = NOW()
		WHERE id = $3
	`, sec.Content, sec.OrderIndex, sec.Key)
	if err != nil {
		return fmt.Errorf("update section: %w", err)
	}
	return nil
}

// Delete removes a section row by key.
func (s *SectionStore) Delete(ctx context.Context, key int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM page_sections WHERE id = $1`, key)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}

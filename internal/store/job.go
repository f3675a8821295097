// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// JobRow is one row of the jobs table. Requirements is newline-joined in
// a single text column; older rows may hold an empty string.
type JobRow struct {
	Key            int64
	CompanyKey     int64
	Title          string
	Location       string
	EmploymentType string
	Description    string
	Requirements   string
}

// JobStore handles jobs table access.
type JobStore struct {
	db *sql.DB
}

// NewJobStore creates a new JobStore with the given database connection.
func NewJobStore(db *sql.DB) *JobStore {
	return &JobStore{db: db}
}

const jobColumns = `id, company_id, title, location, employment_type, description, requirements`

// ListAll returns every job row across all companies. Feeds the
// cross-tenant "reuse an existing job" picker.
func (s *JobStore) ListAll(ctx context.Context) ([]JobRow, error) {
	return s.list(ctx, `SELECT `+jobColumns+` FROM jobs`)
}

// ListByCompany returns all job rows for one company.
func (s *JobStore) ListByCompany(ctx context.Context, companyKey int64) ([]JobRow, error) {
	return s.list(ctx, `SELECT `+jobColumns+` FROM jobs WHERE company_id = $1`, companyKey)
}

// ListByCompanies returns job rows for a set of companies in one query.
func (s *JobStore) ListByCompanies(ctx context.Context, companyKeys []int64) ([]JobRow, error) {
	if len(companyKeys) == 0 {
		return nil, nil
	}
	return s.list(ctx, `SELECT `+jobColumns+` FROM jobs WHERE company_id = ANY($1)`, companyKeys)
}

func (s *JobStore) list(ctx context.Context, query string, args ...any) ([]JobRow, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var items []JobRow
	for rows.Next() {
		var j JobRow
		if err := rows.Scan(
			&j.Key, &j.CompanyKey, &j.Title, &j.Location,
			&j.EmploymentType, &j.Description, &j.Requirements,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		items = append(items, j)
	}
	return items, rows.Err()
}

// FindByNaturalKey looks up a job by (company, title, location). Two
// postings sharing that triple are treated as the same job — this is the
// deduplication SaveJob relies on. Returns nil if not found.
func (s *JobStore) FindByNaturalKey(ctx context.Context, companyKey int64, title, location string) (*JobRow, error) {
	j := &JobRow{}
	err := s.db.QueryRowContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE company_id = $1 AND title = $2 AND location = $3
	`, companyKey, title, location).Scan(
		&j.Key, &j.CompanyKey, &j.Title, &j.Location,
		&j.EmploymentType, &j.Description, &j.Requirements,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find job by natural key: %w", err)
	}
	return j, nil
}

// Insert creates a new job row and returns it with the generated key.
func (s *JobStore) Insert(ctx context.Context, j JobRow) (*JobRow, error) {
	result := &JobRow{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO jobs (company_id, title, location, employment_type, description, requirements)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+jobColumns+`
	`, j.CompanyKey, j.Title, j.Location, j.EmploymentType, j.Description, j.Requirements,
	).Scan(
		&result.Key, &result.CompanyKey, &result.Title, &result.Location,
		&result.EmploymentType, &result.Description, &result.Requirements,
	)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return result, nil
}

// UpdateDetails rewrites the mutable fields of an existing job row. Title
// and location are the natural key and are never updated through this path.
func (s *JobStore) UpdateDetails(ctx context.Context, key int64, employmentType, description, requirements string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE jobs SET
			employment_type = $1, description = $2, requirements = $3,
			updated_at = NOW()
		WHERE id = $4
	`, employmentType, description, requirements, key)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// DeleteByCompany removes every job row for a company. Used by the
// wholesale-replace path.
func (s *JobStore) DeleteByCompany(ctx context.Context, companyKey int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE company_id = $1`, companyKey)
	if err != nil {
		return fmt.Errorf("delete jobs for company: %w", err)
	}
	return nil
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP surface: the public careers page
// and the token-protected admin API. Handlers speak JSON on both sides.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"talentpage/internal/models"
)

// companyRepo is the slice of the repository the handlers use. The
// repository absorbs storage failures, so none of these return errors.
type companyRepo interface {
	List(ctx context.Context) []models.Company
	GetBySlug(ctx context.Context, slug string) *models.Company
	Save(ctx context.Context, company models.Company)
	Delete(ctx context.Context, slug string)
	ListAllJobs(ctx context.Context) []models.Job
	SaveJob(ctx context.Context, job models.Job, companySlug string)
	ReplaceJobsForCompany(ctx context.Context, jobs []models.Job, companySlug string)
}

// pageCache caches rendered public careers pages. May be nil when
// Valkey is not configured.
type pageCache interface {
	Get(ctx context.Context, slug string) ([]byte, bool)
	Set(ctx context.Context, slug string, body []byte)
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// respondError writes a JSON error body with the given status.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

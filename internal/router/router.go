// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// TalentPage server. Public careers pages and the token-protected admin
// API get separate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"talentpage/internal/handlers"
	"talentpage/internal/middleware"
)

// Options carries the handler groups and auth material the router wires
// together.
type Options struct {
	Admin      *handlers.Admin
	Public     *handlers.Public
	AdminToken string
	TokenHash  string
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no auth, no rate limit.
	r.Get("/health", healthHandler)

	// Public careers pages.
	r.Get("/careers/{slug}", opts.Public.CareersPage)

	// Admin API — bearer token plus a per-IP rate limit that slows
	// token guessing.
	limiter := middleware.NewRateLimiter(120, time.Minute)
	r.Route("/admin", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Use(middleware.RequireToken(opts.AdminToken, opts.TokenHash))

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", opts.Admin.CompaniesList)
			r.Post("/", opts.Admin.CompanyCreate)
			r.Get("/{slug}", opts.Admin.CompanyGet)
			r.Put("/{slug}", opts.Admin.CompanyUpdate)
			r.Delete("/{slug}", opts.Admin.CompanyDelete)

			r.Post("/{slug}/jobs", opts.Admin.JobCreate)
			r.Put("/{slug}/jobs", opts.Admin.JobsReplace)
			r.Post("/{slug}/assets", opts.Admin.AssetUpload)
		})

		r.Get("/jobs", opts.Admin.JobsList)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentpage/internal/models"
	"talentpage/internal/slug"
)

// Admin groups the token-protected JSON API used by the page builder.
type Admin struct {
	repo    companyRepo
	storage assetStorage
}

// NewAdmin creates a new Admin handler group. storage may be nil if S3
// is not configured; asset uploads then return 503.
func NewAdmin(repo companyRepo, storage assetStorage) *Admin {
	return &Admin{repo: repo, storage: storage}
}

// CompaniesList serves GET /admin/companies.
func (a *Admin) CompaniesList(w http.ResponseWriter, r *http.Request) {
	companies := a.repo.List(r.Context())
	if companies == nil {
		companies = []models.Company{}
	}
	respondJSON(w, http.StatusOK, companies)
}

// createCompanyRequest is the body of POST /admin/companies. The slug is
// derived from the name; everything else starts empty.
type createCompanyRequest struct {
	Name  string       `json:"name"`
	Theme models.Theme `json:"theme"`
}

// CompanyCreate serves POST /admin/companies.
func (a *Admin) CompanyCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	company := models.Company{
		ID:    slug.ForCompany(req.Name),
		Name:  req.Name,
		Theme: req.Theme,
	}
	if msg := validateCompany(company); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	if existing := a.repo.GetBySlug(ctx, company.ID); existing != nil {
		respondError(w, http.StatusConflict, "a company with this name already exists")
		return
	}

	a.repo.Save(ctx, company)

	created := a.repo.GetBySlug(ctx, company.ID)
	if created == nil {
		respondError(w, http.StatusInternalServerError, "company could not be saved")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// CompanyGet serves GET /admin/companies/{slug}.
func (a *Admin) CompanyGet(w http.ResponseWriter, r *http.Request) {
	company := a.repo.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if company == nil {
		respondError(w, http.StatusNotFound, "company not found")
		return
	}
	respondJSON(w, http.StatusOK, company)
}

// CompanyUpdate serves PUT /admin/companies/{slug}. The body is the full
// aggregate; the page builder always sends the whole edited state.
func (a *Admin) CompanyUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if existing := a.repo.GetBySlug(ctx, slugParam); existing == nil {
		respondError(w, http.StatusNotFound, "company not found")
		return
	}

	var company models.Company
	if err := decodeJSON(r, &company); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	// The path, not the body, names the company being edited.
	company.ID = slugParam

	if msg := validateCompany(company); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	a.repo.Save(ctx, company)
	respondJSON(w, http.StatusOK, a.repo.GetBySlug(ctx, slugParam))
}

// CompanyDelete serves DELETE /admin/companies/{slug}.
func (a *Admin) CompanyDelete(w http.ResponseWriter, r *http.Request) {
	a.repo.Delete(r.Context(), chi.URLParam(r, "slug"))
	w.WriteHeader(http.StatusNoContent)
}

// JobsList serves GET /admin/jobs, the postings across all companies.
func (a *Admin) JobsList(w http.ResponseWriter, r *http.Request) {
	jobs := a.repo.ListAllJobs(r.Context())
	if jobs == nil {
		jobs = []models.Job{}
	}
	respondJSON(w, http.StatusOK, jobs)
}

// JobCreate serves POST /admin/companies/{slug}/jobs. A posting with the
// same title and location as an existing one updates it instead of
// creating a duplicate.
func (a *Admin) JobCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if existing := a.repo.GetBySlug(ctx, slugParam); existing == nil {
		respondError(w, http.StatusNotFound, "company not found")
		return
	}

	var job models.Job
	if err := decodeJSON(r, &job); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if job.Type == "" {
		job.Type = models.JobTypeFullTime
	}
	if msg := validateJob(job); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	job.ID = slug.NewDraftItemID("job")

	a.repo.SaveJob(ctx, job, slugParam)

	company := a.repo.GetBySlug(ctx, slugParam)
	if company == nil {
		respondError(w, http.StatusInternalServerError, "job could not be saved")
		return
	}
	respondJSON(w, http.StatusCreated, company.Jobs)
}

// JobsReplace serves PUT /admin/companies/{slug}/jobs, replacing the
// company's postings wholesale.
func (a *Admin) JobsReplace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if existing := a.repo.GetBySlug(ctx, slugParam); existing == nil {
		respondError(w, http.StatusNotFound, "company not found")
		return
	}

	var jobs []models.Job
	if err := decodeJSON(r, &jobs); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	for i := range jobs {
		if jobs[i].Type == "" {
			jobs[i].Type = models.JobTypeFullTime
		}
		if msg := validateJob(jobs[i]); msg != "" {
			respondError(w, http.StatusUnprocessableEntity, msg)
			return
		}
	}

	a.repo.ReplaceJobsForCompany(ctx, jobs, slugParam)

	company := a.repo.GetBySlug(ctx, slugParam)
	if company == nil {
		respondError(w, http.StatusInternalServerError, "jobs could not be saved")
		return
	}
	respondJSON(w, http.StatusOK, company.Jobs)
}

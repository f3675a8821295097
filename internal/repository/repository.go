// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package repository orchestrates the table stores, the mapper, and the
// degraded-mode mirror into the operations the handlers call. It is the
// failure boundary: no store error escapes upward. Reads degrade to empty
// results, writes degrade to the mirror, and every underlying cause is
// logged through the injected structured logger.
package repository

import (
	"context"
	"log/slog"

	"talentpage/internal/mapper"
	"talentpage/internal/mirror"
	"talentpage/internal/models"
	"talentpage/internal/store"
)

// Store access is declared as interfaces so the reconciliation rules can
// be exercised against in-memory fakes. The concrete implementations live
// in internal/store.

type companyStore interface {
	List(ctx context.Context) ([]store.CompanyRow, error)
	FindBySlug(ctx context.Context, slug string) (*store.CompanyRow, error)
	Insert(ctx context.Context, c store.CompanyRow) (*store.CompanyRow, error)
	Update(ctx context.Context, c store.CompanyRow) error
	Delete(ctx context.Context, key int64) error
}

type sectionStore interface {
	ListByCompany(ctx context.Context, companyKey int64) ([]store.SectionRow, error)
	ListByCompanies(ctx context.Context, companyKeys []int64) ([]store.SectionRow, error)
	Insert(ctx context.Context, sec store.SectionRow) (*store.SectionRow, error)
	Update(ctx context.Context, sec store.SectionRow) error
	Delete(ctx context.Context, key int64) error
}

type jobStore interface {
	ListAll(ctx context.Context) ([]store.JobRow, error)
	ListByCompany(ctx context.Context, companyKey int64) ([]store.JobRow, error)
	ListByCompanies(ctx context.Context, companyKeys []int64) ([]store.JobRow, error)
	FindByNaturalKey(ctx context.Context, companyKey int64, title, location string) (*store.JobRow, error)
	Insert(ctx context.Context, j store.JobRow) (*store.JobRow, error)
	UpdateDetails(ctx context.Context, key int64, employmentType, description, requirements string) error
	DeleteByCompany(ctx context.Context, companyKey int64) error
}

type careerPageStore interface {
	FindByCompany(ctx context.Context, companyKey int64) (*store.CareerPageRow, error)
	ListByCompanies(ctx context.Context, companyKeys []int64) ([]store.CareerPageRow, error)
	Upsert(ctx context.Context, cp store.CareerPageRow) error
}

type mirrorStore interface {
	List(ctx context.Context) ([]models.Company, error)
	Get(ctx context.Context, id string) (*models.Company, error)
	Replace(ctx context.Context, company models.Company) error
	Remove(ctx context.Context, id string) error
}

// invalidator drops a company's cached public page after a write. May be
// nil when no cache is wired.
type invalidator interface {
	Invalidate(ctx context.Context, slug string)
}

// CompanyRepository exposes the six aggregate operations plus the job
// helpers. All methods return values, never errors: an unreachable store
// yields empty or nil results and a logged cause.
type CompanyRepository struct {
	companies   companyStore
	sections    sectionStore
	jobs        jobStore
	careerPages careerPageStore
	mirror      mirrorStore
	policy      mirror.Policy
	cache       invalidator
	log         *slog.Logger
}

// New creates a CompanyRepository. mir and cache may be nil; logger nil
// falls back to slog.Default().
func New(
	companies companyStore,
	sections sectionStore,
	jobs jobStore,
	careerPages careerPageStore,
	mir mirrorStore,
	policy mirror.Policy,
	cache invalidator,
	logger *slog.Logger,
) *CompanyRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompanyRepository{
		companies:   companies,
		sections:    sections,
		jobs:        jobs,
		careerPages: careerPages,
		mirror:      mir,
		policy:      policy,
		cache:       cache,
		log:         logger,
	}
}

// List returns every company fully assembled. Children are fetched in
// three bulk queries, not per company. Any fetch error fails closed: an
// empty list, never partial data.
func (r *CompanyRepository) List(ctx context.Context) []models.Company {
	companyRows, err := r.companies.List(ctx)
	if err != nil {
		r.log.Error("list companies failed", "error", err)
		return []models.Company{}
	}
	if len(companyRows) == 0 {
		return []models.Company{}
	}

	keys := make([]int64, len(companyRows))
	for i, row := range companyRows {
		keys[i] = row.Key
	}

	sectionRows, err := r.sections.ListByCompanies(ctx, keys)
	if err != nil {
		r.log.Error("bulk section fetch failed", "error", err)
		return []models.Company{}
	}
	jobRows, err := r.jobs.ListByCompanies(ctx, keys)
	if err != nil {
		r.log.Error("bulk job fetch failed", "error", err)
		return []models.Company{}
	}
	pageRows, err := r.careerPages.ListByCompanies(ctx, keys)
	if err != nil {
		r.log.Error("bulk career page fetch failed", "error", err)
		return []models.Company{}
	}

	sectionsByCompany := make(map[int64][]store.SectionRow)
	for _, row := range sectionRows {
		sectionsByCompany[row.CompanyKey] = append(sectionsByCompany[row.CompanyKey], row)
	}
	jobsByCompany := make(map[int64][]store.JobRow)
	for _, row := range jobRows {
		jobsByCompany[row.CompanyKey] = append(jobsByCompany[row.CompanyKey], row)
	}
	pageByCompany := make(map[int64]store.CareerPageRow)
	for _, row := range pageRows {
		pageByCompany[row.CompanyKey] = row
	}

	companies := make([]models.Company, 0, len(companyRows))
	for _, row := range companyRows {
		var cp *store.CareerPageRow
		if page, ok := pageByCompany[row.Key]; ok {
			cp = &page
		}
		companies = append(companies, mapper.Assemble(row, sectionsByCompany[row.Key], jobsByCompany[row.Key], cp))
	}
	return companies
}

// GetBySlug returns one assembled company, or nil when no such slug
// exists. If the direct lookup path errors it falls back to scanning the
// full list, and as a last resort to the degraded-mode mirror.
func (r *CompanyRepository) GetBySlug(ctx context.Context, slug string) *models.Company {
	row, err := r.companies.FindBySlug(ctx, slug)
	if err != nil {
		r.log.Error("company lookup failed, scanning list", "slug", slug, "error", err)
		return r.getViaScan(ctx, slug)
	}
	if row == nil {
		return nil
	}

	// Child fetch errors degrade to empty children rather than failing the
	// whole read.
	sections, err := r.sections.ListByCompany(ctx, row.Key)
	if err != nil {
		r.log.Error("section fetch failed", "slug", slug, "error", err)
	}
	jobs, err := r.jobs.ListByCompany(ctx, row.Key)
	if err != nil {
		r.log.Error("job fetch failed", "slug", slug, "error", err)
	}
	page, err := r.careerPages.FindByCompany(ctx, row.Key)
	if err != nil {
		r.log.Error("career page fetch failed", "slug", slug, "error", err)
	}

	company := mapper.Assemble(*row, sections, jobs, page)
	return &company
}

// getViaScan is the fallback read path: filter the bulk list by id, then
// consult the mirror if the list path also came back empty.
func (r *CompanyRepository) getViaScan(ctx context.Context, slug string) *models.Company {
	for _, c := range r.List(ctx) {
		if c.ID == slug {
			return &c
		}
	}

	if r.mirror != nil && r.policy.ReadWhenUnavailable {
		c, err := r.mirror.Get(ctx, slug)
		if err != nil {
			r.log.Error("mirror read failed", "slug", slug, "error", err)
			return nil
		}
		if c != nil {
			r.log.Warn("serving company from degraded-mode mirror", "slug", slug)
		}
		return c
	}
	return nil
}

// Save persists an edited company aggregate. An existing company gets a
// full scalar update plus per-section upserts and reconciled deletes; an
// unknown slug gets a fresh company row with every section inserted as
// new. Section writes are sequential with no rollback: a failed write is
// logged and its siblings stand (at-most-partial-write). If the primary
// store rejects the save, the aggregate is written to the mirror instead.
func (r *CompanyRepository) Save(ctx context.Context, company models.Company) {
	defer r.invalidate(ctx, company.ID)

	existing, err := r.companies.FindBySlug(ctx, company.ID)
	if err != nil {
		r.log.Error("save: slug resolution failed", "slug", company.ID, "error", err)
		r.mirrorSave(ctx, company)
		return
	}

	if existing == nil {
		r.saveNew(ctx, company)
		return
	}
	r.saveExisting(ctx, company, existing.Key)
}

func (r *CompanyRepository) saveExisting(ctx context.Context, company models.Company, key int64) {
	// The currently persisted section keys drive delete reconciliation: a
	// section the editor removed must not reappear on reload. If the
	// listing fails we plan no deletes rather than guessing.
	var existingKeys []int64
	if rows, err := r.sections.ListByCompany(ctx, key); err != nil {
		r.log.Error("save: section listing failed, skipping delete reconciliation", "slug", company.ID, "error", err)
	} else {
		for _, row := range rows {
			existingKeys = append(existingKeys, row.Key)
		}
	}

	plan, err := mapper.Decompose(company, key, existingKeys)
	if err != nil {
		r.log.Error("save: decompose failed", "slug", company.ID, "error", err)
		r.mirrorSave(ctx, company)
		return
	}

	failed := false
	if err := r.companies.Update(ctx, plan.Company); err != nil {
		r.log.Error("save: company update failed", "slug", company.ID, "error", err)
		failed = true
	}

	for _, op := range plan.SectionOps {
		if op.Update {
			if err := r.sections.Update(ctx, op.Row); err != nil {
				r.log.Error("save: section update failed", "slug", company.ID, "section", op.Row.Key, "error", err)
				failed = true
			}
			continue
		}
		if _, err := r.sections.Insert(ctx, op.Row); err != nil {
			r.log.Error("save: section insert failed", "slug", company.ID, "error", err)
			failed = true
		}
	}

	for _, secKey := range plan.SectionDeletes {
		if err := r.sections.Delete(ctx, secKey); err != nil {
			r.log.Error("save: section delete failed", "slug", company.ID, "section", secKey, "error", err)
			failed = true
		}
	}

	if plan.CareerPage != nil {
		if err := r.careerPages.Upsert(ctx, *plan.CareerPage); err != nil {
			r.log.Error("save: career page upsert failed", "slug", company.ID, "error", err)
			failed = true
		}
	}

	if failed {
		r.mirrorSave(ctx, company)
	}
}

func (r *CompanyRepository) saveNew(ctx context.Context, company models.Company) {
	plan, err := mapper.Decompose(company, 0, nil)
	if err != nil {
		r.log.Error("save: decompose failed", "slug", company.ID, "error", err)
		r.mirrorSave(ctx, company)
		return
	}

	inserted, err := r.companies.Insert(ctx, plan.Company)
	if err != nil {
		r.log.Error("save: company insert failed", "slug", company.ID, "error", err)
		r.mirrorSave(ctx, company)
		return
	}

	failed := false
	for _, op := range plan.SectionOps {
		// A brand-new company owns none of the edited document's numeric
		// ids: every section is inserted fresh, no id reuse.
		row := op.Row
		row.Key = 0
		row.CompanyKey = inserted.Key
		if _, err := r.sections.Insert(ctx, row); err != nil {
			r.log.Error("save: section insert failed", "slug", company.ID, "error", err)
			failed = true
		}
	}

	if plan.CareerPage != nil {
		cp := *plan.CareerPage
		cp.CompanyKey = inserted.Key
		if err := r.careerPages.Upsert(ctx, cp); err != nil {
			r.log.Error("save: career page upsert failed", "slug", company.ID, "error", err)
			failed = true
		}
	}

	if failed {
		r.mirrorSave(ctx, company)
	}
}

// Delete removes a company; children go with it via the store's cascade.
// A failed remote delete falls back to removing the mirror entry so
// degraded-mode reads stop serving the company.
func (r *CompanyRepository) Delete(ctx context.Context, slug string) {
	defer r.invalidate(ctx, slug)

	row, err := r.companies.FindBySlug(ctx, slug)
	if err != nil {
		r.log.Error("delete: slug resolution failed", "slug", slug, "error", err)
		r.mirrorRemove(ctx, slug)
		return
	}
	if row == nil {
		return
	}

	if err := r.companies.Delete(ctx, row.Key); err != nil {
		r.log.Error("delete: company delete failed", "slug", slug, "error", err)
		r.mirrorRemove(ctx, slug)
	}
}

// ListAllJobs returns every job across all companies, for the
// cross-tenant "reuse an existing job" picker.
func (r *CompanyRepository) ListAllJobs(ctx context.Context) []models.Job {
	rows, err := r.jobs.ListAll(ctx)
	if err != nil {
		r.log.Error("list all jobs failed", "error", err)
		return []models.Job{}
	}

	jobs := make([]models.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, mapper.AssembleJob(row))
	}
	return jobs
}

// SaveJob upserts one job for a company, deduplicating on the
// (title, location) natural key: a second save with the same pair updates
// the existing row instead of creating a sibling.
func (r *CompanyRepository) SaveJob(ctx context.Context, job models.Job, companySlug string) {
	company, err := r.companies.FindBySlug(ctx, companySlug)
	if err != nil {
		r.log.Error("save job: slug resolution failed", "slug", companySlug, "error", err)
		return
	}
	if company == nil {
		r.log.Warn("save job: company not found", "slug", companySlug)
		return
	}

	existing, err := r.jobs.FindByNaturalKey(ctx, company.Key, job.Title, job.Location)
	if err != nil {
		r.log.Error("save job: natural key lookup failed", "slug", companySlug, "error", err)
		return
	}

	if existing != nil {
		err = r.jobs.UpdateDetails(ctx, existing.Key, string(job.Type), job.Description, mapper.JoinRequirements(job.Requirements))
	} else {
		_, err = r.jobs.Insert(ctx, mapper.DecomposeJob(job, company.Key))
	}
	if err != nil {
		r.log.Error("save job failed", "slug", companySlug, "title", job.Title, "error", err)
	}

	r.invalidate(ctx, companySlug)
}

// ReplaceJobsForCompany deletes every job row for the company and inserts
// the given list — a wholesale overwrite, not a merge.
func (r *CompanyRepository) ReplaceJobsForCompany(ctx context.Context, jobs []models.Job, companySlug string) {
	company, err := r.companies.FindBySlug(ctx, companySlug)
	if err != nil {
		r.log.Error("replace jobs: slug resolution failed", "slug", companySlug, "error", err)
		return
	}
	if company == nil {
		r.log.Warn("replace jobs: company not found", "slug", companySlug)
		return
	}

	if err := r.jobs.DeleteByCompany(ctx, company.Key); err != nil {
		r.log.Error("replace jobs: delete failed", "slug", companySlug, "error", err)
		return
	}

	for _, job := range jobs {
		if _, err := r.jobs.Insert(ctx, mapper.DecomposeJob(job, company.Key)); err != nil {
			r.log.Error("replace jobs: insert failed", "slug", companySlug, "title", job.Title, "error", err)
		}
	}

	r.invalidate(ctx, companySlug)
}

func (r *CompanyRepository) mirrorSave(ctx context.Context, company models.Company) {
	if r.mirror == nil || !r.policy.SaveOnWriteError {
		return
	}
	if err := r.mirror.Replace(ctx, company); err != nil {
		r.log.Error("mirror save failed", "slug", company.ID, "error", err)
		return
	}
	r.log.Warn("company saved to degraded-mode mirror", "slug", company.ID)
}

func (r *CompanyRepository) mirrorRemove(ctx context.Context, slug string) {
	if r.mirror == nil || !r.policy.DeleteOnWriteError {
		return
	}
	if err := r.mirror.Remove(ctx, slug); err != nil {
		r.log.Error("mirror remove failed", "slug", slug, "error", err)
		return
	}
	r.log.Warn("company removed from degraded-mode mirror", "slug", slug)
}

func (r *CompanyRepository) invalidate(ctx context.Context, slug string) {
	if r.cache != nil {
		r.cache.Invalidate(ctx, slug)
	}
}

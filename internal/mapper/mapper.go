// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mapper converts between the normalized store rows (companies,
// page_sections, jobs, career_pages) and the denormalized Company
// aggregate the editor works on. It is pure: no I/O, only row sets in and
// a write plan out. The repository executes the plan.
package mapper

import (
	"strconv"
	"strings"

	"talentpage/internal/models"
	"talentpage/internal/payload"
	"talentpage/internal/store"
)

// Assemble joins already-fetched rows into one Company document.
//
// Section payloads are decoded with the row's type as the fallback label;
// order comes from the row verbatim — callers sort, and must not assume
// contiguity until they re-save. Theme fallbacks are substituted here and
// never written back. CareerPage stays nil unless a row exists. Sections
// and jobs keep store-fetch order.
func Assemble(c store.CompanyRow, sections []store.SectionRow, jobs []store.JobRow, cp *store.CareerPageRow) models.Company {
	company := models.Company{
		ID:   c.Slug,
		Name: c.Name,
		Theme: models.Theme{
			PrimaryColor:    orDefault(c.PrimaryColor, models.DefaultPrimaryColor),
			SecondaryColor:  orDefault(c.SecondaryColor, models.DefaultSecondaryColor),
			LogoURL:         orDefault(c.LogoURL, models.DefaultImageURL),
			BannerURL:       orDefault(c.BannerURL, models.DefaultImageURL),
			CultureVideoURL: orDefault(c.CultureVideoURL, models.DefaultCultureVideoURL),
		},
		Sections: make([]models.ContentSection, 0, len(sections)),
		Jobs:     make([]models.Job, 0, len(jobs)),
	}

	for _, row := range sections {
		decoded := payload.Decode(row.Content, models.SectionType(row.Type))
		company.Sections = append(company.Sections, models.ContentSection{
			ID:      strconv.FormatInt(row.Key, 10),
			Type:    models.SectionType(row.Type),
			Title:   decoded.Title,
			Content: decoded.Content,
			Order:   row.OrderIndex,
		})
	}

	for _, row := range jobs {
		company.Jobs = append(company.Jobs, AssembleJob(row))
	}

	if cp != nil {
		company.CareerPage = &models.CareerPage{
			Published:      cp.Published,
			SEOTitle:       cp.SEOTitle,
			SEODescription: cp.SEODescription,
		}
	}

	return company
}

// AssembleJob maps one job row to the document shape.
func AssembleJob(row store.JobRow) models.Job {
	return models.Job{
		ID:           strconv.FormatInt(row.Key, 10),
		Title:        row.Title,
		Location:     row.Location,
		Type:         models.JobType(row.EmploymentType),
		Description:  row.Description,
		Requirements: SplitRequirements(row.Requirements),
	}
}

// SectionOp is one planned write against the page_sections table. Update
// targets Row.Key; an insert leaves Key zero and lets the store assign
// one (the client-side draft id is discarded, never persisted).
type SectionOp struct {
	Update bool
	Row    store.SectionRow
}

// Plan is the decomposition of an edited Company into per-table writes.
// The repository executes the section ops sequentially; a failed op is
// reported but does not roll back its siblings (at-most-partial-write).
type Plan struct {
	Company        store.CompanyRow
	SectionOps     []SectionOp
	SectionDeletes []int64
	CareerPage     *store.CareerPageRow
}

// Decompose turns an edited Company into a write plan against the store.
// companyKey is the store-assigned key resolved separately by slug lookup
// (zero means the company row does not exist yet). existingSectionKeys is
// the set of section keys currently persisted for this company; any key
// the edited document no longer references is planned as a delete, so a
// section removed in the editor stays removed after reload.
func Decompose(company models.Company, companyKey int64, existingSectionKeys []int64) (Plan, error) {
	// Theme values equal to the read-time fallback are stored as empty
	// columns: the fallback is re-derived on every assembly, never
	// persisted through a load-edit-save cycle.
	plan := Plan{
		Company: store.CompanyRow{
			Key:             companyKey,
			Slug:            company.ID,
			Name:            company.Name,
			PrimaryColor:    stripDefault(company.Theme.PrimaryColor, models.DefaultPrimaryColor),
			SecondaryColor:  stripDefault(company.Theme.SecondaryColor, models.DefaultSecondaryColor),
			LogoURL:         stripDefault(company.Theme.LogoURL, models.DefaultImageURL),
			BannerURL:       stripDefault(company.Theme.BannerURL, models.DefaultImageURL),
			CultureVideoURL: stripDefault(company.Theme.CultureVideoURL, models.DefaultCultureVideoURL),
		},
	}

	kept := make(map[int64]bool, len(company.Sections))
	for i := range company.Sections {
		sec := &company.Sections[i]

		encoded, err := payload.Encode(sec.Type, sec.Title, sec.Content)
		if err != nil {
			return Plan{}, err
		}

		row := store.SectionRow{
			CompanyKey: companyKey,
			Type:       string(sec.Type),
			Content:    encoded,
			OrderIndex: sec.Order,
		}

		if key, ok := sec.StoreKey(); ok {
			kept[key] = true
			row.Key = key
			plan.SectionOps = append(plan.SectionOps, SectionOp{Update: true, Row: row})
		} else {
			plan.SectionOps = append(plan.SectionOps, SectionOp{Row: row})
		}
	}

	for _, key := range existingSectionKeys {
		if !kept[key] {
			plan.SectionDeletes = append(plan.SectionDeletes, key)
		}
	}

	if company.CareerPage != nil {
		plan.CareerPage = &store.CareerPageRow{
			CompanyKey:     companyKey,
			Published:      company.CareerPage.Published,
			SEOTitle:       company.CareerPage.SEOTitle,
			SEODescription: company.CareerPage.SEODescription,
		}
	}

	return plan, nil
}

// DecomposeJob maps a document job to a row for the given company key.
func DecomposeJob(job models.Job, companyKey int64) store.JobRow {
	return store.JobRow{
		CompanyKey:     companyKey,
		Title:          job.Title,
		Location:       job.Location,
		EmploymentType: string(job.Type),
		Description:    job.Description,
		Requirements:   JoinRequirements(job.Requirements),
	}
}

// SplitRequirements expands the newline-joined requirements column into a
// list. An empty column yields an empty (non-nil) list.
func SplitRequirements(raw string) []string {
	items := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// JoinRequirements flattens a requirements list into the single text
// column, skipping blank entries.
func JoinRequirements(items []string) string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			kept = append(kept, item)
		}
	}
	return strings.Join(kept, "\n")
}

// orDefault substitutes the fallback when the stored value is empty.
func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

// stripDefault is orDefault's write-side inverse: a value identical to
// the fallback goes back to an empty column.
func stripDefault(v, fallback string) string {
	if v == fallback {
		return ""
	}
	return v
}

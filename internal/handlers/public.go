// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"talentpage/internal/markdown"
	"talentpage/internal/models"
)

// Public serves the public careers page. Responses are cached in Valkey
// and invalidated by the repository on every write to the company.
type Public struct {
	repo      companyRepo
	pageCache pageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil if
// Valkey is not configured.
func NewPublic(repo companyRepo, pageCache pageCache) *Public {
	return &Public{repo: repo, pageCache: pageCache}
}

// careersPage is the public view of a company, with section bodies
// rendered to HTML.
type careersPage struct {
	Company  string           `json:"company"`
	Theme    models.Theme     `json:"theme"`
	SEO      seoView          `json:"seo"`
	Sections []sectionView    `json:"sections"`
	Jobs     []models.Job     `json:"jobs"`
}

type seoView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type sectionView struct {
	ID    string             `json:"id"`
	Type  models.SectionType `json:"type"`
	Title string             `json:"title"`
	HTML  string             `json:"html,omitempty"`
	Items []string           `json:"items,omitempty"`
	Order int                `json:"order"`
}

// CareersPage serves GET /careers/{slug}. Only published companies are
// visible; everything else is a 404.
func (p *Public) CareersPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if p.pageCache != nil {
		if cached, ok := p.pageCache.Get(ctx, slugParam); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		}
	}

	company := p.repo.GetBySlug(ctx, slugParam)
	if company == nil || !company.IsPublished() {
		respondError(w, http.StatusNotFound, "careers page not found")
		return
	}

	page := buildCareersPage(company)

	body, err := json.Marshal(page)
	if err != nil {
		slog.Error("marshal careers page failed", "error", err, "slug", slugParam)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if p.pageCache != nil {
		p.pageCache.Set(ctx, slugParam, body)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// buildCareersPage projects a company aggregate into its public view.
// Sections are sorted by their order field; text bodies are rendered
// from Markdown.
func buildCareersPage(company *models.Company) careersPage {
	seo := seoView{Title: company.Name + " — Careers"}
	if company.CareerPage != nil {
		if company.CareerPage.SEOTitle != "" {
			seo.Title = company.CareerPage.SEOTitle
		}
		seo.Description = company.CareerPage.SEODescription
	}

	sections := make([]sectionView, 0, len(company.Sections))
	for _, sec := range company.Sections {
		view := sectionView{
			ID:    sec.ID,
			Type:  sec.Type,
			Title: sec.Title,
			Order: sec.Order,
		}
		if sec.Content.IsList() {
			view.Items = sec.Content.Items
		} else {
			html, err := markdown.ToHTML(sec.Content.Text)
			if err != nil {
				slog.Warn("section render failed", "error", err, "section", sec.ID)
				html = ""
			}
			view.HTML = html
		}
		sections = append(sections, view)
	}
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})

	jobs := company.Jobs
	if jobs == nil {
		jobs = []models.Job{}
	}

	return careersPage{
		Company:  company.Name,
		Theme:    company.Theme,
		SEO:      seo,
		Sections: sections,
		Jobs:     jobs,
	}
}

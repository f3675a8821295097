package handlers

import (
	"strings"
	"testing"

	"talentpage/internal/models"
)

func TestValidateCompany(t *testing.T) {
	valid := publishedCompany("acme")
	if msg := validateCompany(valid); msg != "" {
		t.Errorf("valid company rejected: %s", msg)
	}

	tests := []struct {
		name   string
		mutate func(*models.Company)
	}{
		{"empty name", func(c *models.Company) { c.Name = "   " }},
		{"long name", func(c *models.Company) { c.Name = strings.Repeat("x", maxNameLen+1) }},
		{"bad primary color", func(c *models.Company) { c.Theme.PrimaryColor = "blue" }},
		{"short hex", func(c *models.Company) { c.Theme.SecondaryColor = "#FFF" }},
		{"unknown section type", func(c *models.Company) { c.Sections[0].Type = "testimonials" }},
		{"long section title", func(c *models.Company) { c.Sections[0].Title = strings.Repeat("x", maxTitleLen+1) }},
		{"long section body", func(c *models.Company) {
			c.Sections[0].Content = models.TextContent(strings.Repeat("x", maxBodyLen+1))
		}},
		{"job without title", func(c *models.Company) { c.Jobs[0].Title = "" }},
		{"unknown job type", func(c *models.Company) { c.Jobs[0].Type = "Gig" }},
		{"long seo description", func(c *models.Company) {
			c.CareerPage.SEODescription = strings.Repeat("x", maxSEODescLen+1)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := publishedCompany("acme")
			tt.mutate(&c)
			if msg := validateCompany(c); msg == "" {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestValidateCompanyAllowsEmptyTheme(t *testing.T) {
	// Unset colors fall back at read time; they are not a client error.
	c := publishedCompany("acme")
	c.Theme = models.Theme{}
	if msg := validateCompany(c); msg != "" {
		t.Errorf("empty theme rejected: %s", msg)
	}
}

func TestValidateJobDefaults(t *testing.T) {
	job := models.Job{Title: "SRE"}
	// An empty type is allowed; handlers default it before saving.
	if msg := validateJob(job); msg != "" {
		t.Errorf("minimal job rejected: %s", msg)
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"talentpage/internal/models"
)

// Validation limits for company, section, and job fields.
const (
	maxNameLen        = 200
	maxTitleLen       = 300
	maxBodyLen        = 100_000
	maxListItems      = 100
	maxListItemLen    = 500
	maxSections       = 50
	maxJobs           = 200
	maxLocationLen    = 200
	maxURLLen         = 2_000
	maxSEOTitleLen    = 300
	maxSEODescLen     = 500
	maxRequirements   = 50
	maxRequirementLen = 500
)

// hexColor matches a six-digit hex color like #4F46E5.
var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateCompany checks a full company aggregate and returns the first
// error found, or "".
func validateCompany(c models.Company) string {
	if strings.TrimSpace(c.Name) == "" {
		return "Company name is required."
	}
	if utf8.RuneCountInString(c.Name) > maxNameLen {
		return "Company name is too long (max 200 characters)."
	}
	if msg := validateTheme(c.Theme); msg != "" {
		return msg
	}
	if len(c.Sections) > maxSections {
		return "Too many sections (max 50)."
	}
	for i, sec := range c.Sections {
		if msg := validateSection(sec); msg != "" {
			return fmt.Sprintf("Section %d: %s", i+1, msg)
		}
	}
	if len(c.Jobs) > maxJobs {
		return "Too many jobs (max 200)."
	}
	for i, job := range c.Jobs {
		if msg := validateJob(job); msg != "" {
			return fmt.Sprintf("Job %d: %s", i+1, msg)
		}
	}
	if cp := c.CareerPage; cp != nil {
		if utf8.RuneCountInString(cp.SEOTitle) > maxSEOTitleLen {
			return "SEO title is too long (max 300 characters)."
		}
		if utf8.RuneCountInString(cp.SEODescription) > maxSEODescLen {
			return "SEO description is too long (max 500 characters)."
		}
	}
	return ""
}

func validateTheme(theme models.Theme) string {
	for _, color := range []string{theme.PrimaryColor, theme.SecondaryColor} {
		if color != "" && !hexColor.MatchString(color) {
			return "Theme colors must be six-digit hex values like #4F46E5."
		}
	}
	for _, u := range []string{theme.LogoURL, theme.BannerURL, theme.CultureVideoURL} {
		if utf8.RuneCountInString(u) > maxURLLen {
			return "Theme URL is too long (max 2,000 characters)."
		}
	}
	return ""
}

func validateSection(sec models.ContentSection) string {
	if !sec.Type.Valid() {
		return fmt.Sprintf("unknown section type %q.", sec.Type)
	}
	if utf8.RuneCountInString(sec.Title) > maxTitleLen {
		return "title is too long (max 300 characters)."
	}
	if sec.Content.IsList() {
		if len(sec.Content.Items) > maxListItems {
			return "too many list items (max 100)."
		}
		for _, item := range sec.Content.Items {
			if utf8.RuneCountInString(item) > maxListItemLen {
				return "list item is too long (max 500 characters)."
			}
		}
		return ""
	}
	if utf8.RuneCountInString(sec.Content.Text) > maxBodyLen {
		return "body is too long (max 100,000 characters)."
	}
	return ""
}

func validateJob(job models.Job) string {
	if strings.TrimSpace(job.Title) == "" {
		return "title is required."
	}
	if utf8.RuneCountInString(job.Title) > maxTitleLen {
		return "title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(job.Location) > maxLocationLen {
		return "location is too long (max 200 characters)."
	}
	if job.Type != "" && !job.Type.Valid() {
		return fmt.Sprintf("unknown employment type %q.", job.Type)
	}
	if utf8.RuneCountInString(job.Description) > maxBodyLen {
		return "description is too long (max 100,000 characters)."
	}
	if len(job.Requirements) > maxRequirements {
		return "too many requirements (max 50)."
	}
	for _, req := range job.Requirements {
		if utf8.RuneCountInString(req) > maxRequirementLen {
			return "requirement is too long (max 500 characters)."
		}
	}
	return ""
}

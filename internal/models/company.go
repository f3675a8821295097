// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Theme fallbacks applied when a company row has no persisted value.
// They are substituted at assembly time and never written back, so a
// company that has only defaults keeps empty columns in the store.
const (
	DefaultPrimaryColor    = "#4F46E5"
	DefaultSecondaryColor  = "#111827"
	DefaultImageURL        = "https://placehold.co/1200x400"
	DefaultCultureVideoURL = "https://www.youtube.com/embed/dQw4w9WgXcQ"
)

// Theme holds the branding values rendered on a company's careers page.
// Every field is independently defaultable.
type Theme struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	LogoURL         string `json:"logoUrl"`
	BannerURL       string `json:"bannerUrl"`
	CultureVideoURL string `json:"cultureVideoUrl"`
}

// CareerPage holds publication metadata for a company's public page.
// A company without a career_pages row has none (nil, not zero-valued).
type CareerPage struct {
	Published      bool   `json:"published"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}

// Company is the denormalized aggregate edited as one unit. ID is the
// public slug, not the internal store key; the store key never leaves
// the repository layer.
type Company struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Theme    Theme            `json:"theme"`
	Sections []ContentSection `json:"sections"`
	Jobs     []Job            `json:"jobs"`
	// CareerPage is present only if a publication record exists.
	CareerPage *CareerPage `json:"careerPage,omitempty"`
}

// IsPublished returns true if the company has a published careers page.
func (c *Company) IsPublished() bool {
	return c.CareerPage != nil && c.CareerPage.Published
}

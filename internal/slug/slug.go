// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation plus the draft
// identifiers used by the careers editor before a record is persisted.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Acme Robotics, Inc." → "acme-robotics-inc"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// ForCompany derives a company slug from its display name, falling back to
// a timestamp-based slug when the name slugifies to nothing (all symbols,
// empty, etc.). A company slug is never empty.
func ForCompany(name string) string {
	if s := Generate(name); s != "" {
		return s
	}
	return fmt.Sprintf("company-%d", time.Now().UnixMilli())
}

// NewDraftCompanyID mints the transient id a company carries while still
// in the editor's draft state, before its name is set and a real slug is
// derived.
func NewDraftCompanyID() string {
	return fmt.Sprintf("new-company-%d", time.Now().UnixMilli())
}

// NewDraftItemID mints a client-side id for a section or job that has no
// store row yet. Draft ids are deliberately non-numeric: the mapper
// classifies "insert vs update" purely by whether an id parses as a
// positive integer.
func NewDraftItemID(kind string) string {
	return fmt.Sprintf("%s-%s", kind, uuid.NewString())
}

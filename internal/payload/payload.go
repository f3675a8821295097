// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package payload encodes structured section content into the single text
// column the store persists, and decodes it back. Decoding absorbs
// malformed payloads instead of failing: rows written by older builds (or
// by hand) must still render.
package payload

import (
	"encoding/json"
	"fmt"
	"strings"

	"talentpage/internal/models"
)

// envelope is the persisted JSON shape. Text sections use Body, benefits
// sections use Items. Body is a pointer so an empty body survives a round
// trip without being mistaken for an absent one.
type envelope struct {
	Title string   `json:"title"`
	Body  *string  `json:"body,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Decoded is the structured result of decoding a stored payload.
type Decoded struct {
	Title   string
	Content models.SectionContent
}

// Encode serializes a section's title and content for storage. Benefits
// sections persist an items list; all other types persist a body string.
// Encode does not validate that the content shape matches the type — the
// caller owns that contract.
func Encode(sectionType models.SectionType, title string, content models.SectionContent) (string, error) {
	env := envelope{Title: title}
	if sectionType == models.SectionTypeBenefits {
		items := content.Items
		if items == nil {
			// A text-shaped edit arrived for a benefits section.
			items = splitLines(content.Text)
		}
		env.Items = items
	} else {
		body := content.AsText()
		env.Body = &body
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("encode section payload: %w", err)
	}
	return string(raw), nil
}

// Decode parses a stored payload. On parse failure the raw text is kept as
// the body and the section type stands in for the title; nothing is ever
// dropped and Decode never fails.
//
// For benefits sections an items list is preferred, then a body split on
// line breaks, then an empty list. For other types the body is preferred,
// then the raw payload.
func Decode(raw string, fallbackType models.SectionType) Decoded {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return Decoded{
			Title:   string(fallbackType),
			Content: models.TextContent(raw),
		}
	}

	title := env.Title
	if title == "" {
		title = string(fallbackType)
	}

	if fallbackType == models.SectionTypeBenefits {
		items := env.Items
		if items == nil {
			body := ""
			if env.Body != nil {
				body = *env.Body
			}
			items = splitLines(body)
		}
		return Decoded{Title: title, Content: models.ListContent(items)}
	}

	if env.Body != nil {
		return Decoded{Title: title, Content: models.TextContent(*env.Body)}
	}
	if env.Items != nil {
		// A benefits-shaped payload under a text type: flatten the list.
		return Decoded{Title: title, Content: models.TextContent(strings.Join(env.Items, "\n"))}
	}
	return Decoded{Title: title, Content: models.TextContent(raw)}
}

// splitLines breaks a body string into list items, dropping blank lines.
// An empty body yields an empty (non-nil) list.
func splitLines(body string) []string {
	items := []string{}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

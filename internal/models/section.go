// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strconv"
	"strings"
)

// SectionType identifies the kind of content a page section carries.
type SectionType string

const (
	SectionTypeAbout    SectionType = "about"
	SectionTypeLife     SectionType = "life"
	SectionTypeBenefits SectionType = "benefits"
	SectionTypeCustom   SectionType = "custom"
)

// Valid reports whether t is one of the known section types.
func (t SectionType) Valid() bool {
	switch t {
	case SectionTypeAbout, SectionTypeLife, SectionTypeBenefits, SectionTypeCustom:
		return true
	}
	return false
}

// SectionContent is a tagged variant over free text and an ordered list.
// Benefits sections carry Items; every other type carries Text. The zero
// value is empty text.
type SectionContent struct {
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

// TextContent wraps a free-text body.
func TextContent(s string) SectionContent {
	return SectionContent{Text: s}
}

// ListContent wraps an ordered list of items.
func ListContent(items []string) SectionContent {
	return SectionContent{Items: items}
}

// IsList reports whether the content carries a list rather than text.
func (c SectionContent) IsList() bool {
	return c.Items != nil
}

// AsText flattens the content to a single string, joining list items
// with newlines. Used when a list-shaped edit arrives for a text section.
func (c SectionContent) AsText() string {
	if c.Items != nil {
		return strings.Join(c.Items, "\n")
	}
	return c.Text
}

// ContentSection is one ordered block on a careers page. ID is either the
// store row key rendered as a decimal string (persisted) or a client-minted
// non-numeric draft id (not yet persisted). The id shape is the only signal
// the mapper uses to split updates from inserts.
type ContentSection struct {
	ID      string         `json:"id"`
	Type    SectionType    `json:"type"`
	Title   string         `json:"title"`
	Content SectionContent `json:"content"`
	Order   int            `json:"order"`
}

// StoreKey returns the numeric store key encoded in the section id, or
// (0, false) for draft ids.
func (s *ContentSection) StoreKey() (int64, bool) {
	key, err := strconv.ParseInt(s.ID, 10, 64)
	if err != nil || key <= 0 {
		return 0, false
	}
	return key, true
}

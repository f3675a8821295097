// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// JobType is the employment type tag on a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

// Valid reports whether t is one of the known employment types.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// Job is a posting on a company's careers page. ID is the store row key
// as a decimal string when persisted, or a client draft id before that.
// (Title, Location) acts as the natural key within a company: SaveJob
// treats two postings with the same pair as the same job.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Type         JobType  `json:"type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

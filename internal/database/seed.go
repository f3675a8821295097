package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with a demo company so a fresh development
// environment has something to render. It is a no-op when any company
// already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM companies").Scan(&count); err != nil {
		return fmt.Errorf("seed check companies: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	var companyID int64
	err := db.QueryRow(`
		INSERT INTO companies (slug, name, primary_color, secondary_color)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, "acme-robotics", "Acme Robotics", "#4F46E5", "#111827").Scan(&companyID)
	if err != nil {
		return fmt.Errorf("seed insert company: %w", err)
	}

	sections := []struct {
		sectionType string
		content     string
		order       int
	}{
		{"about", `{"title":"About Us","body":"Acme Robotics builds friendly warehouse robots."}`, 0},
		{"life", `{"title":"Life at Acme","body":"Small teams, big autonomy, robots everywhere."}`, 1},
		{"benefits", `{"title":"Benefits","items":["Health insurance","Remote fridays","Learning budget"]}`, 2},
	}
	for _, s := range sections {
		_, err := db.Exec(`
			INSERT INTO page_sections (company_id, type, content, order_index, visible)
			VALUES ($1, $2, $3, $4, TRUE)
		`, companyID, s.sectionType, s.content, s.order)
		if err != nil {
			return fmt.Errorf("seed insert section: %w", err)
		}
	}

	_, err = db.Exec(`
		INSERT INTO jobs (company_id, title, location, employment_type, description, requirements)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, companyID, "Senior Go Engineer", "Remote (EU)", "Full-time",
		"Own the services that keep our robots honest.", "Go\nPostgreSQL\n3+ years backend experience")
	if err != nil {
		return fmt.Errorf("seed insert job: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO career_pages (company_id, published, seo_title, seo_description)
		VALUES ($1, TRUE, $2, $3)
	`, companyID, "Careers at Acme Robotics", "Join the team teaching robots good manners.")
	if err != nil {
		return fmt.Errorf("seed insert career page: %w", err)
	}

	slog.Info("database seeded with demo company", "slug", "acme-robotics")
	return nil
}

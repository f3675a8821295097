package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestCompanyStoreInsertAndFind(t *testing.T) {
	db := testDB(t)
	s := NewCompanyStore(db)
	ctx := context.Background()

	slug := "test-company-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanCompanies(t, db, slug) })

	created, err := s.Insert(ctx, CompanyRow{
		Slug:         slug,
		Name:         "Test Co",
		PrimaryColor: "#FF0000",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if created.Key == 0 {
		t.Error("expected a generated key")
	}

	found, err := s.FindBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil {
		t.Fatal("expected company, got nil")
	}
	if found.Name != "Test Co" || found.PrimaryColor != "#FF0000" {
		t.Errorf("row: %+v", found)
	}
	// Unset theme columns come back as empty strings, not NULL scan errors.
	if found.LogoURL != "" || found.CultureVideoURL != "" {
		t.Errorf("expected empty theme columns: %+v", found)
	}
}

func TestCompanyStoreFindBySlugNotFound(t *testing.T) {
	db := testDB(t)
	s := NewCompanyStore(db)

	found, err := s.FindBySlug(context.Background(), "nonexistent-slug-xyz")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for unknown slug, got %+v", found)
	}
}

func TestCompanyStoreUpdateWritesAllScalars(t *testing.T) {
	db := testDB(t)
	s := NewCompanyStore(db)
	ctx := context.Background()

	slug := "test-update-" + uuid.NewString()[:8]
	key := insertTestCompany(t, db, slug)

	err := s.Update(ctx, CompanyRow{
		Key:             key,
		Name:            "Renamed",
		PrimaryColor:    "#123456",
		SecondaryColor:  "#654321",
		LogoURL:         "https://cdn.example.com/logo.png",
		BannerURL:       "https://cdn.example.com/banner.png",
		CultureVideoURL: "https://video.example.com/v",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := s.FindBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found.Name != "Renamed" || found.BannerURL != "https://cdn.example.com/banner.png" {
		t.Errorf("update incomplete: %+v", found)
	}
}

func TestCompanyStoreDeleteCascades(t *testing.T) {
	db := testDB(t)
	companies := NewCompanyStore(db)
	sections := NewSectionStore(db)
	jobs := NewJobStore(db)
	pages := NewCareerPageStore(db)
	ctx := context.Background()

	slug := "test-cascade-" + uuid.NewString()[:8]
	key := insertTestCompany(t, db, slug)

	if _, err := sections.Insert(ctx, SectionRow{CompanyKey: key, Type: "about", Content: "{}"}); err != nil {
		t.Fatalf("insert section: %v", err)
	}
	if _, err := jobs.Insert(ctx, JobRow{CompanyKey: key, Title: "T", Location: "L", EmploymentType: "Full-time"}); err != nil {
		t.Fatalf("insert job: %v", err)
	}
	if err := pages.Upsert(ctx, CareerPageRow{CompanyKey: key, Published: true}); err != nil {
		t.Fatalf("upsert career page: %v", err)
	}

	if err := companies.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	secs, err := sections.ListByCompany(ctx, key)
	if err != nil {
		t.Fatalf("ListByCompany: %v", err)
	}
	if len(secs) != 0 {
		t.Errorf("sections survived cascade: %d", len(secs))
	}
	jrows, err := jobs.ListByCompany(ctx, key)
	if err != nil {
		t.Fatalf("jobs ListByCompany: %v", err)
	}
	if len(jrows) != 0 {
		t.Errorf("jobs survived cascade: %d", len(jrows))
	}
	cp, err := pages.FindByCompany(ctx, key)
	if err != nil {
		t.Fatalf("FindByCompany: %v", err)
	}
	if cp != nil {
		t.Error("career page survived cascade")
	}
}

package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestCareerPageStoreUpsert(t *testing.T) {
	db := testDB(t)
	s := NewCareerPageStore(db)
	ctx := context.Background()

	slug := "test-cp-" + uuid.NewString()[:8]
	key := insertTestCompany(t, db, slug)

	// No record until first publish.
	cp, err := s.FindByCompany(ctx, key)
	if err != nil {
		t.Fatalf("FindByCompany: %v", err)
	}
	if cp != nil {
		t.Fatalf("expected nil before upsert, got %+v", cp)
	}

	if err := s.Upsert(ctx, CareerPageRow{CompanyKey: key, Published: true, SEOTitle: "Careers"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	// Second upsert updates in place — the unique constraint on
	// company_id guarantees at most one row.
	if err := s.Upsert(ctx, CareerPageRow{CompanyKey: key, Published: false, SEOTitle: "Hiring paused"}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	cp, err = s.FindByCompany(ctx, key)
	if err != nil {
		t.Fatalf("FindByCompany: %v", err)
	}
	if cp == nil {
		t.Fatal("expected record after upsert")
	}
	if cp.Published || cp.SEOTitle != "Hiring paused" {
		t.Errorf("upsert did not update: %+v", cp)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM career_pages WHERE company_id = $1", key).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row, got %d", n)
	}
}

package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentpage/internal/handlers"
	"talentpage/internal/models"
)

// emptyRepo satisfies the handlers' repository surface with no data.
type emptyRepo struct{}

func (emptyRepo) List(ctx context.Context) []models.Company                 { return nil }
func (emptyRepo) GetBySlug(ctx context.Context, slug string) *models.Company { return nil }
func (emptyRepo) Save(ctx context.Context, company models.Company)          {}
func (emptyRepo) Delete(ctx context.Context, slug string)                   {}
func (emptyRepo) ListAllJobs(ctx context.Context) []models.Job              { return nil }
func (emptyRepo) SaveJob(ctx context.Context, job models.Job, companySlug string) {}
func (emptyRepo) ReplaceJobsForCompany(ctx context.Context, jobs []models.Job, companySlug string) {
}

func testMux() http.Handler {
	return New(Options{
		Admin:      handlers.NewAdmin(emptyRepo{}, nil),
		Public:     handlers.NewPublic(emptyRepo{}, nil),
		AdminToken: "secret",
	})
}

func TestHealthEndpoint(t *testing.T) {
	rr := httptest.NewRecorder()
	testMux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("got status %d, want 200", rr.Code)
	}
	if rr.Body.String() != `{"status":"ok"}` {
		t.Errorf("got body %q", rr.Body.String())
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	mux := testMux()

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/companies", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("no token: got %d, want 401", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/companies", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("valid token: got %d, want 200", rr.Code)
	}
}

func TestPublicRouteNeedsNoToken(t *testing.T) {
	rr := httptest.NewRecorder()
	testMux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/careers/ghost", nil))

	// Unknown company is a 404, not a 401 — no auth on public pages.
	if rr.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", rr.Code)
	}
}

func TestSecureHeadersApplied(t *testing.T) {
	rr := httptest.NewRecorder()
	testMux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q", got)
	}
}

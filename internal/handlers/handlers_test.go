// handlers_test.go provides shared fakes for handler tests: an
// in-memory repository, page cache, and asset storage.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentpage/internal/models"
)

var errUploadFailed = errors.New("upload failed")

// fakeRepo is an in-memory companyRepo. Writes land in the map so a
// handler's read-after-save sees them, mirroring the real repository.
type fakeRepo struct {
	companies map[string]models.Company
	allJobs   []models.Job
	deleted   []string
	saved     []models.Company
}

func newFakeRepo(companies ...models.Company) *fakeRepo {
	r := &fakeRepo{companies: make(map[string]models.Company)}
	for _, c := range companies {
		r.companies[c.ID] = c
	}
	return r
}

func (r *fakeRepo) List(ctx context.Context) []models.Company {
	var out []models.Company
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out
}

func (r *fakeRepo) GetBySlug(ctx context.Context, slug string) *models.Company {
	c, ok := r.companies[slug]
	if !ok {
		return nil
	}
	return &c
}

func (r *fakeRepo) Save(ctx context.Context, company models.Company) {
	r.saved = append(r.saved, company)
	r.companies[company.ID] = company
}

func (r *fakeRepo) Delete(ctx context.Context, slug string) {
	r.deleted = append(r.deleted, slug)
	delete(r.companies, slug)
}

func (r *fakeRepo) ListAllJobs(ctx context.Context) []models.Job {
	return r.allJobs
}

func (r *fakeRepo) SaveJob(ctx context.Context, job models.Job, companySlug string) {
	c, ok := r.companies[companySlug]
	if !ok {
		return
	}
	for i, existing := range c.Jobs {
		if existing.Title == job.Title && existing.Location == job.Location {
			job.ID = existing.ID
			c.Jobs[i] = job
			r.companies[companySlug] = c
			return
		}
	}
	c.Jobs = append(c.Jobs, job)
	r.companies[companySlug] = c
}

func (r *fakeRepo) ReplaceJobsForCompany(ctx context.Context, jobs []models.Job, companySlug string) {
	c, ok := r.companies[companySlug]
	if !ok {
		return
	}
	c.Jobs = jobs
	r.companies[companySlug] = c
}

// fakeCache is an in-memory pageCache.
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	body, ok := c.entries[slug]
	return body, ok
}

func (c *fakeCache) Set(ctx context.Context, slug string, body []byte) {
	c.entries[slug] = body
}

// fakeStorage records uploads and deletes.
type fakeStorage struct {
	uploads   []string
	deletes   []string
	uploadErr error
}

func (s *fakeStorage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.uploads = append(s.uploads, key)
	return nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error {
	s.deletes = append(s.deletes, key)
	return nil
}

func (s *fakeStorage) FileURL(key string) string {
	return "https://cdn.test/" + key
}

func (s *fakeStorage) ExtractKey(rawURL string) (string, bool) {
	const prefix = "https://cdn.test/"
	if len(rawURL) > len(prefix) && rawURL[:len(prefix)] == prefix {
		return rawURL[len(prefix):], true
	}
	return "", false
}

// testRouter mounts the handlers the way the real router does, so URL
// params resolve in tests.
func testRouter(admin *Admin, public *Public) http.Handler {
	r := chi.NewRouter()
	if public != nil {
		r.Get("/careers/{slug}", public.CareersPage)
	}
	if admin != nil {
		r.Get("/admin/companies", admin.CompaniesList)
		r.Post("/admin/companies", admin.CompanyCreate)
		r.Get("/admin/companies/{slug}", admin.CompanyGet)
		r.Put("/admin/companies/{slug}", admin.CompanyUpdate)
		r.Delete("/admin/companies/{slug}", admin.CompanyDelete)
		r.Get("/admin/jobs", admin.JobsList)
		r.Post("/admin/companies/{slug}/jobs", admin.JobCreate)
		r.Put("/admin/companies/{slug}/jobs", admin.JobsReplace)
		r.Post("/admin/companies/{slug}/assets", admin.AssetUpload)
	}
	return r
}

// publishedCompany returns a company fixture with a published page.
func publishedCompany(slug string) models.Company {
	return models.Company{
		ID:   slug,
		Name: "Acme Robotics",
		Theme: models.Theme{
			PrimaryColor:   "#4F46E5",
			SecondaryColor: "#111827",
		},
		Sections: []models.ContentSection{
			{ID: "2", Type: models.SectionTypeLife, Title: "Life at Acme", Content: models.TextContent("We ship **fast**."), Order: 1},
			{ID: "1", Type: models.SectionTypeAbout, Title: "About", Content: models.TextContent("Robots."), Order: 0},
			{ID: "3", Type: models.SectionTypeBenefits, Title: "Benefits", Content: models.ListContent([]string{"Health", "Equity"}), Order: 2},
		},
		Jobs: []models.Job{
			{ID: "10", Title: "Go Engineer", Location: "Remote", Type: models.JobTypeFullTime},
		},
		CareerPage: &models.CareerPage{Published: true, SEOTitle: "Work at Acme"},
	}
}

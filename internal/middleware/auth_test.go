package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func authedRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin/companies", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireTokenPlain(t *testing.T) {
	handler := RequireToken("secret", "")(okHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, authedRequest("secret"))
	if rr.Code != http.StatusOK {
		t.Errorf("valid token: got %d, want 200", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, authedRequest("wrong"))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("invalid token: got %d, want 401", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, authedRequest(""))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("missing header: got %d, want 401", rr.Code)
	}
	if got := rr.Header().Get("WWW-Authenticate"); got == "" {
		t.Error("expected WWW-Authenticate header on 401")
	}
}

func TestRequireTokenHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	// The hash takes precedence over the plain token.
	handler := RequireToken("other", string(hash))(okHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, authedRequest("secret"))
	if rr.Code != http.StatusOK {
		t.Errorf("valid token against hash: got %d, want 200", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, authedRequest("other"))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("plain token must not bypass hash: got %d, want 401", rr.Code)
	}
}

func TestRequireTokenNothingConfigured(t *testing.T) {
	handler := RequireToken("", "")(okHandler())

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, authedRequest("anything"))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want 401", rr.Code)
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer abc")
	token, ok := bearerToken(req)
	if !ok || token != "abc" {
		t.Errorf("scheme should be case-insensitive: got (%q, %v)", token, ok)
	}

	req.Header.Set("Authorization", "Basic abc")
	if _, ok := bearerToken(req); ok {
		t.Error("basic auth must not be accepted")
	}
}

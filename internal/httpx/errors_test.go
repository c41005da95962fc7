package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func jsonReq(path string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	r.Header.Set("Accept", "application/json")
	return r
}

func htmlReq(path string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	r.Header.Set("Accept", "text/html")
	return r
}

func TestAuthExpired(t *testing.T) {
	rec := httptest.NewRecorder()
	AuthExpired(rec, jsonReq("/works"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("json status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "auth_expired") {
		t.Errorf("json body = %q, want auth_expired code", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	AuthExpired(rec, htmlReq("/works"))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/auth_error" {
		t.Errorf("html response = %d %q, want 302 /auth_error", rec.Code, rec.Header().Get("Location"))
	}
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, jsonReq("/works/999"))
	if rec.Code != http.StatusNotFound {
		t.Errorf("json status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	NotFound(rec, htmlReq("/works/999"))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/404" {
		t.Errorf("html response = %d %q, want 302 /404", rec.Code, rec.Header().Get("Location"))
	}
}

func TestDenied(t *testing.T) {
	rec := httptest.NewRecorder()
	Denied(rec)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "forbidden") {
		t.Errorf("body = %q, want forbidden code", rec.Body.String())
	}
}

// A search outage must stay distinguishable from a generic 503 by the body
// code, so clients can degrade search alone.
func TestUpstreamUnavailable(t *testing.T) {
	rec := httptest.NewRecorder()
	UpstreamUnavailable(rec)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), CodeSearchUnavailable) {
		t.Errorf("body = %q, want %q code", rec.Body.String(), CodeSearchUnavailable)
	}
}

func TestTimeout(t *testing.T) {
	rec := httptest.NewRecorder()
	Timeout(rec, jsonReq("/works"))
	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("json status = %d, want 504", rec.Code)
	}

	rec = httptest.NewRecorder()
	Timeout(rec, htmlReq("/works"))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/timeout" {
		t.Errorf("html response = %d %q, want 302 /timeout", rec.Code, rec.Header().Get("Location"))
	}
}

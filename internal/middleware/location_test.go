package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// carryCookies copies the cookies a response set onto a follow-up request,
// playing the browser's role.
func carryCookies(rec *httptest.ResponseRecorder, r *http.Request) {
	resp := http.Response{Header: rec.Header()}
	for _, c := range resp.Cookies() {
		if c.MaxAge < 0 || (c.Value == "" && !c.Expires.IsZero()) {
			continue
		}
		r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
}

func TestStoreThenRedirectBack(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/works/3/edit?foo=bar", nil)
	StoreLocation(rec, r)

	rec2 := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/login", nil)
	carryCookies(rec, r2)
	RedirectBackOrDefault(rec2, r2, "/")

	if got := rec2.Header().Get("Location"); got != "/works/3/edit?foo=bar" {
		t.Fatalf("expected redirect back to stored path, got %q", got)
	}

	// Second consumption sees the sentinel and falls back to the default.
	rec3 := httptest.NewRecorder()
	r3 := httptest.NewRequest(http.MethodGet, "/login", nil)
	carryCookies(rec2, r3)
	RedirectBackOrDefault(rec3, r3, "/")

	if got := rec3.Header().Get("Location"); got != "/" {
		t.Fatalf("expected default redirect on second consumption, got %q", got)
	}
}

func TestRedirectBackOrDefault_NothingStored(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	RedirectBackOrDefault(rec, r, "/dashboard")
	if got := rec.Header().Get("Location"); got != "/dashboard" {
		t.Fatalf("got %q", got)
	}
}

func TestStoreLocation_OversizedPathClears(t *testing.T) {
	long := "/works?" + strings.Repeat("x", 300)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, long, nil)
	StoreLocation(rec, r)

	rec2 := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/login", nil)
	carryCookies(rec, r2)
	RedirectBackOrDefault(rec2, r2, "/")

	if got := rec2.Header().Get("Location"); got != "/" {
		t.Fatalf("oversized path must not be stored; got redirect to %q", got)
	}
}

func TestStoreLocation_SentinelClearsInsteadOfStoring(t *testing.T) {
	// A request arriving with the just-redirected sentinel must clear it,
	// not overwrite it with the current path (that would loop).
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/works/3", nil)
	r.AddCookie(&http.Cookie{Name: returnToCookie, Value: sentinelRedirected})
	StoreLocation(rec, r)

	rec2 := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/login", nil)
	carryCookies(rec, r2)
	RedirectBackOrDefault(rec2, r2, "/")

	if got := rec2.Header().Get("Location"); got != "/" {
		t.Fatalf("expected cleared memory, got redirect to %q", got)
	}
}

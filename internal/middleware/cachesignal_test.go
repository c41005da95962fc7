package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillarchive/quillarchive/internal/auth"
	"github.com/quillarchive/quillarchive/internal/models"
)

func userIdentity() auth.Identity {
	return auth.Identity{User: &models.User{ID: 7, Login: "alice"}}
}

func adminIdentity() auth.Identity {
	return auth.Identity{Admin: &models.Admin{ID: 1, Login: "root"}}
}

func TestCookieMutations(t *testing.T) {
	cases := []struct {
		name                      string
		id                        auth.Identity
		hasUserCred, hasAdminCred bool
		flash                     bool
		want                      []CookieMutation
	}{
		{
			name: "anonymous steady state",
			id:   auth.Identity{},
			want: nil,
		},
		{
			name: "fresh user login sets user_credentials",
			id:   userIdentity(),
			want: []CookieMutation{{Name: UserCredCookie, Value: "1", MaxAge: yearSeconds}},
		},
		{
			name:        "logged out user drops user_credentials",
			id:          auth.Identity{},
			hasUserCred: true,
			want:        []CookieMutation{{Name: UserCredCookie, MaxAge: -1}},
		},
		{
			name: "fresh admin login sets both credentials",
			id:   adminIdentity(),
			want: []CookieMutation{
				{Name: AdminCredCookie, Value: "1", MaxAge: yearSeconds},
				{Name: UserCredCookie, Value: "1", MaxAge: yearSeconds},
			},
		},
		{
			name:         "admin logout drops admin_credentials",
			id:           userIdentity(),
			hasUserCred:  true,
			hasAdminCred: true,
			want:         []CookieMutation{{Name: AdminCredCookie, MaxAge: -1}},
		},
		{
			name:        "flash queued sets marker",
			id:          userIdentity(),
			hasUserCred: true,
			flash:       true,
			want:        []CookieMutation{{Name: FlashSetCookie, Value: "1", MaxAge: 0}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CookieMutations(c.id, c.hasUserCred, c.hasAdminCred, c.flash)
			assert.Equal(t, c.want, got)
		})
	}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	resp := http.Response{Header: rec.Header()}
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func serve(id auth.Identity, r *http.Request, handler http.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r = r.WithContext(auth.WithIdentity(r.Context(), id))
	CacheSignals(handler).ServeHTTP(rec, r)
	return rec
}

func TestCacheSignals_FlashMarkerSurvivesRedirect(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/admin/questions", nil)
	r.AddCookie(&http.Cookie{Name: UserCredCookie, Value: "1"})

	rec := serve(userIdentity(), r, func(w http.ResponseWriter, r *http.Request) {
		Flash(w, r, "error", "admin_only")
		http.Redirect(w, r, "/", http.StatusFound)
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	marker := findCookie(rec, FlashSetCookie)
	if assert.NotNil(t, marker, "flash_is_set must be set even on redirect") {
		assert.Equal(t, "1", marker.Value)
	}
}

func TestCacheSignals_DeletesStaleFlashMarker(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: FlashSetCookie, Value: "1"})

	rec := serve(auth.Identity{}, r, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	marker := findCookie(rec, FlashSetCookie)
	if assert.NotNil(t, marker) {
		assert.True(t, marker.MaxAge < 0, "stale marker must be deleted")
	}
}

func TestCacheSignals_CredentialReconciliation(t *testing.T) {
	// Fresh login: no credential cookie yet, identity present.
	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := serve(userIdentity(), r, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	cred := findCookie(rec, UserCredCookie)
	if assert.NotNil(t, cred) {
		assert.Equal(t, "1", cred.Value)
		assert.Equal(t, yearSeconds, cred.MaxAge)
	}

	// Logged out: cookie present, identity gone.
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: UserCredCookie, Value: "1"})
	rec = serve(auth.Identity{}, r, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	cred = findCookie(rec, UserCredCookie)
	if assert.NotNil(t, cred) {
		assert.True(t, cred.MaxAge < 0)
	}
}

func TestCacheSignals_LostSessionGuard(t *testing.T) {
	// Session claims a user but the credential cookie is gone: force
	// sign-out so the proxy can't serve this user cached anonymous pages.
	r := httptest.NewRequest(http.MethodGet, "/works/3", nil)
	called := false
	rec := serve(userIdentity(), r, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	assert.False(t, called, "handler must not run")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/lost_cookie", rec.Header().Get("Location"))
	session := findCookie(rec, auth.SessionCookie)
	if assert.NotNil(t, session, "session must be cleared") {
		assert.Empty(t, session.Value)
	}
}

func TestCacheSignals_LostSessionGuardSkipsSessionEndpoints(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/login", nil)
	called := false
	serve(userIdentity(), r, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	assert.True(t, called, "session endpoints are exempt from the guard")
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/quillarchive/quillarchive/internal/auth"
)

// Cookies the reverse proxy inspects to decide whether a response may be
// served from cache. They carry no secrets, only presence.
const (
	FlashSetCookie  = "flash_is_set"
	UserCredCookie  = "user_credentials"
	AdminCredCookie = "admin_credentials"
)

// CookieMutation is one pending Set-Cookie. MaxAge < 0 deletes.
type CookieMutation struct {
	Name   string
	Value  string
	MaxAge int
}

// CookieMutations is the pure reconciliation rule between the resolved
// identity and the cache-signal cookies the request arrived with. Keeping it
// side-effect free keeps the policy observable in unit tests; the middleware
// applies the result.
func CookieMutations(id auth.Identity, hasUserCred, hasAdminCred, flashQueued bool) []CookieMutation {
	var muts []CookieMutation
	if flashQueued {
		muts = append(muts, CookieMutation{Name: FlashSetCookie, Value: "1", MaxAge: 0})
	}
	if id.IsAdmin() && !hasAdminCred {
		muts = append(muts, CookieMutation{Name: AdminCredCookie, Value: "1", MaxAge: yearSeconds})
	}
	if !id.IsAdmin() && hasAdminCred {
		muts = append(muts, CookieMutation{Name: AdminCredCookie, MaxAge: -1})
	}
	if id.LoggedInAtAll() && !hasUserCred {
		muts = append(muts, CookieMutation{Name: UserCredCookie, Value: "1", MaxAge: yearSeconds})
	}
	if !id.LoggedInAtAll() && hasUserCred {
		muts = append(muts, CookieMutation{Name: UserCredCookie, MaxAge: -1})
	}
	return muts
}

func hasCookie(r *http.Request, name string) bool {
	c, err := r.Cookie(name)
	return err == nil && c.Value != ""
}

// sessionEndpoints are excluded from the lost-session guard: they are the
// ones that legitimately run with session and credential cookies out of step.
func sessionEndpoint(path string) bool {
	switch path {
	case "/login", "/logout", "/lost_cookie", "/admin/login", "/admin/logout":
		return true
	}
	return strings.HasPrefix(path, "/auth_error")
}

// signalWriter applies pending cookie mutations just before the first byte
// of the response status goes out, so a redirect issued mid-chain still
// carries the flash_is_set marker.
type signalWriter struct {
	http.ResponseWriter
	r           *http.Request
	id          auth.Identity
	flash       *flashState
	wroteHeader bool
}

func (w *signalWriter) applyMutations() {
	muts := CookieMutations(w.id,
		hasCookie(w.r, UserCredCookie),
		hasCookie(w.r, AdminCredCookie),
		w.flash.queued)
	for _, m := range muts {
		c := &http.Cookie{Name: m.Name, Value: m.Value, Path: "/", MaxAge: m.MaxAge}
		if m.MaxAge < 0 {
			c.Value = ""
		}
		http.SetCookie(w.ResponseWriter, c)
	}
}

func (w *signalWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.applyMutations()
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *signalWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// CacheSignals maintains the cookies the caching proxy keys on. Before the
// handler runs it drops the stale flash marker and reconciles a session that
// claims a login the credential cookie doesn't back; after (via the writer
// wrapper) it reconciles the credential cookies and re-sets the flash marker
// if a message was queued.
func CacheSignals(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFrom(r.Context())

		// The marker only ever signals "this response set a flash";
		// it never survives into the next request.
		if hasCookie(r, FlashSetCookie) {
			http.SetCookie(w, &http.Cookie{Name: FlashSetCookie, Value: "", Path: "/", MaxAge: -1})
		}

		// Lost-session guard: the session says logged-in user but the
		// credential cookie the cache layer relies on is gone. Serving
		// normally would let the proxy hand this user cached anonymous
		// pages, so force a clean sign-out instead.
		if id.SignedIn() && !hasCookie(r, UserCredCookie) && !sessionEndpoint(r.URL.Path) {
			auth.ClearSession(w)
			http.Redirect(w, r, "/lost_cookie", http.StatusFound)
			return
		}

		st := &flashState{}
		sw := &signalWriter{ResponseWriter: w, r: r, id: id, flash: st}
		next.ServeHTTP(sw, r.WithContext(withFlashState(r.Context(), st)))

		// Handlers that never write (rare) still need the cookies out.
		if !sw.wroteHeader {
			sw.WriteHeader(http.StatusOK)
		}
	})
}

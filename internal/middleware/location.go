package middleware

import (
	"net/http"
	"net/url"
)

// Navigation memory: the path a denied request wanted, stored so the user
// can be sent back after logging in. One cookie, one-shot consumption.
const (
	returnToCookie = "return_to"

	// sentinelRedirected marks a value that was just consumed by a
	// redirect-back; the next Store call clears it instead of re-storing,
	// which prevents redirect loops.
	sentinelRedirected = "!redirected"

	// maxStoredPath bounds the cookie-backed storage.
	maxStoredPath = 200
)

func clearReturnTo(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: returnToCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
}

func setReturnTo(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{Name: returnToCookie, Value: url.QueryEscape(value), Path: "/", HttpOnly: true})
}

func storedReturnTo(r *http.Request) string {
	c, err := r.Cookie(returnToCookie)
	if err != nil || c.Value == "" {
		return ""
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return v
}

// StoreLocation remembers the current full path (including query string) for
// a later redirect-back. A just-redirected sentinel or an oversized path
// clears the memory instead.
func StoreLocation(w http.ResponseWriter, r *http.Request) {
	if storedReturnTo(r) == sentinelRedirected {
		clearReturnTo(w)
		return
	}
	path := r.URL.RequestURI()
	if len(path) > maxStoredPath {
		clearReturnTo(w)
		return
	}
	setReturnTo(w, path)
}

// RedirectBackOrDefault consumes the stored location: if one is present it
// redirects there and leaves the sentinel behind; otherwise it redirects to
// def.
func RedirectBackOrDefault(w http.ResponseWriter, r *http.Request, def string) {
	stored := storedReturnTo(r)
	if stored != "" && stored != sentinelRedirected {
		setReturnTo(w, sentinelRedirected)
		http.Redirect(w, r, stored, http.StatusFound)
		return
	}
	clearReturnTo(w)
	http.Redirect(w, r, def, http.StatusFound)
}

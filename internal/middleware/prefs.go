package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/quillarchive/quillarchive/internal/i18n"
)

type ctxKey string

const (
	ctxLang  ctxKey = "pref_lang"
	ctxFlash ctxKey = "flash_state"
)

// Preference cookies read by the front-end and the policy layer.
const (
	HideBannerCookie = "hide_banner"
	ViewAdultCookie  = "view_adult"

	yearSeconds = 86400 * 365
)

// Prefs extracts the language preference (cookie > query > header) and stores
// it in context. Query-provided language persists in a cookie for ~30 days.
func Prefs(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := ""
		if c, err := r.Cookie("lang"); err == nil && c.Value != "" {
			lang = c.Value
		}
		if ql := r.URL.Query().Get("lang"); ql != "" {
			lang = ql
			http.SetCookie(w, &http.Cookie{Name: "lang", Value: lang, Path: "/", MaxAge: 86400 * 30})
		}
		if !i18n.Supported(lang) {
			lang = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
		}
		ctx := context.WithValue(r.Context(), ctxLang, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LangFrom returns the language preference from context or the default.
func LangFrom(r *http.Request) string {
	if v, ok := r.Context().Value(ctxLang).(string); ok && v != "" {
		return v
	}
	return "en"
}

// HideBanner persists the user's dismissal of the site banner.
func HideBanner(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: HideBannerCookie, Value: "1", Path: "/", MaxAge: yearSeconds})
}

// BannerHidden reports whether the requester dismissed the banner.
func BannerHidden(r *http.Request) bool {
	c, err := r.Cookie(HideBannerCookie)
	return err == nil && c.Value == "1"
}

// AllowAdult persists the requester's choice to view adult content.
func AllowAdult(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: ViewAdultCookie, Value: "1", Path: "/", MaxAge: 86400})
}

// AdultAllowed reports whether the requester may see adult content without
// the interstitial, either from the session cookie or a stored preference.
func AdultAllowed(r *http.Request, prefViewAdult bool) bool {
	if prefViewAdult {
		return true
	}
	c, err := r.Cookie(ViewAdultCookie)
	return err == nil && c.Value == "1"
}

// flashState records whether any flash message was queued during the
// request, so the cache-signal layer can mark the response uncacheable.
type flashState struct {
	queued bool
}

func withFlashState(ctx context.Context, st *flashState) context.Context {
	return context.WithValue(ctx, ctxFlash, st)
}

func flashStateFrom(ctx context.Context) *flashState {
	st, _ := ctx.Value(ctxFlash).(*flashState)
	return st
}

// Flash queues a translated flash message cookie ("kind|message") and marks
// the request as flash-bearing. kind is "notice" or "error".
func Flash(w http.ResponseWriter, r *http.Request, kind, code string, params ...string) {
	msg := i18n.T(LangFrom(r), code, params...)
	http.SetCookie(w, &http.Cookie{
		Name:  "flash",
		Value: url.QueryEscape(kind + "|" + msg),
		Path:  "/",
	})
	if st := flashStateFrom(r.Context()); st != nil {
		st.queued = true
	}
}

package handlers

import (
	"net/http"

	"github.com/quillarchive/quillarchive/internal/httpx"
	"github.com/quillarchive/quillarchive/internal/i18n"
	"github.com/quillarchive/quillarchive/internal/middleware"
)

// Static-ish pages the denial taxonomy redirects to, plus the banner and
// adult-content preference endpoints.

func Home(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"banner_hidden": middleware.BannerHidden(r),
	})
}

// HideBanner records the dismissal of the site banner for a year.
func HideBanner(w http.ResponseWriter, r *http.Request) {
	middleware.HideBanner(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func AuthError(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusUnprocessableEntity, map[string]string{
		"error":   "auth_expired",
		"message": i18n.T(middleware.LangFrom(r), "auth_expired"),
	})
}

func NotFoundPage(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusNotFound, map[string]string{
		"error":   "not_found",
		"message": i18n.T(middleware.LangFrom(r), "page_not_found"),
	})
}

func TimeoutPage(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{
		"error":   "timeout",
		"message": i18n.T(middleware.LangFrom(r), "timeout"),
	})
}

// LoginPage exists so denial redirects have somewhere to land in JSON form.
func LoginPage(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{
		"login_at":   "/login",
		"restricted": r.URL.Query().Get("restricted") == "true",
	})
}

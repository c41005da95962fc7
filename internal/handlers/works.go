package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/quillarchive/quillarchive/internal/auth"
	"github.com/quillarchive/quillarchive/internal/gate"
	"github.com/quillarchive/quillarchive/internal/httpx"
	"github.com/quillarchive/quillarchive/internal/middleware"
	"github.com/quillarchive/quillarchive/internal/models"
	"github.com/quillarchive/quillarchive/internal/policy"
	"github.com/quillarchive/quillarchive/internal/sorting"
	"github.com/quillarchive/quillarchive/internal/titles"
)

// WorkHandler exposes works. Every mutating action runs through the policy
// guards; Show runs the visibility policy and the adult interstitial.
type WorkHandler struct {
	DB      *gorm.DB
	Engine  *policy.Engine
	AppName string
}

func NewWorkHandler(db *gorm.DB, engine *policy.Engine, appName string) *WorkHandler {
	return &WorkHandler{DB: db, Engine: engine, AppName: appName}
}

// List returns posted, unhidden works with a whitelisted sort order.
func (h *WorkHandler) List(w http.ResponseWriter, r *http.Request) {
	order := sorting.SetSortOrder(
		r.URL.Query().Get("sort_column"),
		r.URL.Query().Get("sort_direction"),
		"work",
	)
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit := 20

	q := h.DB.Where("posted = ? AND hidden_by_admin = ?", true, false)
	// Restricted works stay out of anonymous listings.
	if !auth.IdentityFrom(r.Context()).LoggedInAtAll() {
		q = q.Where("restricted = ?", false)
	}
	var works []models.Work
	if err := q.Order(order).Limit(limit).Offset((page - 1) * limit).Find(&works).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"works": works, "page": page})
}

// Show displays one work, subject to visibility and the adult interstitial.
func (h *WorkHandler) Show(w http.ResponseWriter, r *http.Request) {
	work, ok := h.find(w, r)
	if !ok {
		return
	}
	g := h.Engine.Guard(w, r)
	if !g.CheckVisibility(work) {
		return
	}

	user := auth.CurrentUser(r.Context())
	prefAdult := user != nil && user.Preference != nil && user.Preference.ViewAdult
	if work.AdultContent && !middleware.AdultAllowed(r, prefAdult) {
		httpx.JSON(w, http.StatusOK, map[string]any{
			"requires_adult_agreement": true,
			"agree_at":                 "/works/" + strconv.FormatUint(uint64(work.ID), 10) + "/adult",
		})
		return
	}

	opts := titles.Options{Truncate: true, AppName: h.AppName}
	if user != nil && user.Preference != nil {
		opts.Pattern = user.Preference.WorkTitleFormat
	}
	authorLogin := ""
	if work.User != nil {
		authorLogin = work.User.Login
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"work":       work,
		"page_title": titles.PageTitle(work.Fandom, authorLogin, work.Title, opts),
	})
}

// AgreeAdult records the requester's consent to view adult content.
func (h *WorkHandler) AgreeAdult(w http.ResponseWriter, r *http.Request) {
	middleware.AllowAdult(w)
	http.Redirect(w, r, "/works/"+chi.URLParam(r, "id"), http.StatusSeeOther)
}

// Create posts a new work for the current user.
func (h *WorkHandler) Create(w http.ResponseWriter, r *http.Request) {
	g := h.Engine.Guard(w, r)
	if !g.UsersOnly() || !g.CheckUserStatus() {
		return
	}
	user := auth.CurrentUser(r.Context())
	if !h.Engine.Gate.Can(r.Context(), user.ID, gate.ActionCreate, "work", nil) {
		httpx.Denied(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	work := models.Work{
		UserID:       user.ID,
		Title:        strings.TrimSpace(r.FormValue("title")),
		Fandom:       strings.TrimSpace(r.FormValue("fandom")),
		Summary:      strings.TrimSpace(r.FormValue("summary")),
		Posted:       r.FormValue("posted") == "1",
		Restricted:   r.FormValue("restricted") == "1",
		AdultContent: r.FormValue("adult_content") == "1",
	}
	if work.Title == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_fields", nil)
		return
	}
	if err := h.DB.Create(&work).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, work)
}

// Update edits a work: owner or admin, and not while suspended.
func (h *WorkHandler) Update(w http.ResponseWriter, r *http.Request) {
	work, ok := h.find(w, r)
	if !ok {
		return
	}
	fallback := "/works/" + strconv.FormatUint(uint64(work.ID), 10)
	g := h.Engine.Guard(w, r)
	if !g.CheckUserStatus() || !g.CheckOwnershipOrAdmin(work, fallback) {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	if v := strings.TrimSpace(r.FormValue("title")); v != "" {
		work.Title = v
	}
	if v := strings.TrimSpace(r.FormValue("summary")); v != "" {
		work.Summary = v
	}
	if v := r.FormValue("restricted"); v != "" {
		work.Restricted = v == "1"
	}
	if err := h.DB.Save(work).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, work)
}

// Delete removes a work: owner only, and blocked for suspended users even
// though they could still edit before the suspension landed.
func (h *WorkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	work, ok := h.find(w, r)
	if !ok {
		return
	}
	fallback := "/works/" + strconv.FormatUint(uint64(work.ID), 10)
	g := h.Engine.Guard(w, r)
	if !g.CheckUserNotSuspended() || !g.CheckOwnershipOrAdmin(work, fallback) {
		return
	}
	if err := h.DB.Delete(work).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *WorkHandler) find(w http.ResponseWriter, r *http.Request) (*models.Work, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.NotFound(w, r)
		return nil, false
	}
	var work models.Work
	if err := h.DB.Preload("Collection").Preload("User").First(&work, id).Error; err != nil {
		httpx.NotFound(w, r)
		return nil, false
	}
	return &work, true
}

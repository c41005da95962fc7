package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/quillarchive/quillarchive/internal/httpx"
	"github.com/quillarchive/quillarchive/internal/middleware"
	"github.com/quillarchive/quillarchive/internal/models"
	"github.com/quillarchive/quillarchive/internal/policy"
	"github.com/quillarchive/quillarchive/internal/sorting"
)

// QuestionHandler manages the archive FAQ. Reading is public; all changes
// are admin-gated.
type QuestionHandler struct {
	DB     *gorm.DB
	Engine *policy.Engine
}

func NewQuestionHandler(db *gorm.DB, engine *policy.Engine) *QuestionHandler {
	return &QuestionHandler{DB: db, Engine: engine}
}

// List returns FAQ questions for a locale, ordered by a whitelisted sort.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = middleware.LangFrom(r)
	}
	order := sorting.SetSortOrder(
		r.URL.Query().Get("sort_column"),
		r.URL.Query().Get("sort_direction"),
		"question",
	)

	var questions []models.Question
	if err := h.DB.Where("locale = ?", locale).Order(order).Find(&questions).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"locale":    locale,
		"questions": questions,
	})
}

// Create adds a FAQ question. Admin only.
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	g := h.Engine.Guard(w, r)
	if !g.AdminOnly() {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	q := models.Question{
		Question: strings.TrimSpace(r.FormValue("question")),
		Answer:   strings.TrimSpace(r.FormValue("answer")),
		Anchor:   strings.TrimSpace(r.FormValue("anchor")),
		Locale:   middleware.LangFrom(r),
	}
	if loc := r.FormValue("locale"); loc != "" {
		q.Locale = loc
	}
	if q.Question == "" || q.Answer == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_fields", nil)
		return
	}
	if pos, err := strconv.Atoi(r.FormValue("position")); err == nil && pos > 0 {
		q.Position = pos
	} else {
		var max int
		h.DB.Model(&models.Question{}).Where("locale = ?", q.Locale).
			Select("COALESCE(MAX(position), 0)").Scan(&max)
		q.Position = max + 1
	}
	if err := h.DB.Create(&q).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	middleware.Flash(w, r, "notice", "question_created")
	httpx.JSON(w, http.StatusCreated, q)
}

// Update edits a FAQ question. Admin only.
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	g := h.Engine.Guard(w, r)
	if !g.AdminOnly() {
		return
	}
	q, ok := h.find(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	if v := strings.TrimSpace(r.FormValue("question")); v != "" {
		q.Question = v
	}
	if v := strings.TrimSpace(r.FormValue("answer")); v != "" {
		q.Answer = v
	}
	if v := strings.TrimSpace(r.FormValue("anchor")); v != "" {
		q.Anchor = v
	}
	if pos, err := strconv.Atoi(r.FormValue("position")); err == nil && pos > 0 {
		q.Position = pos
	}
	q.IsTranslated = r.FormValue("is_translated") == "1" || q.IsTranslated
	if err := h.DB.Save(q).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	middleware.Flash(w, r, "notice", "question_updated")
	httpx.JSON(w, http.StatusOK, q)
}

// Delete removes a FAQ question. Admin only.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	g := h.Engine.Guard(w, r)
	if !g.AdminOnly() {
		return
	}
	q, ok := h.find(w, r)
	if !ok {
		return
	}
	if err := h.DB.Delete(q).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	middleware.Flash(w, r, "notice", "question_deleted")
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *QuestionHandler) find(w http.ResponseWriter, r *http.Request) (*models.Question, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.NotFound(w, r)
		return nil, false
	}
	var q models.Question
	if err := h.DB.First(&q, id).Error; err != nil {
		httpx.NotFound(w, r)
		return nil, false
	}
	return &q, true
}

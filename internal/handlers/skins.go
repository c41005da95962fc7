package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/quillarchive/quillarchive/internal/httpx"
	"github.com/quillarchive/quillarchive/internal/models"
	"github.com/quillarchive/quillarchive/internal/policy"
)

// SkinHandler serves site skins, which carry their own visibility rule:
// admins, the creator, or anyone once a skin is official.
type SkinHandler struct {
	DB     *gorm.DB
	Engine *policy.Engine
}

func NewSkinHandler(db *gorm.DB, engine *policy.Engine) *SkinHandler {
	return &SkinHandler{DB: db, Engine: engine}
}

func (h *SkinHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.NotFound(w, r)
		return
	}
	var skin models.Skin
	if err := h.DB.First(&skin, id).Error; err != nil {
		httpx.NotFound(w, r)
		return
	}
	g := h.Engine.Guard(w, r)
	if !g.CheckVisibility(&skin) {
		return
	}
	httpx.JSON(w, http.StatusOK, skin)
}

// List shows official skins to everyone plus the requester's own.
func (h *SkinHandler) List(w http.ResponseWriter, r *http.Request) {
	g := h.Engine.Guard(w, r)
	q := h.DB.Where("official = ?", true)
	if id := g.Identity(); id.User != nil {
		q = h.DB.Where("official = ? OR user_id = ?", true, id.User.ID)
	} else if id.IsAdmin() {
		q = h.DB.Session(&gorm.Session{})
	}
	var skins []models.Skin
	if err := q.Order("title").Find(&skins).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"skins": skins})
}

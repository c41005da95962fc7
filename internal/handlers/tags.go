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

// TagHandler exposes tag wrangling.
type TagHandler struct {
	DB     *gorm.DB
	Engine *policy.Engine
}

func NewTagHandler(db *gorm.DB, engine *policy.Engine) *TagHandler {
	return &TagHandler{DB: db, Engine: engine}
}

// Wrangle canonicalizes a tag or points it at a canonical merger.
// Admins always may; tag wranglers may unless the global switch is off.
func (h *TagHandler) Wrangle(w http.ResponseWriter, r *http.Request) {
	g := h.Engine.Guard(w, r)
	if !g.CheckPermissionToWrangle() {
		return
	}
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.NotFound(w, r)
		return
	}
	var tag models.Tag
	if err := h.DB.First(&tag, id).Error; err != nil {
		httpx.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}

	if v := r.FormValue("canonical"); v != "" {
		tag.Canonical = v == "1"
		if tag.Canonical {
			tag.MergerID = nil
		}
	}
	if v := r.FormValue("merger_id"); v != "" {
		mid, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_merger", nil)
			return
		}
		var merger models.Tag
		if err := h.DB.First(&merger, mid).Error; err != nil || !merger.Canonical {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_merger", nil)
			return
		}
		m := uint(mid)
		tag.MergerID = &m
		tag.Canonical = false
	}

	if err := h.DB.Save(&tag).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "db_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, tag)
}

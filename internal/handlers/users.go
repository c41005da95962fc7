package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/quillarchive/quillarchive/internal/cache"
	"github.com/quillarchive/quillarchive/internal/httpx"
	"github.com/quillarchive/quillarchive/internal/models"
	"github.com/quillarchive/quillarchive/internal/policy"
)

// Derived counts shown on user pages are advisory: cached for hours with a
// short race window, never part of authorization.
const (
	countTTL        = 6 * time.Hour
	countRaceWindow = 30 * time.Second
)

// UserHandler serves public user pages.
type UserHandler struct {
	DB     *gorm.DB
	Engine *policy.Engine
	Counts *cache.Counts
}

func NewUserHandler(db *gorm.DB, engine *policy.Engine, counts *cache.Counts) *UserHandler {
	return &UserHandler{DB: db, Engine: engine, Counts: counts}
}

// Show displays a user's public page with cached work counts.
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")
	var user models.User
	if err := h.DB.Where("login = ?", login).First(&user).Error; err != nil {
		httpx.NotFound(w, r)
		return
	}

	workCount, err := h.Counts.Fetch(r.Context(),
		fmt.Sprintf("users:%d:work_count", user.ID),
		countTTL, countRaceWindow,
		func(ctx context.Context) (int64, error) {
			var n int64
			err := h.DB.WithContext(ctx).Model(&models.Work{}).
				Where("user_id = ? AND posted = ? AND hidden_by_admin = ?", user.ID, true, false).
				Count(&n).Error
			return n, err
		})
	if err != nil {
		workCount = 0
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"user":       user,
		"work_count": workCount,
	})
}

// Edit is the self-service settings page: only the user themselves.
func (h *UserHandler) Edit(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")
	var user models.User
	if err := h.DB.Preload("Preference").Where("login = ?", login).First(&user).Error; err != nil {
		httpx.NotFound(w, r)
		return
	}
	g := h.Engine.Guard(w, r)
	if !g.CheckOwnership(&user, "/users/"+user.Login) {
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"user":       user,
		"preference": user.Preference,
	})
}

package handlers

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/quillarchive/quillarchive/internal/auth"
	"github.com/quillarchive/quillarchive/internal/httpx"
	"github.com/quillarchive/quillarchive/internal/middleware"
	"github.com/quillarchive/quillarchive/internal/models"
)

// AuthHandler owns the session endpoints for users and admins.
type AuthHandler struct {
	DB          *gorm.DB
	UserSecret  string
	AdminSecret string
}

func NewAuthHandler(db *gorm.DB, userSecret, adminSecret string) *AuthHandler {
	return &AuthHandler{DB: db, UserSecret: userSecret, AdminSecret: adminSecret}
}

// Login authenticates a user and sends them back where they were headed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	login := strings.TrimSpace(r.FormValue("login"))
	pass := r.FormValue("password")
	if login == "" || pass == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_credentials", nil)
		return
	}

	var user models.User
	if err := h.DB.Where("login = ?", login).First(&user).Error; err != nil {
		middleware.Flash(w, r, "error", "login_failed")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(pass)); err != nil {
		middleware.Flash(w, r, "error", "login_failed")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	auth.CreateSession(w, h.UserSecret, user.ID)
	middleware.RedirectBackOrDefault(w, r, "/users/"+user.Login)
}

// Logout clears the user session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSession(w)
	middleware.Flash(w, r, "notice", "logged_out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AdminLogin authenticates an admin on the separate admin channel.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	login := strings.TrimSpace(r.FormValue("login"))
	pass := r.FormValue("password")

	var admin models.Admin
	if err := h.DB.Where("login = ?", login).First(&admin).Error; err != nil {
		middleware.Flash(w, r, "error", "login_failed")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(pass)); err != nil {
		middleware.Flash(w, r, "error", "login_failed")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	if err := auth.CreateAdminSession(w, h.AdminSecret, admin.ID); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "session_error", nil)
		return
	}
	middleware.RedirectBackOrDefault(w, r, "/admin")
}

// AdminLogout clears the admin session.
func (h *AuthHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	auth.ClearAdminSession(w)
	middleware.Flash(w, r, "notice", "logged_out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// LostCookie is where the lost-session guard lands; it explains what
// happened and offers the login form.
func (h *AuthHandler) LostCookie(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{
		"error":    "lost_cookie",
		"message":  "You appear to have lost your session. Please log in again.",
		"login_at": "/login",
	})
}

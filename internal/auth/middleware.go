package auth

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/quillarchive/quillarchive/internal/httpx"
	"github.com/quillarchive/quillarchive/internal/models"
)

// Resolver turns session cookies into a request Identity, verifying on each
// request that the referenced accounts still exist.
type Resolver struct {
	DB          *gorm.DB
	UserSecret  string
	AdminSecret string
}

// Middleware attaches the resolved Identity to the request context.
// A tampered or expired token answers the request with the auth-expired
// response instead of silently downgrading to anonymous.
func (rs *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id Identity

		uid, ok, err := ParseSession(r, rs.UserSecret)
		if err != nil {
			ClearSession(w)
			httpx.AuthExpired(w, r)
			return
		}
		if ok {
			var user models.User
			dberr := rs.DB.Preload("Preference").First(&user, uid).Error
			if dberr == nil {
				id.User = &user
			} else {
				// Session refers to a non-existing user: clear and
				// continue anonymous.
				ClearSession(w)
			}
		}

		aid, ok, err := ParseAdminSession(r, rs.AdminSecret)
		if err != nil {
			ClearAdminSession(w)
			httpx.AuthExpired(w, r)
			return
		}
		if ok {
			var admin models.Admin
			if dberr := rs.DB.First(&admin, aid).Error; dberr == nil {
				id.Admin = &admin
			} else {
				ClearAdminSession(w)
			}
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

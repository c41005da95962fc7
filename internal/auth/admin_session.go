package auth

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminSessionCookie carries the admin JWT. Admin auth is a separate channel
// from user auth with its own secret, so compromising one never unlocks the
// other.
const AdminSessionCookie = "admin_session"

// CreateAdminSession sets a signed JWT cookie for the admin.
func CreateAdminSession(w http.ResponseWriter, secret string, adminID uint) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(adminID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     AdminSessionCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  now.Add(sessionTTL),
	})
	return nil
}

// ClearAdminSession deletes the admin session cookie.
func ClearAdminSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminSessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ParseAdminSession validates the admin cookie and returns the admin id.
// Absent cookie: (0, false, nil). Invalid or expired: ErrSessionInvalid.
func ParseAdminSession(r *http.Request, secret string) (uint, bool, error) {
	c, err := r.Cookie(AdminSessionCookie)
	if err != nil || c.Value == "" {
		return 0, false, nil
	}
	token, err := jwt.ParseWithClaims(c.Value, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, false, ErrSessionInvalid
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, false, ErrSessionInvalid
	}
	id64, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, false, ErrSessionInvalid
	}
	return uint(id64), true, nil
}

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// SessionCookie carries the signed user session.
	SessionCookie = "session"

	sessionTTL = 14 * 24 * time.Hour
)

// ErrSessionInvalid marks a present but tampered or malformed session token,
// as opposed to no session at all. Callers route it to the auth-expired
// response.
var ErrSessionInvalid = errors.New("invalid session token")

func sign(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CreateSession sets a signed cookie "uid.nonce.sig" for the user. The nonce
// makes tokens unique per login so a leaked old cookie is distinguishable.
func CreateSession(w http.ResponseWriter, secret string, userID uint) {
	uid := strconv.FormatUint(uint64(userID), 10)
	nonce := uuid.NewString()
	payload := uid + "." + nonce
	value := payload + "." + sign(secret, payload)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionTTL),
	})
}

// ClearSession deletes the session cookie.
func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ParseSession validates the session cookie and returns the user id.
// Absent cookie: (0, false, nil). Tampered cookie: ErrSessionInvalid.
func ParseSession(r *http.Request, secret string) (uint, bool, error) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return 0, false, nil
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 3 {
		return 0, false, ErrSessionInvalid
	}
	uid, nonce, sig := parts[0], parts[1], parts[2]
	expected := sign(secret, uid+"."+nonce)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return 0, false, ErrSessionInvalid
	}
	id64, err := strconv.ParseUint(uid, 10, 64)
	if err != nil {
		return 0, false, ErrSessionInvalid
	}
	return uint(id64), true, nil
}

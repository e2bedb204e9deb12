package auth

import (
	"net/http"
	"time"
)

// TokenCookieName is the cookie that carries the session token.
const TokenCookieName = "token"

// AttachToken sets the session token on the response as an HttpOnly cookie
// so it is never readable by page script. The Secure attribute is
// configuration-driven: off for local development, on behind TLS.
func AttachToken(w http.ResponseWriter, token string, validityDuration time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(validityDuration.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ExtractToken returns the session token from the request cookie, or false
// when the cookie is absent.
func ExtractToken(r *http.Request) (string, bool) {
	c, err := r.Cookie(TokenCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

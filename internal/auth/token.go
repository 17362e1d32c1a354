package auth

import (
	"net/http"
	"strings"
)

// LegacyCookieName is the cookie older page-level clients still send.
const LegacyCookieName = "token"

// Credential is a raw token and where the request carried it.
type Credential struct {
	Token      string
	FromCookie bool
}

// ExtractCredential is the single place a credential is read from a request.
// The Authorization header wins; the legacy cookie is only a fallback.
func ExtractCredential(r *http.Request) Credential {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")); token != "" {
			return Credential{Token: token}
		}
	}

	if cookie, err := r.Cookie(LegacyCookieName); err == nil && cookie.Value != "" {
		return Credential{Token: cookie.Value, FromCookie: true}
	}

	return Credential{}
}

func ExtractToken(r *http.Request) string {
	return ExtractCredential(r).Token
}

package middleware

import (
	"net/http"

	"seafresh-be/internal/auth"
	"seafresh-be/internal/logger"
	"seafresh-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// IdentityKey is the gin context key holding the verified auth.Identity.
	IdentityKey = "identity"

	// rejectedKey marks a request whose credential failed verification.
	rejectedKey = "token_rejected"
)

// Authenticate is the only place a request credential is checked.
// A missing or failed credential leaves the request anonymous, so public
// routes keep working; RequireRole turns that into a 401 on protected ones.
// A bad legacy cookie is expired since clients cannot clear it themselves.
func Authenticate(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cred := auth.ExtractCredential(c.Request)
		if cred.Token == "" {
			c.Next()
			return
		}

		id, err := tokens.Verify(cred.Token)
		if err != nil {
			logger.FromCtx(c.Request.Context()).Debug("token rejected",
				zap.Bool("from_cookie", cred.FromCookie),
				zap.Error(err),
			)
			c.Set(rejectedKey, true)
			if cred.FromCookie {
				c.SetCookie(auth.LegacyCookieName, "", -1, "/", "", false, true)
			}
			c.Next()
			return
		}

		c.Set(IdentityKey, id)
		c.Request = c.Request.WithContext(utils.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

// RequireRole admits only authenticated callers holding one of roles.
func RequireRole(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.IdentityFrom(c.Request.Context())
		if !ok {
			msg := "authentication required"
			if c.GetBool(rejectedKey) {
				msg = "invalid or expired token"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		for _, r := range roles {
			if id.Role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user's ID.
const ContextUserID = "userID"

// UserResolver checks that a token subject maps to an existing, active user.
// Defined here by the consumer; the auth usecase provides the implementation.
type UserResolver interface {
	ResolveActiveUser(ctx context.Context, id uint) error
}

// SessionChecker reports whether a token ID has been revoked by logout.
// A nil checker disables revocation checks (stateless JWT mode).
type SessionChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthRequired returns a Gin middleware that restricts access to requests
// carrying a valid session token. The token is accepted from the
// Authorization header (Bearer) first, then from the session cookie.
func AuthRequired(tokens Generator, users UserResolver, sessions SessionChecker, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c, cookieName)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token missing"})
			return
		}

		userID, tokenID, _, err := tokens.ParseToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token invalid"})
			return
		}

		if sessions != nil && tokenID != "" {
			// Best effort: a session store error must not lock everyone out.
			if revoked, err := sessions.IsRevoked(c.Request.Context(), tokenID); err == nil && revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token invalid"})
				return
			}
		}

		if err := users.ResolveActiveUser(c.Request.Context(), userID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token invalid"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// tokenFromRequest prefers the Authorization header, falling back to the cookie.
func tokenFromRequest(c *gin.Context, cookieName string) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CtxAddress is the gin context key holding the authenticated wallet address.
const CtxAddress = "address"

// SessionParser validates a session token and returns its subject address.
type SessionParser interface {
	ParseSession(token string) (string, error)
}

// SessionAuth validates the Bearer session token and stores the subject
// address in the request context. Missing, malformed and expired tokens are
// all treated the same way.
func SessionAuth(sessions SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		address, err := sessions.ParseSession(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(CtxAddress, address)
		c.Next()
	}
}

// Address returns the authenticated wallet address set by SessionAuth.
func Address(c *gin.Context) string {
	return c.GetString(CtxAddress)
}

// RequireAdminKey gates an endpoint behind a static admin key supplied via
// the X-Admin-Key header or a key query parameter.
func RequireAdminKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("X-Admin-Key")
		if provided == "" {
			provided = c.Query("key")
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "push-backend/internal/common/errors"
	"push-backend/internal/common/logger"
)

// Recovery converts panics into an opaque 500 response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	})
}

// HTTPError renders err as a JSON error response. Typed application errors
// carry their own status and wire slug; anything else is logged and reported
// as the opaque fallback slug with a 500.
func HTTPError(c *gin.Context, err error, fallback string) {
	if appErr, ok := apperrors.AsAppError(err); ok && !appErr.IsInternal() {
		c.AbortWithStatusJSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
		return
	}

	logger.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Msg("Request failed")

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// Package middleware provides the gin middleware chain:
// recovery, tracing, request logging, metrics, error rendering, auth.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdv/pkg/logger"
)

// Recovery converts panics into 500 responses instead of killing the
// process.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "panic recovered",
			"panic", recovered,
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"code":    "INTERNAL_ERROR",
			"message": "internal server error",
		})
	})
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pdv/internal/core/appctx"
)

const requestIDHeader = "X-Request-ID"

// Trace assigns each request an id, honoring one sent by the client,
// and echoes it back in the response header.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := appctx.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}

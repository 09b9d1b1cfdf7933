package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pdv/internal/core/apperror"
	"pdv/internal/core/appctx"
	"pdv/pkg/auth"
)

// TokenValidator validates a session token.
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// Auth validates the Bearer token and puts the username in context.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		ctx := appctx.WithUser(c.Request.Context(), claims.Username)
		c.Request = c.Request.WithContext(ctx)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}

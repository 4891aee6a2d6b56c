package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	contextUserIDKey   = "auth.userID"
	contextUsernameKey = "auth.username"
)

// Middleware rejects requests without a valid bearer token and stores the
// authenticated identity on the gin context for downstream handlers.
func Middleware(service Service) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := service.ParseToken(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx.Set(contextUserIDKey, claims.UserID)
		ctx.Set(contextUsernameKey, claims.Username)
		ctx.Next()
	}
}

// UserID returns the authenticated user id set by Middleware, 0 if absent.
func UserID(ctx *gin.Context) int {
	return ctx.GetInt(contextUserIDKey)
}

// Username returns the authenticated username set by Middleware.
func Username(ctx *gin.Context) string {
	return ctx.GetString(contextUsernameKey)
}

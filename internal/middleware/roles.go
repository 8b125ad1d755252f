package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reqpilot/reqpilot/internal/types"
)

// RequireRole gates a route group on an exact role. It must run after
// AuthMiddleware. A wrong role answers 401, same as a missing session.
func RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(types.ContextUserKey)

		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}

		user, ok := value.(AuthenticatedUser)

		if !ok || user.Role != role {
			switch role {
			case types.RoleAdmin:
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin access only"})
			default:
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User login required"})
			}
			return
		}

		ctx.Next()
	}
}

func RequireUser() gin.HandlerFunc {
	return RequireRole(types.RoleUser)
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRole(types.RoleAdmin)
}

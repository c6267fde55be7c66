package middleware

import (
	"net/http"
	"strings"

	"github.com/faithbliss/backend/internal/usecase/auth"
	"github.com/faithbliss/backend/internal/usecase/user"
	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	authUseCase *auth.AuthUseCase
	userUseCase *user.UserUseCase
}

func NewAuthMiddleware(authUseCase *auth.AuthUseCase, userUseCase *user.UserUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
	}
}

// RequireAuth validates the bearer token and stores the user id on the
// gin context under "user_id". WebSocket clients cannot set headers from
// the browser, so a "token" query parameter is accepted as a fallback.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		userID, err := m.authUseCase.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("user_id", userID)
		m.userUseCase.TouchLastSeen(c.Request.Context(), userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/renovateiq/renovateiq-backend/internal/identity"
	"github.com/renovateiq/renovateiq-backend/internal/logger"
)

// Context ключи для gin.Context.
const (
	ContextUserIDKey = "userID"
	ContextEmailKey  = "userEmail"
)

// AuthMiddleware проверяет bearer токен через identity провайдера.
// Без заголовка запрос отклоняется сразу, провайдер не вызывается.
func AuthMiddleware(verifier identity.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		user, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, identity.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: invalid or expired token"})
				return
			}
			if logger.Log != nil {
				logger.Log.WithError(err).Error("Auth middleware error")
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal auth error"})
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextEmailKey, user.Email)
		c.Next()
	}
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/renovateiq/renovateiq-backend/internal/logger"
	"github.com/renovateiq/renovateiq-backend/internal/pkg/apperror"
)

// ErrorHandler переводит накопленные ошибки в единый формат ответа
// и ловит паники обработчиков. Внутренние детали клиенту не утекают.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if logger.Log != nil {
					logger.Log.WithFields(logrus.Fields{
						"panic":  r,
						"path":   c.Request.URL.Path,
						"method": c.Request.Method,
					}).Error("Handler panic")
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()

		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"error":  err.Error(),
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			}).Error("Request error")
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
			return
		}

		statusCode := http.StatusBadRequest
		message := err.Error()
		if containsInternalKeywords(message) {
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}

		c.JSON(statusCode, gin.H{"error": message})
	}
}

// containsInternalKeywords определяет ошибки, текст которых нельзя отдавать наружу.
func containsInternalKeywords(s string) bool {
	keywords := []string{
		"sql:",
		"database",
		"connection",
		"timeout",
		"internal",
		"panic",
		"runtime",
	}

	lower := strings.ToLower(s)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

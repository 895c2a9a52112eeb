package common

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/renovateiq/renovateiq-backend/internal/http/middleware"
	"github.com/renovateiq/renovateiq-backend/internal/logger"
	"github.com/renovateiq/renovateiq-backend/internal/pkg/apperror"
)

var (
	// ErrNoIdentity is returned when the auth middleware did not attach a user.
	ErrNoIdentity = errors.New("no authenticated user in request context")

	// ErrInvalidUUID is returned when UUID parsing fails.
	ErrInvalidUUID = errors.New("invalid UUID format")
)

// CurrentUserID extracts the authenticated user id from the Gin context.
func CurrentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return uuid.Nil, ErrNoIdentity
	}

	userID, ok := raw.(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoIdentity
	}

	return userID, nil
}

// ParseUUIDParam parses a UUID from a URL parameter.
func ParseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}
	return parsed, nil
}

// RespondError sends the standard {"error": message} payload.
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// RespondUnauthorized sends a 401 response.
func RespondUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	RespondError(c, http.StatusUnauthorized, message)
}

// RespondNotFound sends a 404 response.
func RespondNotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondError(c, http.StatusNotFound, message)
}

// RespondBadRequest sends a 400 response.
func RespondBadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Bad request"
	}
	RespondError(c, http.StatusBadRequest, message)
}

// RespondStoreError translates a storage failure into an HTTP response.
// Messages that look like infrastructure faults are masked and logged.
func RespondStoreError(c *gin.Context, err error) {
	appErr := ClassifyStoreError(err)
	if appErr.Code == apperror.ErrCodeInternal {
		if logger.Log != nil {
			logger.Log.WithError(err).WithField("path", c.Request.URL.Path).Error("Store error")
		}
	}
	RespondError(c, appErr.HTTPStatus, appErr.Message)
}

// ClassifyStoreError maps a raw storage error onto the error taxonomy.
// Constraint violations surface as failed preconditions with the store's
// message, infrastructure faults are masked.
func ClassifyStoreError(err error) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	message := err.Error()
	if looksInternal(message) {
		return apperror.Wrap(err, apperror.ErrCodeInternal, "Internal server error")
	}
	return apperror.Wrap(err, apperror.ErrCodeFailedPrecondition, message)
}

func looksInternal(s string) bool {
	lower := strings.ToLower(s)
	for _, keyword := range []string{"sql:", "database", "connection", "timeout", "internal", "driver"} {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

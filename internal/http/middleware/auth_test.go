package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/renovateiq/renovateiq-backend/internal/identity"
)

type fakeVerifier struct {
	user *identity.User
	err  error
	hits int
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*identity.User, error) {
	f.hits++
	return f.user, f.err
}

func newAuthRouter(verifier identity.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(verifier), func(c *gin.Context) {
		userID := c.MustGet(ContextUserIDKey).(uuid.UUID)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	verifier := &fakeVerifier{}
	r := newAuthRouter(verifier)

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing or invalid Authorization header")
	assert.Zero(t, verifier.hits, "verifier must not be called without a bearer token")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	verifier := &fakeVerifier{}
	r := newAuthRouter(verifier)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, verifier.hits)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	verifier := &fakeVerifier{err: identity.ErrInvalidToken}
	r := newAuthRouter(verifier)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestAuthMiddlewareProviderFailure(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("connection refused")}
	r := newAuthRouter(verifier)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal auth error")
}

func TestAuthMiddlewareSuccess(t *testing.T) {
	userID := uuid.New()
	verifier := &fakeVerifier{user: &identity.User{ID: userID, Email: "owner@example.com"}}
	r := newAuthRouter(verifier)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

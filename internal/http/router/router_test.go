package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/renovateiq/renovateiq-backend/internal/config"
	"github.com/renovateiq/renovateiq-backend/internal/identity"
)

type stubVerifier struct{}

func (stubVerifier) Verify(context.Context, string) (*identity.User, error) {
	return nil, identity.ErrInvalidToken
}

func testRouterConfig() *config.Config {
	return &config.Config{
		Env:              "development",
		FrontendURL:      "http://localhost:5173",
		MediaStoragePath: "./storage/media",
		RateLimitLimit:   300,
		RateLimitPeriod:  15 * time.Minute,
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	r := SetupRouter(testRouterConfig(), stubVerifier{}, memory.NewStore(), Handlers{})

	req, _ := http.NewRequest("DELETE", "/api/nonsense", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Route DELETE /api/nonsense not found"}`, w.Body.String())
}

func TestRouterHealthIsPublic(t *testing.T) {
	r := SetupRouter(testRouterConfig(), stubVerifier{}, memory.NewStore(), Handlers{})

	req, _ := http.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "RenovateIQ API")
}

func TestRouterProtectedRoutesRequireToken(t *testing.T) {
	r := SetupRouter(testRouterConfig(), stubVerifier{}, memory.NewStore(), Handlers{})

	for _, path := range []string{"/api/projects", "/api/tasks", "/api/expenses/summary", "/api/templates"} {
		req, _ := http.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	r := SetupRouter(testRouterConfig(), stubVerifier{}, memory.NewStore(), Handlers{})

	req, _ := http.NewRequest("OPTIONS", "/api/projects", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

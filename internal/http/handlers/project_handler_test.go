package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/renovateiq/renovateiq-backend/internal/http/middleware"
)

func withTestUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}

func TestProjectHandler_ListProjects_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProjectHandler{projects: nil}
	r.GET("/projects", handler.ListProjects)

	req, _ := http.NewRequest("GET", "/projects", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProjectHandler_CreateProject_NameRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProjectHandler{projects: nil}
	r.POST("/projects", withTestUser(uuid.New()), handler.CreateProject)

	req, _ := http.NewRequest("POST", "/projects", strings.NewReader(`{"name": "   "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Project name is required")
}

func TestProjectHandler_CreateProject_BadJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProjectHandler{projects: nil}
	r.POST("/projects", withTestUser(uuid.New()), handler.CreateProject)

	req, _ := http.NewRequest("POST", "/projects", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_GetProject_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProjectHandler{projects: nil}
	r.GET("/projects/:id", withTestUser(uuid.New()), handler.GetProject)

	req, _ := http.NewRequest("GET", "/projects/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Project not found")
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTemplateHandler_Apply_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &TemplateHandler{templates: nil}
	r.POST("/templates/apply", handler.ApplyTemplate)

	req, _ := http.NewRequest("POST", "/templates/apply", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTemplateHandler_Apply_TemplateIDRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &TemplateHandler{templates: nil}
	r.POST("/templates/apply", withTestUser(uuid.New()), handler.ApplyTemplate)

	req, _ := http.NewRequest("POST", "/templates/apply", strings.NewReader(`{"project_name": "My Kitchen"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "template_id required")
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/health", HealthCheck)

	req, _ := http.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), "RenovateIQ API")
}

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

func TestTaskHandler_ListTasks_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &TaskHandler{tasks: nil}
	r.GET("/tasks", handler.ListTasks)

	req, _ := http.NewRequest("GET", "/tasks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTaskHandler_CreateTask_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &TaskHandler{tasks: nil}
	r.POST("/tasks", withTestUser(uuid.New()), handler.CreateTask)

	req, _ := http.NewRequest("POST", "/tasks", strings.NewReader(`{"name": "Paint walls"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name and project_id are required")
}

func TestTaskHandler_ListTasks_InvalidProjectFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &TaskHandler{tasks: nil}
	r.GET("/tasks", withTestUser(uuid.New()), handler.ListTasks)

	req, _ := http.NewRequest("GET", "/tasks?project_id=abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/renovateiq/renovateiq-backend/internal/http/handlers/common"
	"github.com/renovateiq/renovateiq-backend/internal/models"
	"github.com/renovateiq/renovateiq-backend/internal/repository"
)

// TaskHandler обслуживает маршруты задач.
type TaskHandler struct {
	tasks *repository.TaskRepository
}

func NewTaskHandler(tasks *repository.TaskRepository) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// ListTasks обрабатывает GET /api/tasks с необязательными фильтрами
// project_id, priority, status.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	filter := models.TaskFilter{
		Priority: c.Query("priority"),
		Status:   c.Query("status"),
	}
	if raw := c.Query("project_id"); raw != "" {
		projectID, err := uuid.Parse(raw)
		if err != nil {
			common.RespondBadRequest(c, "Invalid project_id filter")
			return
		}
		filter.ProjectID = &projectID
	}

	tasks, err := h.tasks.ListByUser(c.Request.Context(), userID, filter)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask обрабатывает POST /api/tasks.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req struct {
		Name        string       `json:"name"`
		ProjectID   *uuid.UUID   `json:"project_id"`
		Priority    string       `json:"priority"`
		Status      string       `json:"status"`
		Assignee    *string      `json:"assignee"`
		DueDate     *models.Date `json:"due_date"`
		Description *string      `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if req.Name == "" || req.ProjectID == nil {
		common.RespondBadRequest(c, "name and project_id are required")
		return
	}

	if req.Priority == "" {
		req.Priority = models.TaskPriorityMedium
	}
	if req.Status == "" {
		req.Status = models.TaskStatusTodo
	}

	task := &models.Task{
		UserID:      userID,
		ProjectID:   *req.ProjectID,
		Name:        req.Name,
		Priority:    req.Priority,
		Status:      req.Status,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
		Description: req.Description,
	}

	if err := h.tasks.Create(c.Request.Context(), task); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask обрабатывает PATCH /api/tasks/:id.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Task not found")
		return
	}

	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), id, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			common.RespondNotFound(c, "Task not found")
			return
		}
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask обрабатывает DELETE /api/tasks/:id.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Task not found")
		return
	}

	if _, err := h.tasks.Delete(c.Request.Context(), id, userID); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/renovateiq/renovateiq-backend/internal/http/handlers/common"
	"github.com/renovateiq/renovateiq-backend/internal/models"
	"github.com/renovateiq/renovateiq-backend/internal/repository"
)

// ProjectHandler обслуживает маршруты проектов.
type ProjectHandler struct {
	projects *repository.ProjectRepository
}

func NewProjectHandler(projects *repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// ListProjects обрабатывает GET /api/projects.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	projects, err := h.projects.ListByUser(c.Request.Context(), userID)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject обрабатывает GET /api/projects/:id.
// Отдаёт проект вместе со всеми связанными данными.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Project not found")
		return
	}

	details, err := h.projects.GetDetails(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			common.RespondNotFound(c, "Project not found")
			return
		}
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// CreateProject обрабатывает POST /api/projects.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req struct {
		Name        string       `json:"name"`
		Description *string      `json:"description"`
		Budget      float64      `json:"budget"`
		Deadline    *models.Date `json:"deadline"`
		Status      string       `json:"status"`
		Color       string       `json:"color"`
		Progress    int          `json:"progress"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		common.RespondBadRequest(c, "Project name is required")
		return
	}

	if req.Status == "" {
		req.Status = models.ProjectStatusPlanning
	}
	if req.Color == "" {
		req.Color = models.DefaultProjectColor
	}

	project := &models.Project{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Status:      req.Status,
		Color:       req.Color,
		Progress:    req.Progress,
	}

	if err := h.projects.Create(c.Request.Context(), project); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject обрабатывает PATCH /api/projects/:id.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Project not found")
		return
	}

	var patch models.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	project, err := h.projects.Update(c.Request.Context(), id, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			common.RespondNotFound(c, "Project not found")
			return
		}
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject обрабатывает DELETE /api/projects/:id.
// Удаление идемпотентно: отсутствующая строка не считается ошибкой.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Project not found")
		return
	}

	if _, err := h.projects.Delete(c.Request.Context(), id, userID); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

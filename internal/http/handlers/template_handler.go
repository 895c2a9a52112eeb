package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/renovateiq/renovateiq-backend/internal/http/handlers/common"
	"github.com/renovateiq/renovateiq-backend/internal/models"
	"github.com/renovateiq/renovateiq-backend/internal/repository"
	"github.com/renovateiq/renovateiq-backend/internal/service"
)

// TemplateHandler обслуживает шаблоны проектов.
type TemplateHandler struct {
	templates *service.TemplateService
}

func NewTemplateHandler(templates *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// ListTemplates обрабатывает GET /api/templates.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	if _, err := common.CurrentUserID(c); err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	templates, err := h.templates.List(c.Request.Context())
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}

// ApplyTemplate обрабатывает POST /api/templates/apply.
// Создаёт проект и его задачи из шаблона.
func (h *TemplateHandler) ApplyTemplate(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req struct {
		TemplateID  *uuid.UUID   `json:"template_id"`
		ProjectName string       `json:"project_name"`
		StartDate   *models.Date `json:"start_date"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if req.TemplateID == nil {
		common.RespondBadRequest(c, "template_id required")
		return
	}

	project, created, err := h.templates.Apply(c.Request.Context(), userID, *req.TemplateID, req.ProjectName, req.StartDate)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			common.RespondNotFound(c, "Template not found")
			return
		}
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"project":      project,
		"tasksCreated": created,
	})
}

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

// PermitHandler обслуживает разрешения и согласования.
type PermitHandler struct {
	permits *repository.PermitRepository
}

func NewPermitHandler(permits *repository.PermitRepository) *PermitHandler {
	return &PermitHandler{permits: permits}
}

// ListPermits обрабатывает GET /api/permits.
func (h *PermitHandler) ListPermits(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var projectID *uuid.UUID
	if raw := c.Query("project_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			common.RespondBadRequest(c, "Invalid project_id filter")
			return
		}
		projectID = &parsed
	}

	permits, err := h.permits.ListByUser(c.Request.Context(), userID, projectID)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, permits)
}

// CreatePermit обрабатывает POST /api/permits.
func (h *PermitHandler) CreatePermit(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req struct {
		Name       string       `json:"name"`
		ProjectID  *uuid.UUID   `json:"project_id"`
		Issuer     *string      `json:"issuer"`
		Status     string       `json:"status"`
		ExpiryDate *models.Date `json:"expiry_date"`
		Notes      *string      `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if req.Name == "" || req.ProjectID == nil {
		common.RespondBadRequest(c, "name and project_id required")
		return
	}

	if req.Status == "" {
		req.Status = models.PermitStatusRequired
	}

	permit := &models.Permit{
		UserID:     userID,
		ProjectID:  *req.ProjectID,
		Name:       req.Name,
		Issuer:     req.Issuer,
		Status:     req.Status,
		ExpiryDate: req.ExpiryDate,
		Notes:      req.Notes,
	}

	if err := h.permits.Create(c.Request.Context(), permit); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, permit)
}

// UpdatePermit обрабатывает PATCH /api/permits/:id.
func (h *PermitHandler) UpdatePermit(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Permit not found")
		return
	}

	var patch models.PermitPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	permit, err := h.permits.Update(c.Request.Context(), id, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrPermitNotFound) {
			common.RespondNotFound(c, "Permit not found")
			return
		}
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, permit)
}

// DeletePermit обрабатывает DELETE /api/permits/:id.
func (h *PermitHandler) DeletePermit(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Permit not found")
		return
	}

	if _, err := h.permits.Delete(c.Request.Context(), id, userID); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

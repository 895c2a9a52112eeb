package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renovateiq/renovateiq-backend/internal/http/handlers/common"
	"github.com/renovateiq/renovateiq-backend/internal/models"
	"github.com/renovateiq/renovateiq-backend/internal/repository"
)

// MaintenanceHandler обслуживает график обслуживания дома.
type MaintenanceHandler struct {
	records *repository.MaintenanceRepository
}

func NewMaintenanceHandler(records *repository.MaintenanceRepository) *MaintenanceHandler {
	return &MaintenanceHandler{records: records}
}

// ListRecords обрабатывает GET /api/maintenance.
// Записи отсортированы по ближайшей дате, пустые даты в конце.
func (h *MaintenanceHandler) ListRecords(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	records, err := h.records.ListByUser(c.Request.Context(), userID)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreateRecord обрабатывает POST /api/maintenance.
func (h *MaintenanceHandler) CreateRecord(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req struct {
		Name      string       `json:"name"`
		Frequency *string      `json:"frequency"`
		LastDate  *models.Date `json:"last_date"`
		NextDate  *models.Date `json:"next_date"`
		Notes     *string      `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	record := &models.MaintenanceRecord{
		UserID:    userID,
		Name:      req.Name,
		Frequency: req.Frequency,
		LastDate:  req.LastDate,
		NextDate:  req.NextDate,
		Notes:     req.Notes,
	}

	if err := h.records.Create(c.Request.Context(), record); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// UpdateRecord обрабатывает PATCH /api/maintenance/:id.
func (h *MaintenanceHandler) UpdateRecord(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Maintenance record not found")
		return
	}

	var patch models.MaintenanceRecordPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	record, err := h.records.Update(c.Request.Context(), id, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrMaintenanceRecordNotFound) {
			common.RespondNotFound(c, "Maintenance record not found")
			return
		}
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteRecord обрабатывает DELETE /api/maintenance/:id.
func (h *MaintenanceHandler) DeleteRecord(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Maintenance record not found")
		return
	}

	if _, err := h.records.Delete(c.Request.Context(), id, userID); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

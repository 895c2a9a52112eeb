package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renovateiq/renovateiq-backend/internal/http/handlers/common"
	"github.com/renovateiq/renovateiq-backend/internal/models"
	"github.com/renovateiq/renovateiq-backend/internal/repository"
)

// InventoryHandler обслуживает домашний инвентарь.
type InventoryHandler struct {
	inventory *repository.InventoryRepository
}

func NewInventoryHandler(inventory *repository.InventoryRepository) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// ListItems обрабатывает GET /api/inventory.
func (h *InventoryHandler) ListItems(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	items, err := h.inventory.ListByUser(c.Request.Context(), userID)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateItem обрабатывает POST /api/inventory.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req struct {
		Name     string  `json:"name"`
		Category *string `json:"category"`
		Quantity *int    `json:"quantity"`
		Location *string `json:"location"`
		Notes    *string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item := &models.InventoryItem{
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
		Quantity: quantity,
		Location: req.Location,
		Notes:    req.Notes,
	}

	if err := h.inventory.Create(c.Request.Context(), item); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem обрабатывает PATCH /api/inventory/:id.
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Inventory item not found")
		return
	}

	var patch models.InventoryItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	item, err := h.inventory.Update(c.Request.Context(), id, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			common.RespondNotFound(c, "Inventory item not found")
			return
		}
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem обрабатывает DELETE /api/inventory/:id.
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Inventory item not found")
		return
	}

	if _, err := h.inventory.Delete(c.Request.Context(), id, userID); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

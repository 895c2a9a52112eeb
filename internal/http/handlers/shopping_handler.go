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

// ShoppingHandler обслуживает список покупок.
type ShoppingHandler struct {
	items *repository.ShoppingRepository
}

func NewShoppingHandler(items *repository.ShoppingRepository) *ShoppingHandler {
	return &ShoppingHandler{items: items}
}

// ListItems обрабатывает GET /api/shopping.
func (h *ShoppingHandler) ListItems(c *gin.Context) {
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

	items, err := h.items.ListByUser(c.Request.Context(), userID, projectID)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateItem обрабатывает POST /api/shopping.
func (h *ShoppingHandler) CreateItem(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req struct {
		ProjectID     *uuid.UUID `json:"project_id"`
		Name          string     `json:"name"`
		Quantity      *int       `json:"quantity"`
		EstimatedCost *float64   `json:"estimated_cost"`
		Purchased     bool       `json:"purchased"`
		Notes         *string    `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item := &models.ShoppingItem{
		UserID:        userID,
		ProjectID:     req.ProjectID,
		Name:          req.Name,
		Quantity:      quantity,
		EstimatedCost: req.EstimatedCost,
		Purchased:     req.Purchased,
		Notes:         req.Notes,
	}

	if err := h.items.Create(c.Request.Context(), item); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem обрабатывает PATCH /api/shopping/:id.
func (h *ShoppingHandler) UpdateItem(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Shopping item not found")
		return
	}

	var patch models.ShoppingItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	item, err := h.items.Update(c.Request.Context(), id, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrShoppingItemNotFound) {
			common.RespondNotFound(c, "Shopping item not found")
			return
		}
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem обрабатывает DELETE /api/shopping/:id.
func (h *ShoppingHandler) DeleteItem(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Shopping item not found")
		return
	}

	if _, err := h.items.Delete(c.Request.Context(), id, userID); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

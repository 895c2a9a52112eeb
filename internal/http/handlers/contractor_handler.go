package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renovateiq/renovateiq-backend/internal/http/handlers/common"
	"github.com/renovateiq/renovateiq-backend/internal/models"
	"github.com/renovateiq/renovateiq-backend/internal/repository"
)

// ContractorHandler обслуживает записную книжку подрядчиков.
type ContractorHandler struct {
	contractors *repository.ContractorRepository
}

func NewContractorHandler(contractors *repository.ContractorRepository) *ContractorHandler {
	return &ContractorHandler{contractors: contractors}
}

// ListContractors обрабатывает GET /api/contractors.
func (h *ContractorHandler) ListContractors(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	contractors, err := h.contractors.ListByUser(c.Request.Context(), userID)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, contractors)
}

// CreateContractor обрабатывает POST /api/contractors.
func (h *ContractorHandler) CreateContractor(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req struct {
		Name      string  `json:"name"`
		Specialty *string `json:"specialty"`
		Phone     *string `json:"phone"`
		Email     *string `json:"email"`
		Rating    *int    `json:"rating"`
		Notes     *string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	contractor := &models.Contractor{
		UserID:    userID,
		Name:      req.Name,
		Specialty: req.Specialty,
		Phone:     req.Phone,
		Email:     req.Email,
		Rating:    req.Rating,
		Notes:     req.Notes,
	}

	if err := h.contractors.Create(c.Request.Context(), contractor); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contractor)
}

// UpdateContractor обрабатывает PATCH /api/contractors/:id.
func (h *ContractorHandler) UpdateContractor(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Contractor not found")
		return
	}

	var patch models.ContractorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	contractor, err := h.contractors.Update(c.Request.Context(), id, userID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrContractorNotFound) {
			common.RespondNotFound(c, "Contractor not found")
			return
		}
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, contractor)
}

// DeleteContractor обрабатывает DELETE /api/contractors/:id.
func (h *ContractorHandler) DeleteContractor(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Contractor not found")
		return
	}

	if _, err := h.contractors.Delete(c.Request.Context(), id, userID); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

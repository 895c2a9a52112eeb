package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/renovateiq/renovateiq-backend/internal/http/handlers/common"
	"github.com/renovateiq/renovateiq-backend/internal/models"
	"github.com/renovateiq/renovateiq-backend/internal/repository"
	"github.com/renovateiq/renovateiq-backend/internal/service"
)

// ExpenseHandler обслуживает маршруты трат.
type ExpenseHandler struct {
	expenses *repository.ExpenseRepository
	summary  *service.ExpenseService
}

func NewExpenseHandler(expenses *repository.ExpenseRepository, summary *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses, summary: summary}
}

// ListExpenses обрабатывает GET /api/expenses.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
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

	expenses, err := h.expenses.ListByUser(c.Request.Context(), userID, projectID)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// ExpenseSummary обрабатывает GET /api/expenses/summary.
func (h *ExpenseHandler) ExpenseSummary(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	summary, err := h.summary.Summary(c.Request.Context(), userID)
	if err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// CreateExpense обрабатывает POST /api/expenses.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req struct {
		Description string       `json:"description"`
		ProjectID   *uuid.UUID   `json:"project_id"`
		Category    string       `json:"category"`
		Amount      float64      `json:"amount"`
		ExpenseDate *models.Date `json:"expense_date"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if req.Description == "" || req.ProjectID == nil || req.Amount == 0 {
		common.RespondBadRequest(c, "description, project_id and amount are required")
		return
	}

	if req.Category == "" {
		req.Category = models.DefaultExpenseCategory
	}

	expenseDate := models.NewDate(time.Now())
	if req.ExpenseDate != nil {
		expenseDate = *req.ExpenseDate
	}

	expense := &models.Expense{
		UserID:      userID,
		ProjectID:   *req.ProjectID,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
	}

	if err := h.expenses.Create(c.Request.Context(), expense); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// DeleteExpense обрабатывает DELETE /api/expenses/:id.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondNotFound(c, "Expense not found")
		return
	}

	if _, err := h.expenses.Delete(c.Request.Context(), id, userID); err != nil {
		common.RespondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/equilibria/backend/internal/models"
	"example.com/equilibria/backend/internal/repository"
)

type BudgetHandler struct {
	Budgets *repository.BudgetRepository
}

// NewBudgetHandler создает обработчик месячных бюджетов.
func NewBudgetHandler(budgets *repository.BudgetRepository) *BudgetHandler {
	return &BudgetHandler{Budgets: budgets}
}

type CreateBudgetRequest struct {
	Month       int                     `json:"month" validate:"required,min=1,max=12"`
	Year        int                     `json:"year" validate:"required,min=2000,max=2200"`
	TotalBudget float64                 `json:"totalBudget" validate:"required,gt=0"`
	Categories  []models.CategoryBudget `json:"categories" validate:"omitempty,dive"`
}

type UpdateBudgetRequest struct {
	Month       *int                    `json:"month" validate:"omitempty,min=1,max=12"`
	Year        *int                    `json:"year" validate:"omitempty,min=2000,max=2200"`
	TotalBudget *float64                `json:"totalBudget" validate:"omitempty,gt=0"`
	Categories  []models.CategoryBudget `json:"categories" validate:"omitempty,dive"`
}

// Create добавляет бюджет на месяц.
func (h *BudgetHandler) Create(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	budget, err := h.Budgets.Create(c.Request().Context(), user.ID, req.Month, req.Year, req.TotalBudget, req.Categories)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, budget)
}

// List возвращает бюджеты с необязательными фильтрами month и year.
func (h *BudgetHandler) List(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	month, err := optionalIntQuery(c, "month")
	if err != nil {
		return badRequest(c, "invalid month")
	}
	year, err := optionalIntQuery(c, "year")
	if err != nil {
		return badRequest(c, "invalid year")
	}
	if month != nil && (*month < 1 || *month > 12) {
		return badRequest(c, "invalid month")
	}

	budgets, err := h.Budgets.ListByUser(c.Request().Context(), user.ID, month, year)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, budgets)
}

// Update изменяет бюджет текущего пользователя.
func (h *BudgetHandler) Update(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid budget id")
	}

	var req UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	budget, err := h.Budgets.Update(c.Request().Context(), user.ID, budgetID, req.Month, req.Year, req.TotalBudget, req.Categories)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "budget not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, budget)
}

// Delete удаляет бюджет текущего пользователя.
func (h *BudgetHandler) Delete(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid budget id")
	}

	if err := h.Budgets.Delete(c.Request().Context(), user.ID, budgetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "budget not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Budget deleted"})
}

// optionalIntQuery читает необязательный числовой query-параметр.
func optionalIntQuery(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/equilibria/backend/internal/models"
	"example.com/equilibria/backend/internal/repository"
)

type ExpenseHandler struct {
	Expenses *repository.ExpenseRepository
}

// NewExpenseHandler создает обработчик расходов.
func NewExpenseHandler(expenses *repository.ExpenseRepository) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses}
}

type CreateExpenseRequest struct {
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	Category      string    `json:"category" validate:"required,max=100"`
	Description   *string   `json:"description" validate:"omitempty,max=500"`
	Date          time.Time `json:"date" validate:"required"`
	PaymentMethod *string   `json:"paymentMethod" validate:"omitempty,max=50"`
}

type UpdateExpenseRequest struct {
	Amount        *float64   `json:"amount" validate:"omitempty,gt=0"`
	Category      *string    `json:"category" validate:"omitempty,max=100"`
	Description   *string    `json:"description" validate:"omitempty,max=500"`
	Date          *time.Time `json:"date"`
	PaymentMethod *string    `json:"paymentMethod" validate:"omitempty,max=50"`
}

// Create добавляет расход. Владелец берется из токена, а не из тела.
func (h *ExpenseHandler) Create(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		return badRequest(c, "category is required")
	}

	paymentMethod := models.DefaultPaymentMethod
	if req.PaymentMethod != nil && strings.TrimSpace(*req.PaymentMethod) != "" {
		paymentMethod = strings.TrimSpace(*req.PaymentMethod)
	}

	expense, err := h.Expenses.Create(c.Request().Context(), user.ID, req.Amount, category, req.Description, req.Date, paymentMethod)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, expense)
}

// List возвращает расходы текущего пользователя.
func (h *ExpenseHandler) List(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	expenses, err := h.Expenses.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, expenses)
}

// Update изменяет расход текущего пользователя.
func (h *ExpenseHandler) Update(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid expense id")
	}

	var req UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	expense, err := h.Expenses.Update(c.Request().Context(), user.ID, expenseID, req.Amount, req.Category, req.Description, req.Date, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "expense not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, expense)
}

// Delete удаляет расход текущего пользователя.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid expense id")
	}

	if err := h.Expenses.Delete(c.Request().Context(), user.ID, expenseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "expense not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Expense deleted"})
}

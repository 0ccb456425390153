package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/equilibria/backend/internal/repository"
)

type GoalHandler struct {
	Goals *repository.GoalRepository
}

// NewGoalHandler создает обработчик целей.
func NewGoalHandler(goals *repository.GoalRepository) *GoalHandler {
	return &GoalHandler{Goals: goals}
}

type CreateGoalRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	TargetDate  *time.Time `json:"targetDate"`
	Completed   bool       `json:"completed"`
	Progress    float64    `json:"progress" validate:"min=0,max=100"`
}

type UpdateGoalRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	TargetDate  *time.Time `json:"targetDate"`
	Completed   *bool      `json:"completed"`
	Progress    *float64   `json:"progress" validate:"omitempty,min=0,max=100"`
}

// Create добавляет цель.
func (h *GoalHandler) Create(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return badRequest(c, "title is required")
	}

	goal, err := h.Goals.Create(c.Request().Context(), user.ID, title, req.Description, req.TargetDate, req.Completed, req.Progress)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, goal)
}

// List возвращает цели текущего пользователя.
func (h *GoalHandler) List(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	goals, err := h.Goals.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, goals)
}

// Update изменяет цель текущего пользователя.
func (h *GoalHandler) Update(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid goal id")
	}

	var req UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	goal, err := h.Goals.Update(c.Request().Context(), user.ID, goalID, req.Title, req.Description, req.TargetDate, req.Completed, req.Progress)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "goal not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, goal)
}

// Delete удаляет цель текущего пользователя.
func (h *GoalHandler) Delete(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid goal id")
	}

	if err := h.Goals.Delete(c.Request().Context(), user.ID, goalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "goal not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Goal deleted"})
}

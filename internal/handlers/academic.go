package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/equilibria/backend/internal/repository"
)

type AcademicHandler struct {
	Records *repository.AcademicRepository
}

// NewAcademicHandler создает обработчик учебных результатов.
func NewAcademicHandler(records *repository.AcademicRepository) *AcademicHandler {
	return &AcademicHandler{Records: records}
}

type CreateAcademicRequest struct {
	Subject  string  `json:"subject" validate:"required,max=200"`
	Score    float64 `json:"score" validate:"min=0"`
	MaxScore float64 `json:"maxScore" validate:"required,gt=0"`
	Semester string  `json:"semester" validate:"required,max=50"`
	Year     int     `json:"year" validate:"required,min=1900,max=2200"`
}

type UpdateAcademicRequest struct {
	Subject  *string  `json:"subject" validate:"omitempty,max=200"`
	Score    *float64 `json:"score" validate:"omitempty,min=0"`
	MaxScore *float64 `json:"maxScore" validate:"omitempty,gt=0"`
	Semester *string  `json:"semester" validate:"omitempty,max=50"`
	Year     *int     `json:"year" validate:"omitempty,min=1900,max=2200"`
}

// Create добавляет учебный результат.
func (h *AcademicHandler) Create(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateAcademicRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return badRequest(c, "subject is required")
	}
	if req.Score > req.MaxScore {
		return badRequest(c, "score cannot exceed maxScore")
	}

	record, err := h.Records.Create(c.Request().Context(), user.ID, subject, req.Score, req.MaxScore, req.Semester, req.Year)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, record)
}

// List возвращает учебные результаты текущего пользователя.
func (h *AcademicHandler) List(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	records, err := h.Records.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, records)
}

// Update изменяет учебный результат текущего пользователя.
func (h *AcademicHandler) Update(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid record id")
	}

	var req UpdateAcademicRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	record, err := h.Records.Update(c.Request().Context(), user.ID, recordID, req.Subject, req.Score, req.MaxScore, req.Semester, req.Year)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "record not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, record)
}

// Delete удаляет учебный результат текущего пользователя.
func (h *AcademicHandler) Delete(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid record id")
	}

	if err := h.Records.Delete(c.Request().Context(), user.ID, recordID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "record not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Record deleted"})
}

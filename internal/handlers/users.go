package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/equilibria/backend/internal/identity"
	"example.com/equilibria/backend/internal/models"
	"example.com/equilibria/backend/internal/repository"
)

type UserHandler struct {
	Users    *repository.UserRepository
	Verifier *identity.Verifier
}

// NewUserHandler создает обработчик пользователей и настроек.
func NewUserHandler(users *repository.UserRepository, verifier *identity.Verifier) *UserHandler {
	return &UserHandler{Users: users, Verifier: verifier}
}

type BootstrapRequest struct {
	IDToken string `json:"idToken"`
}

type UpdateSettingsRequest struct {
	ChartType *string `json:"chartType" validate:"omitempty,max=50"`
	Metric    *string `json:"metric" validate:"omitempty,max=50"`
	Timeframe *string `json:"timeframe" validate:"omitempty,max=50"`
}

// Bootstrap проверяет id-токен и лениво создает локального пользователя.
// Единственный роут без auth-гейта кроме /health.
func (h *UserHandler) Bootstrap(c echo.Context) error {
	var req BootstrapRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	idToken := strings.TrimSpace(req.IDToken)
	if idToken == "" {
		return badRequest(c, "Missing idToken")
	}

	claims, err := h.Verifier.VerifyIDToken(idToken)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error":   "Invalid or expired idToken",
			"details": err.Error(),
		})
	}

	displayName := optionalString(claims.Name)
	photoURL := optionalString(claims.Picture)

	user, err := h.Users.GetOrCreate(c.Request().Context(), claims.Subject, claims.Email, displayName, photoURL)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, user)
}

type DevTokenRequest struct {
	UID     string `json:"uid" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name" validate:"omitempty,max=200"`
	Picture string `json:"picture" validate:"omitempty,max=500"`
}

type DevTokenResponse struct {
	IDToken   string `json:"idToken"`
	ExpiresAt string `json:"expiresAt"`
}

// DevToken выпускает id-токен для локальной разработки. Роут
// регистрируется только вне production-режима.
func (h *UserHandler) DevToken(c echo.Context) error {
	var req DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	token, expiresAt, err := h.Verifier.IssueIDToken(req.UID, req.Email, req.Name, req.Picture)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, DevTokenResponse{
		IDToken:   token,
		ExpiresAt: expiresAt.UTC().Format(timeLayout),
	})
}

// GetSettings возвращает настройки текущего пользователя.
func (h *UserHandler) GetSettings(c echo.Context) error {
	user, ok := identity.UserFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	return c.JSON(http.StatusOK, user.Settings)
}

// UpdateSettings сливает переданные поля с текущими настройками.
func (h *UserHandler) UpdateSettings(c echo.Context) error {
	user, ok := identity.UserFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	settings, err := h.Users.UpdateSettings(c.Request().Context(), user.ID, req.ChartType, req.Metric, req.Timeframe)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, settings)
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func currentUser(c echo.Context) (models.User, bool) {
	return identity.UserFromContext(c)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
}

func serverError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"example.com/equilibria/backend/internal/database"
)

type HealthHandler struct {
	DB *pgxpool.Pool
}

// NewHealthHandler создает обработчик проверки состояния.
func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{DB: db}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
}

// Health возвращает статус сервиса и доступность хранилища.
func (h *HealthHandler) Health(c echo.Context) error {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Storage:   "connected",
	}

	if err := database.Ping(c.Request().Context(), h.DB); err != nil {
		response.Status = "degraded"
		response.Storage = "disconnected"
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/equilibria/backend/internal/analysis"
	"example.com/equilibria/backend/internal/repository"
)

type AnalysisHandler struct {
	Analysis *analysis.Service
	Logs     *repository.AnalysisLogRepository
}

// NewAnalysisHandler создает обработчик анализа текста.
func NewAnalysisHandler(svc *analysis.Service, logs *repository.AnalysisLogRepository) *AnalysisHandler {
	return &AnalysisHandler{Analysis: svc, Logs: logs}
}

type AnalyzeJournalRequest struct {
	Content string `json:"content" validate:"required"`
}

// Analyze возвращает анализ произвольного текста без сохранения записи.
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req AnalyzeJournalRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return badRequest(c, "content is required")
	}

	result, call := h.Analysis.AnalyzeEntry(c.Request().Context(), content)
	logProviderCall(c, h.Logs, user.ID, call)

	return c.JSON(http.StatusOK, result)
}

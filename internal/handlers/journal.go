package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/equilibria/backend/internal/analysis"
	"example.com/equilibria/backend/internal/models"
	"example.com/equilibria/backend/internal/repository"
)

type JournalHandler struct {
	Entries  *repository.JournalRepository
	Analysis *analysis.Service
	Logs     *repository.AnalysisLogRepository
}

// NewJournalHandler создает обработчик дневника.
func NewJournalHandler(entries *repository.JournalRepository, svc *analysis.Service, logs *repository.AnalysisLogRepository) *JournalHandler {
	return &JournalHandler{Entries: entries, Analysis: svc, Logs: logs}
}

type CreateJournalEntryRequest struct {
	Title      string             `json:"title" validate:"required,max=300"`
	Content    string             `json:"content" validate:"required"`
	Mood       *string            `json:"mood" validate:"omitempty,max=50"`
	Tags       []string           `json:"tags" validate:"omitempty,dive,max=50"`
	Date       *time.Time         `json:"date"`
	AIAnalysis *models.AIAnalysis `json:"aiAnalysis"`
}

type UpdateJournalEntryRequest struct {
	Title      *string            `json:"title" validate:"omitempty,max=300"`
	Content    *string            `json:"content"`
	Mood       *string            `json:"mood" validate:"omitempty,max=50"`
	Tags       []string           `json:"tags" validate:"omitempty,dive,max=50"`
	Date       *time.Time         `json:"date"`
	AIAnalysis *models.AIAnalysis `json:"aiAnalysis"`
}

// Create добавляет запись дневника. Анализ текста выполняется синхронно;
// content обязателен, поэтому свежий анализ вытесняет переданный клиентом.
// moodScore дублирует moodRating выбранного анализа.
func (h *JournalHandler) Create(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateJournalEntryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return badRequest(c, "content is required")
	}

	aiAnalysis := h.analyze(c, user.ID, content)
	moodScore := moodScoreFrom(aiAnalysis, req.AIAnalysis)

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	entry, err := h.Entries.Create(c.Request().Context(), user.ID, repository.CreateJournalEntryParams{
		Title:      strings.TrimSpace(req.Title),
		Content:    content,
		Mood:       req.Mood,
		MoodScore:  moodScore,
		Tags:       req.Tags,
		Date:       date,
		AIAnalysis: aiAnalysis,
	})
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusCreated, entry)
}

// List возвращает записи дневника текущего пользователя.
func (h *JournalHandler) List(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	entries, err := h.Entries.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, entries)
}

// Update изменяет запись дневника. Новый content без явного aiAnalysis
// пересчитывает анализ по новому тексту, иначе сохраняется переданный
// клиентом. moodScore следует за выбранным анализом.
func (h *JournalHandler) Update(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	var req UpdateJournalEntryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	params := repository.UpdateJournalEntryParams{
		Title: req.Title,
		Mood:  req.Mood,
		Tags:  req.Tags,
		Date:  req.Date,
	}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return badRequest(c, "content cannot be empty")
		}
		params.Content = &content

		if req.AIAnalysis != nil {
			params.AIAnalysis = req.AIAnalysis
		} else {
			params.AIAnalysis = h.analyze(c, user.ID, content)
		}
		params.MoodScore = moodScoreFrom(params.AIAnalysis, nil)
	} else if req.AIAnalysis != nil {
		params.AIAnalysis = req.AIAnalysis
		params.MoodScore = moodScoreFrom(req.AIAnalysis, nil)
	}

	entry, err := h.Entries.Update(c.Request().Context(), user.ID, entryID, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "journal entry not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, entry)
}

// Delete удаляет запись дневника текущего пользователя.
func (h *JournalHandler) Delete(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	if err := h.Entries.Delete(c.Request().Context(), user.ID, entryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "journal entry not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Journal entry deleted"})
}

// moodScoreFrom выбирает оценку настроения: moodRating свежего анализа,
// иначе moodRating анализа из запроса, иначе оценка остается пустой.
func moodScoreFrom(computed, supplied *models.AIAnalysis) *float64 {
	if computed != nil {
		rating := computed.MoodRating
		return &rating
	}
	if supplied != nil {
		rating := supplied.MoodRating
		return &rating
	}
	return nil
}

// analyze выполняет анализ текста и журналирует обращение к провайдеру.
func (h *JournalHandler) analyze(c echo.Context, userID uuid.UUID, content string) *models.AIAnalysis {
	result, call := h.Analysis.AnalyzeEntry(c.Request().Context(), content)
	logProviderCall(c, h.Logs, userID, call)
	return &result
}

// logProviderCall сохраняет сведения об обращении к LLM-провайдеру.
// Ошибка журналирования не влияет на ответ клиенту.
func logProviderCall(c echo.Context, logs *repository.AnalysisLogRepository, userID uuid.UUID, call analysis.ProviderCall) {
	if !call.Attempted || logs == nil {
		return
	}

	record := repository.AnalysisRequestLog{
		UserID:      userID,
		Provider:    call.Provider,
		Model:       call.Model,
		Prompt:      call.Prompt,
		RawResponse: string(call.Raw),
		Success:     call.Err == nil,
	}
	if call.Err != nil {
		msg := call.Err.Error()
		record.ErrorMessage = &msg
	}

	if err := logs.LogRequest(c.Request().Context(), record); err != nil {
		slog.Error("не удалось записать журнал анализа", "error", err)
	}
}

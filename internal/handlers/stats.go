package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"example.com/equilibria/backend/internal/repository"
)

const (
	defaultMoodTrendDays = 7
	maxMoodTrendDays     = 90
)

type StatsHandler struct {
	Stats *repository.StatsRepository
}

// NewStatsHandler создает обработчик сводной статистики.
func NewStatsHandler(stats *repository.StatsRepository) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

type OverviewResponse struct {
	JournalEntries int      `json:"journalEntries"`
	Expenses       int      `json:"expenses"`
	Goals          int      `json:"goals"`
	CompletedGoals int      `json:"completedGoals"`
	TotalSpent     float64  `json:"totalSpent"`
	AverageMood    *float64 `json:"averageMood"`
}

type CategorySpendResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

type MoodPointResponse struct {
	Date        string  `json:"date"`
	AverageMood float64 `json:"averageMood"`
	Entries     int     `json:"entries"`
}

// Overview возвращает сводные показатели по всем разделам пользователя.
func (h *StatsHandler) Overview(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	stats, err := h.Stats.Overview(c.Request().Context(), user.ID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, OverviewResponse{
		JournalEntries: stats.JournalEntries,
		Expenses:       stats.Expenses,
		Goals:          stats.Goals,
		CompletedGoals: stats.CompletedGoals,
		TotalSpent:     stats.TotalSpent,
		AverageMood:    stats.AverageMood,
	})
}

// SpendingByCategory возвращает расходы по категориям с необязательными
// фильтрами month и year.
func (h *StatsHandler) SpendingByCategory(c echo.Context) error {
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

	spending, err := h.Stats.SpendingByCategory(c.Request().Context(), user.ID, month, year)
	if err != nil {
		return serverError(c)
	}

	response := make([]CategorySpendResponse, 0, len(spending))
	for _, row := range spending {
		response = append(response, CategorySpendResponse{
			Category: row.Category,
			Total:    row.Total,
			Count:    row.Count,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// MoodTrend возвращает среднее настроение по дням за указанный период.
func (h *StatsHandler) MoodTrend(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return unauthorized(c)
	}

	days := resolveTrendDays(c.QueryParam("days"))

	trend, err := h.Stats.MoodTrend(c.Request().Context(), user.ID, days)
	if err != nil {
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "invalid days")
		}
		return serverError(c)
	}

	response := make([]MoodPointResponse, 0, len(trend))
	for _, point := range trend {
		response = append(response, MoodPointResponse{
			Date:        point.Day.Format("2006-01-02"),
			AverageMood: point.AverageMood,
			Entries:     point.Entries,
		})
	}

	return c.JSON(http.StatusOK, response)
}

// resolveTrendDays нормализует параметр days к допустимому диапазону.
func resolveTrendDays(raw string) int {
	if raw == "" {
		return defaultMoodTrendDays
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return defaultMoodTrendDays
	}
	if days > maxMoodTrendDays {
		return maxMoodTrendDays
	}

	return days
}

package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultChartType = "area"
	DefaultMetric    = "moodRating"
	DefaultTimeframe = "week"

	DefaultPaymentMethod = "card"
)

// Settings хранит настройки дашборда пользователя.
type Settings struct {
	ChartType string `json:"chartType"`
	Metric    string `json:"metric"`
	Timeframe string `json:"timeframe"`
}

type User struct {
	ID          uuid.UUID `json:"id"`
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"displayName,omitempty"`
	PhotoURL    *string   `json:"photoURL,omitempty"`
	Settings    Settings  `json:"settings"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Expense struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Description   *string   `json:"description,omitempty"`
	Date          time.Time `json:"date"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CategoryBudget задает лимит на одну категорию внутри месячного бюджета.
type CategoryBudget struct {
	Category string  `json:"category"`
	Budget   float64 `json:"budget"`
}

type Budget struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"userId"`
	Month       int              `json:"month"`
	Year        int              `json:"year"`
	TotalBudget float64          `json:"totalBudget"`
	Categories  []CategoryBudget `json:"categories"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type Goal struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	Completed   bool       `json:"completed"`
	Progress    float64    `json:"progress"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type AcademicRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Subject   string    `json:"subject"`
	Score     float64   `json:"score"`
	MaxScore  float64   `json:"maxScore"`
	Semester  string    `json:"semester"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AIAnalysis хранит производную оценку записи дневника внутри самой записи.
type AIAnalysis struct {
	Summary    string   `json:"summary"`
	MoodRating float64  `json:"moodRating"`
	MoodLabel  string   `json:"moodLabel"`
	KeyThemes  []string `json:"keyThemes"`
	Insights   string   `json:"insights"`
	Sentiment  float64  `json:"sentiment"`
	WordCount  int      `json:"wordCount"`
}

type JournalEntry struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"userId"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Mood       *string     `json:"mood,omitempty"`
	MoodScore  *float64    `json:"moodScore,omitempty"`
	Tags       []string    `json:"tags"`
	Date       time.Time   `json:"date"`
	AIAnalysis *AIAnalysis `json:"aiAnalysis,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// DefaultSettings возвращает настройки по умолчанию для нового пользователя.
func DefaultSettings() Settings {
	return Settings{
		ChartType: DefaultChartType,
		Metric:    DefaultMetric,
		Timeframe: DefaultTimeframe,
	}
}

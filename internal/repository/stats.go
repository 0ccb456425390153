package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

type OverviewStats struct {
	JournalEntries int
	Expenses       int
	Goals          int
	CompletedGoals int
	TotalSpent     float64
	AverageMood    *float64
}

type CategorySpend struct {
	Category string
	Total    float64
	Count    int
}

type MoodPoint struct {
	Day         time.Time
	AverageMood float64
	Entries     int
}

// NewStatsRepository создает репозиторий агрегатов дашборда.
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// Overview возвращает сводные показатели пользователя.
func (r *StatsRepository) Overview(ctx context.Context, userID uuid.UUID) (OverviewStats, error) {
	var stats OverviewStats

	err := r.db.QueryRow(ctx,
		`SELECT
		    (SELECT COUNT(*) FROM journal_entries WHERE user_id = $1),
		    (SELECT COUNT(*) FROM expenses WHERE user_id = $1),
		    (SELECT COUNT(*) FROM goals WHERE user_id = $1),
		    (SELECT COUNT(*) FROM goals WHERE user_id = $1 AND completed),
		    (SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = $1),
		    (SELECT AVG(mood_score) FROM journal_entries WHERE user_id = $1 AND mood_score IS NOT NULL)`,
		userID,
	).Scan(
		&stats.JournalEntries, &stats.Expenses, &stats.Goals,
		&stats.CompletedGoals, &stats.TotalSpent, &stats.AverageMood,
	)
	if err != nil {
		return stats, err
	}

	return stats, nil
}

// SpendingByCategory возвращает суммы расходов по категориям с фильтром
// по месяцу и году.
func (r *StatsRepository) SpendingByCategory(ctx context.Context, userID uuid.UUID, month, year *int) ([]CategorySpend, error) {
	rows, err := r.db.Query(ctx,
		`SELECT category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS cnt
		 FROM expenses
		 WHERE user_id = $1
		   AND ($2::int IS NULL OR EXTRACT(MONTH FROM date) = $2)
		   AND ($3::int IS NULL OR EXTRACT(YEAR FROM date) = $3)
		 GROUP BY category
		 ORDER BY total DESC`,
		userID, month, year,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spending := make([]CategorySpend, 0)
	for rows.Next() {
		var row CategorySpend
		if err := rows.Scan(&row.Category, &row.Total, &row.Count); err != nil {
			return nil, err
		}
		spending = append(spending, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return spending, nil
}

// MoodTrend возвращает средний mood_score по дням за указанный период.
func (r *StatsRepository) MoodTrend(ctx context.Context, userID uuid.UUID, days int) ([]MoodPoint, error) {
	if days <= 0 {
		return nil, ErrInvalid
	}

	rows, err := r.db.Query(ctx,
		`SELECT date_trunc('day', date)::date AS day,
		        AVG(mood_score) AS average_mood,
		        COUNT(*) AS entries
		 FROM journal_entries
		 WHERE user_id = $1
		   AND mood_score IS NOT NULL
		   AND date >= CURRENT_DATE - ($2 || ' days')::interval
		 GROUP BY day
		 ORDER BY day`,
		userID, days,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]MoodPoint, 0)
	for rows.Next() {
		var point MoodPoint
		if err := rows.Scan(&point.Day, &point.AverageMood, &point.Entries); err != nil {
			return nil, err
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

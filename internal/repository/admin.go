package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/equilibria/backend/internal/models"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

type UsageStats struct {
	Users            int
	JournalEntries   int
	Expenses         int
	AnalysisRequests int
	AnalysisSuccess  int
	AnalysisFail     int
}

type UsageDay struct {
	Date  time.Time
	Count int
}

// NewAdminRepository создает репозиторий админских выборок.
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// ListUsers возвращает страницу пользователей по дате регистрации.
func (r *AdminRepository) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, uid, email, display_name, photo_url, chart_type, metric, timeframe, created_at, updated_at
		 FROM users
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User

		err := rows.Scan(
			&user.ID, &user.UID, &user.Email, &user.DisplayName, &user.PhotoURL,
			&user.Settings.ChartType, &user.Settings.Metric, &user.Settings.Timeframe,
			&user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// CountUsers возвращает число пользователей.
func (r *AdminRepository) CountUsers(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total)
	return total, err
}

// Usage возвращает сводные счетчики по всей базе.
func (r *AdminRepository) Usage(ctx context.Context) (UsageStats, error) {
	var stats UsageStats

	err := r.db.QueryRow(ctx,
		`SELECT
		    (SELECT COUNT(*) FROM users),
		    (SELECT COUNT(*) FROM journal_entries),
		    (SELECT COUNT(*) FROM expenses),
		    (SELECT COUNT(*) FROM analysis_requests),
		    (SELECT COUNT(*) FROM analysis_requests WHERE success),
		    (SELECT COUNT(*) FROM analysis_requests WHERE NOT success)`,
	).Scan(
		&stats.Users, &stats.JournalEntries, &stats.Expenses,
		&stats.AnalysisRequests, &stats.AnalysisSuccess, &stats.AnalysisFail,
	)
	if err != nil {
		return stats, err
	}

	return stats, nil
}

// AnalysisRequestsByDay возвращает число обращений к провайдеру по дням.
func (r *AdminRepository) AnalysisRequestsByDay(ctx context.Context, days int) ([]UsageDay, error) {
	if days <= 0 {
		return nil, ErrInvalid
	}

	rows, err := r.db.Query(ctx,
		`SELECT date_trunc('day', created_at)::date AS day, COUNT(*)
		 FROM analysis_requests
		 WHERE created_at >= CURRENT_DATE - ($1 || ' days')::interval
		 GROUP BY day
		 ORDER BY day DESC`,
		days,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]UsageDay, 0)
	for rows.Next() {
		var item UsageDay
		if err := rows.Scan(&item.Date, &item.Count); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/equilibria/backend/internal/models"
)

type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreate возвращает пользователя по uid провайдера, создавая запись
// при первом обращении.
func (r *UserRepository) GetOrCreate(ctx context.Context, uid, email string, displayName, photoURL *string) (models.User, error) {
	user, err := r.GetByUID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.User{}, err
	}

	defaults := models.DefaultSettings()
	err = r.db.QueryRow(ctx,
		`INSERT INTO users (id, uid, email, display_name, photo_url, chart_type, metric, timeframe)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, uid, email, display_name, photo_url, chart_type, metric, timeframe, created_at, updated_at`,
		uuid.New(), uid, email, displayName, photoURL,
		defaults.ChartType, defaults.Metric, defaults.Timeframe,
	).Scan(
		&user.ID, &user.UID, &user.Email, &user.DisplayName, &user.PhotoURL,
		&user.Settings.ChartType, &user.Settings.Metric, &user.Settings.Timeframe,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Параллельный bootstrap того же пользователя.
			return r.GetByUID(ctx, uid)
		}
		return models.User{}, err
	}

	return user, nil
}

// GetByUID возвращает пользователя по идентификатору провайдера.
func (r *UserRepository) GetByUID(ctx context.Context, uid string) (models.User, error) {
	var user models.User

	err := r.db.QueryRow(ctx,
		`SELECT id, uid, email, display_name, photo_url, chart_type, metric, timeframe, created_at, updated_at
		 FROM users
		 WHERE uid = $1`,
		uid,
	).Scan(
		&user.ID, &user.UID, &user.Email, &user.DisplayName, &user.PhotoURL,
		&user.Settings.ChartType, &user.Settings.Metric, &user.Settings.Timeframe,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}

	return user, nil
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User

	err := r.db.QueryRow(ctx,
		`SELECT id, uid, email, display_name, photo_url, chart_type, metric, timeframe, created_at, updated_at
		 FROM users
		 WHERE id = $1`,
		id,
	).Scan(
		&user.ID, &user.UID, &user.Email, &user.DisplayName, &user.PhotoURL,
		&user.Settings.ChartType, &user.Settings.Metric, &user.Settings.Timeframe,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}

	return user, nil
}

// UpdateSettings обновляет переданные поля настроек и возвращает итог.
func (r *UserRepository) UpdateSettings(ctx context.Context, id uuid.UUID, chartType, metric, timeframe *string) (models.Settings, error) {
	var settings models.Settings

	err := r.db.QueryRow(ctx,
		`UPDATE users
		 SET chart_type = COALESCE($2, chart_type),
		     metric = COALESCE($3, metric),
		     timeframe = COALESCE($4, timeframe),
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING chart_type, metric, timeframe`,
		id, chartType, metric, timeframe,
	).Scan(&settings.ChartType, &settings.Metric, &settings.Timeframe)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings, ErrNotFound
		}
		return settings, err
	}

	return settings, nil
}

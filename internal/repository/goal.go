package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/equilibria/backend/internal/models"
)

type GoalRepository struct {
	db *pgxpool.Pool
}

// NewGoalRepository создает репозиторий целей.
func NewGoalRepository(db *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create добавляет цель пользователя.
func (r *GoalRepository) Create(ctx context.Context, userID uuid.UUID, title string, description *string, targetDate *time.Time, completed bool, progress float64) (models.Goal, error) {
	var goal models.Goal

	err := r.db.QueryRow(ctx,
		`INSERT INTO goals (id, user_id, title, description, target_date, completed, progress)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, user_id, title, description, target_date, completed, progress, created_at, updated_at`,
		uuid.New(), userID, title, description, targetDate, completed, progress,
	).Scan(
		&goal.ID, &goal.UserID, &goal.Title, &goal.Description, &goal.TargetDate,
		&goal.Completed, &goal.Progress, &goal.CreatedAt, &goal.UpdatedAt,
	)
	if err != nil {
		return goal, err
	}

	return goal, nil
}

// ListByUser возвращает цели пользователя.
func (r *GoalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, description, target_date, completed, progress, created_at, updated_at
		 FROM goals
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]models.Goal, 0)
	for rows.Next() {
		var goal models.Goal

		err := rows.Scan(
			&goal.ID, &goal.UserID, &goal.Title, &goal.Description, &goal.TargetDate,
			&goal.Completed, &goal.Progress, &goal.CreatedAt, &goal.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return goals, nil
}

// Update изменяет переданные поля цели пользователя.
func (r *GoalRepository) Update(ctx context.Context, userID, goalID uuid.UUID, title, description *string, targetDate *time.Time, completed *bool, progress *float64) (models.Goal, error) {
	var goal models.Goal

	err := r.db.QueryRow(ctx,
		`UPDATE goals
		 SET title = COALESCE($3, title),
		     description = COALESCE($4, description),
		     target_date = COALESCE($5, target_date),
		     completed = COALESCE($6, completed),
		     progress = COALESCE($7, progress),
		     updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, description, target_date, completed, progress, created_at, updated_at`,
		goalID, userID, title, description, targetDate, completed, progress,
	).Scan(
		&goal.ID, &goal.UserID, &goal.Title, &goal.Description, &goal.TargetDate,
		&goal.Completed, &goal.Progress, &goal.CreatedAt, &goal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goal, ErrNotFound
		}
		return goal, err
	}

	return goal, nil
}

// Delete удаляет цель пользователя.
func (r *GoalRepository) Delete(ctx context.Context, userID, goalID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM goals
		 WHERE id = $1 AND user_id = $2`,
		goalID, userID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/equilibria/backend/internal/models"
)

type BudgetRepository struct {
	db *pgxpool.Pool
}

// NewBudgetRepository создает репозиторий месячных бюджетов.
func NewBudgetRepository(db *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// Create добавляет бюджет на месяц. Список категорий хранится как jsonb,
// порядок категорий сохраняется.
func (r *BudgetRepository) Create(ctx context.Context, userID uuid.UUID, month, year int, totalBudget float64, categories []models.CategoryBudget) (models.Budget, error) {
	var budget models.Budget

	categoriesJSON, err := marshalCategories(categories)
	if err != nil {
		return budget, err
	}

	var rawCategories []byte
	err = r.db.QueryRow(ctx,
		`INSERT INTO budgets (id, user_id, month, year, total_budget, categories)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, month, year, total_budget, categories, created_at, updated_at`,
		uuid.New(), userID, month, year, totalBudget, categoriesJSON,
	).Scan(
		&budget.ID, &budget.UserID, &budget.Month, &budget.Year,
		&budget.TotalBudget, &rawCategories, &budget.CreatedAt, &budget.UpdatedAt,
	)
	if err != nil {
		return budget, err
	}

	if err := json.Unmarshal(rawCategories, &budget.Categories); err != nil {
		return budget, err
	}

	return budget, nil
}

// ListByUser возвращает бюджеты пользователя с фильтром по месяцу и году.
func (r *BudgetRepository) ListByUser(ctx context.Context, userID uuid.UUID, month, year *int) ([]models.Budget, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, month, year, total_budget, categories, created_at, updated_at
		 FROM budgets
		 WHERE user_id = $1
		   AND ($2::int IS NULL OR month = $2)
		   AND ($3::int IS NULL OR year = $3)
		 ORDER BY year DESC, month DESC`,
		userID, month, year,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := make([]models.Budget, 0)
	for rows.Next() {
		var budget models.Budget
		var rawCategories []byte

		err := rows.Scan(
			&budget.ID, &budget.UserID, &budget.Month, &budget.Year,
			&budget.TotalBudget, &rawCategories, &budget.CreatedAt, &budget.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(rawCategories, &budget.Categories); err != nil {
			return nil, err
		}

		budgets = append(budgets, budget)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return budgets, nil
}

// Update изменяет переданные поля бюджета пользователя.
func (r *BudgetRepository) Update(ctx context.Context, userID, budgetID uuid.UUID, month, year *int, totalBudget *float64, categories []models.CategoryBudget) (models.Budget, error) {
	var budget models.Budget

	var categoriesJSON []byte
	if categories != nil {
		var err error
		categoriesJSON, err = marshalCategories(categories)
		if err != nil {
			return budget, err
		}
	}

	var rawCategories []byte
	err := r.db.QueryRow(ctx,
		`UPDATE budgets
		 SET month = COALESCE($3, month),
		     year = COALESCE($4, year),
		     total_budget = COALESCE($5, total_budget),
		     categories = COALESCE($6, categories),
		     updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, month, year, total_budget, categories, created_at, updated_at`,
		budgetID, userID, month, year, totalBudget, categoriesJSON,
	).Scan(
		&budget.ID, &budget.UserID, &budget.Month, &budget.Year,
		&budget.TotalBudget, &rawCategories, &budget.CreatedAt, &budget.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return budget, ErrNotFound
		}
		return budget, err
	}

	if err := json.Unmarshal(rawCategories, &budget.Categories); err != nil {
		return budget, err
	}

	return budget, nil
}

// Delete удаляет бюджет пользователя.
func (r *BudgetRepository) Delete(ctx context.Context, userID, budgetID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM budgets
		 WHERE id = $1 AND user_id = $2`,
		budgetID, userID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func marshalCategories(categories []models.CategoryBudget) ([]byte, error) {
	if categories == nil {
		categories = []models.CategoryBudget{}
	}
	return json.Marshal(categories)
}

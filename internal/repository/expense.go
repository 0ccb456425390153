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

type ExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository создает репозиторий расходов.
func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create добавляет расход пользователя.
func (r *ExpenseRepository) Create(ctx context.Context, userID uuid.UUID, amount float64, category string, description *string, date time.Time, paymentMethod string) (models.Expense, error) {
	var expense models.Expense

	err := r.db.QueryRow(ctx,
		`INSERT INTO expenses (id, user_id, amount, category, description, date, payment_method)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, user_id, amount, category, description, date, payment_method, created_at, updated_at`,
		uuid.New(), userID, amount, category, description, date, paymentMethod,
	).Scan(
		&expense.ID, &expense.UserID, &expense.Amount, &expense.Category,
		&expense.Description, &expense.Date, &expense.PaymentMethod,
		&expense.CreatedAt, &expense.UpdatedAt,
	)
	if err != nil {
		return expense, err
	}

	return expense, nil
}

// ListByUser возвращает расходы пользователя.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, amount, category, description, date, payment_method, created_at, updated_at
		 FROM expenses
		 WHERE user_id = $1
		 ORDER BY date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var expense models.Expense

		err := rows.Scan(
			&expense.ID, &expense.UserID, &expense.Amount, &expense.Category,
			&expense.Description, &expense.Date, &expense.PaymentMethod,
			&expense.CreatedAt, &expense.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}

// Update изменяет переданные поля расхода пользователя.
func (r *ExpenseRepository) Update(ctx context.Context, userID, expenseID uuid.UUID, amount *float64, category, description *string, date *time.Time, paymentMethod *string) (models.Expense, error) {
	var expense models.Expense

	err := r.db.QueryRow(ctx,
		`UPDATE expenses
		 SET amount = COALESCE($3, amount),
		     category = COALESCE($4, category),
		     description = COALESCE($5, description),
		     date = COALESCE($6, date),
		     payment_method = COALESCE($7, payment_method),
		     updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, amount, category, description, date, payment_method, created_at, updated_at`,
		expenseID, userID, amount, category, description, date, paymentMethod,
	).Scan(
		&expense.ID, &expense.UserID, &expense.Amount, &expense.Category,
		&expense.Description, &expense.Date, &expense.PaymentMethod,
		&expense.CreatedAt, &expense.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense, ErrNotFound
		}
		return expense, err
	}

	return expense, nil
}

// Delete удаляет расход пользователя.
func (r *ExpenseRepository) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM expenses
		 WHERE id = $1 AND user_id = $2`,
		expenseID, userID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

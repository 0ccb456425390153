package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/equilibria/backend/internal/models"
)

type AcademicRepository struct {
	db *pgxpool.Pool
}

// NewAcademicRepository создает репозиторий учебных результатов.
func NewAcademicRepository(db *pgxpool.Pool) *AcademicRepository {
	return &AcademicRepository{db: db}
}

// Create добавляет учебный результат пользователя.
func (r *AcademicRepository) Create(ctx context.Context, userID uuid.UUID, subject string, score, maxScore float64, semester string, year int) (models.AcademicRecord, error) {
	var record models.AcademicRecord

	err := r.db.QueryRow(ctx,
		`INSERT INTO academic_records (id, user_id, subject, score, max_score, semester, year)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, user_id, subject, score, max_score, semester, year, created_at, updated_at`,
		uuid.New(), userID, subject, score, maxScore, semester, year,
	).Scan(
		&record.ID, &record.UserID, &record.Subject, &record.Score, &record.MaxScore,
		&record.Semester, &record.Year, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return record, err
	}

	return record, nil
}

// ListByUser возвращает учебные результаты пользователя.
func (r *AcademicRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.AcademicRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, subject, score, max_score, semester, year, created_at, updated_at
		 FROM academic_records
		 WHERE user_id = $1
		 ORDER BY year DESC, semester, subject`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.AcademicRecord, 0)
	for rows.Next() {
		var record models.AcademicRecord

		err := rows.Scan(
			&record.ID, &record.UserID, &record.Subject, &record.Score, &record.MaxScore,
			&record.Semester, &record.Year, &record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Update изменяет переданные поля учебного результата пользователя.
func (r *AcademicRepository) Update(ctx context.Context, userID, recordID uuid.UUID, subject *string, score, maxScore *float64, semester *string, year *int) (models.AcademicRecord, error) {
	var record models.AcademicRecord

	err := r.db.QueryRow(ctx,
		`UPDATE academic_records
		 SET subject = COALESCE($3, subject),
		     score = COALESCE($4, score),
		     max_score = COALESCE($5, max_score),
		     semester = COALESCE($6, semester),
		     year = COALESCE($7, year),
		     updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, subject, score, max_score, semester, year, created_at, updated_at`,
		recordID, userID, subject, score, maxScore, semester, year,
	).Scan(
		&record.ID, &record.UserID, &record.Subject, &record.Score, &record.MaxScore,
		&record.Semester, &record.Year, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record, ErrNotFound
		}
		return record, err
	}

	return record, nil
}

// Delete удаляет учебный результат пользователя.
func (r *AcademicRepository) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM academic_records
		 WHERE id = $1 AND user_id = $2`,
		recordID, userID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

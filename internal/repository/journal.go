package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/equilibria/backend/internal/models"
)

type JournalRepository struct {
	db *pgxpool.Pool
}

// NewJournalRepository создает репозиторий записей дневника.
func NewJournalRepository(db *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{db: db}
}

// CreateJournalEntryParams описывает поля новой записи дневника.
type CreateJournalEntryParams struct {
	Title      string
	Content    string
	Mood       *string
	MoodScore  *float64
	Tags       []string
	Date       time.Time
	AIAnalysis *models.AIAnalysis
}

// UpdateJournalEntryParams описывает изменяемые поля записи; nil оставляет поле
// без изменений.
type UpdateJournalEntryParams struct {
	Title      *string
	Content    *string
	Mood       *string
	MoodScore  *float64
	Tags       []string
	Date       *time.Time
	AIAnalysis *models.AIAnalysis
}

// Create добавляет запись дневника. Анализ хранится как jsonb внутри строки.
func (r *JournalRepository) Create(ctx context.Context, userID uuid.UUID, params CreateJournalEntryParams) (models.JournalEntry, error) {
	var entry models.JournalEntry

	analysisJSON, err := marshalAnalysis(params.AIAnalysis)
	if err != nil {
		return entry, err
	}

	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	var rawAnalysis []byte
	err = r.db.QueryRow(ctx,
		`INSERT INTO journal_entries (id, user_id, title, content, mood, mood_score, tags, date, ai_analysis)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, user_id, title, content, mood, mood_score, tags, date, ai_analysis, created_at, updated_at`,
		uuid.New(), userID, params.Title, params.Content, params.Mood, params.MoodScore, tags, params.Date, analysisJSON,
	).Scan(
		&entry.ID, &entry.UserID, &entry.Title, &entry.Content, &entry.Mood,
		&entry.MoodScore, &entry.Tags, &entry.Date, &rawAnalysis,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return entry, err
	}

	if err := unmarshalAnalysis(rawAnalysis, &entry); err != nil {
		return entry, err
	}

	return entry, nil
}

// ListByUser возвращает записи пользователя по убыванию даты.
func (r *JournalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, content, mood, mood_score, tags, date, ai_analysis, created_at, updated_at
		 FROM journal_entries
		 WHERE user_id = $1
		 ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var entry models.JournalEntry
		var rawAnalysis []byte

		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Title, &entry.Content, &entry.Mood,
			&entry.MoodScore, &entry.Tags, &entry.Date, &rawAnalysis,
			&entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if err := unmarshalAnalysis(rawAnalysis, &entry); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Update изменяет переданные поля записи пользователя.
func (r *JournalRepository) Update(ctx context.Context, userID, entryID uuid.UUID, params UpdateJournalEntryParams) (models.JournalEntry, error) {
	var entry models.JournalEntry

	var analysisJSON []byte
	if params.AIAnalysis != nil {
		var err error
		analysisJSON, err = marshalAnalysis(params.AIAnalysis)
		if err != nil {
			return entry, err
		}
	}

	var rawAnalysis []byte
	err := r.db.QueryRow(ctx,
		`UPDATE journal_entries
		 SET title = COALESCE($3, title),
		     content = COALESCE($4, content),
		     mood = COALESCE($5, mood),
		     mood_score = COALESCE($6, mood_score),
		     tags = COALESCE($7, tags),
		     date = COALESCE($8, date),
		     ai_analysis = COALESCE($9, ai_analysis),
		     updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, content, mood, mood_score, tags, date, ai_analysis, created_at, updated_at`,
		entryID, userID, params.Title, params.Content, params.Mood, params.MoodScore, params.Tags, params.Date, analysisJSON,
	).Scan(
		&entry.ID, &entry.UserID, &entry.Title, &entry.Content, &entry.Mood,
		&entry.MoodScore, &entry.Tags, &entry.Date, &rawAnalysis,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entry, ErrNotFound
		}
		return entry, err
	}

	if err := unmarshalAnalysis(rawAnalysis, &entry); err != nil {
		return entry, err
	}

	return entry, nil
}

// Delete удаляет запись пользователя.
func (r *JournalRepository) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM journal_entries
		 WHERE id = $1 AND user_id = $2`,
		entryID, userID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func marshalAnalysis(analysis *models.AIAnalysis) ([]byte, error) {
	if analysis == nil {
		return nil, nil
	}
	return json.Marshal(analysis)
}

func unmarshalAnalysis(raw []byte, entry *models.JournalEntry) error {
	if len(raw) == 0 {
		entry.AIAnalysis = nil
		return nil
	}

	analysis := &models.AIAnalysis{}
	if err := json.Unmarshal(raw, analysis); err != nil {
		return err
	}

	entry.AIAnalysis = analysis
	return nil
}

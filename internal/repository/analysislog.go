package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AnalysisLogRepository struct {
	db *pgxpool.Pool
}

// AnalysisRequestLog описывает обращение к LLM-провайдеру анализа.
type AnalysisRequestLog struct {
	UserID       uuid.UUID
	Provider     string
	Model        string
	Prompt       string
	RawResponse  string
	Success      bool
	ErrorMessage *string
}

// NewAnalysisLogRepository создает репозиторий журнала анализа.
func NewAnalysisLogRepository(db *pgxpool.Pool) *AnalysisLogRepository {
	return &AnalysisLogRepository{db: db}
}

// LogRequest сохраняет запись об обращении к провайдеру.
func (r *AnalysisLogRepository) LogRequest(ctx context.Context, log AnalysisRequestLog) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO analysis_requests
		 (user_id, provider, model, prompt, raw_response, success, error_message)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		log.UserID,
		log.Provider,
		log.Model,
		log.Prompt,
		log.RawResponse,
		log.Success,
		log.ErrorMessage,
	)
	return err
}

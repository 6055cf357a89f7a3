package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"teamup-api/internal/models"
	"teamup-api/internal/storage"
	"teamup-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalysisRepo implements the storage.AnalysisRepository interface using
// PostgreSQL. Analyses append; nothing updates or deletes them here.
type AnalysisRepo struct {
	db Querier
}

// NewAnalysisRepo creates a new AnalysisRepo.
func NewAnalysisRepo(pool *pgxpool.Pool) *AnalysisRepo {
	return &AnalysisRepo{db: pool}
}

// Compile-time check to ensure AnalysisRepo implements AnalysisRepository
var _ storage.AnalysisRepository = (*AnalysisRepo)(nil)

// Create appends a new analysis row for an apply.
func (r *AnalysisRepo) Create(ctx context.Context, req *dto.CreateAnalysisRequest) (*models.Analysis, error) {
	query := `
		INSERT INTO analyses (id, apply_id, score, result, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, apply_id, score, result, summary, created_at
	`
	row := r.db.QueryRow(ctx, query, uuid.New(), req.ApplyID, req.Score, req.Result, req.Summary)

	var analysis models.Analysis
	err := row.Scan(&analysis.ID, &analysis.ApplyID, &analysis.Score,
		&analysis.Result, &analysis.Summary, &analysis.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			// Apply was cancelled while scoring ran.
			log.Printf("Error creating analysis: apply %s no longer exists\n", req.ApplyID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error creating analysis for apply %s: %v\n", req.ApplyID, err)
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}

	log.Printf("Analysis created for apply %s with score %d", req.ApplyID, req.Score)
	return &analysis, nil
}

// LatestByApply returns the most recent analysis for an apply, or
// ErrNotFound when none was ever recorded.
func (r *AnalysisRepo) LatestByApply(ctx context.Context, applyID uuid.UUID) (*models.Analysis, error) {
	query := `
		SELECT id, apply_id, score, result, summary, created_at
		FROM analyses
		WHERE apply_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	row := r.db.QueryRow(ctx, query, applyID)

	var analysis models.Analysis
	err := row.Scan(&analysis.ID, &analysis.ApplyID, &analysis.Score,
		&analysis.Result, &analysis.Summary, &analysis.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning latest analysis for apply %s: %v\n", applyID, err)
		return nil, fmt.Errorf("failed to get latest analysis for apply %s: %w", applyID, err)
	}

	return &analysis, nil
}

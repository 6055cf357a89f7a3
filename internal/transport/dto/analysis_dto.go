package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateAnalysisRequest is used internally by the analysis worker.
type CreateAnalysisRequest struct {
	ApplyID uuid.UUID
	Score   int
	Result  string
	Summary string
}

type AnalysisResponse struct {
	ID        uuid.UUID `json:"id"`
	ApplyID   uuid.UUID `json:"apply_id"`
	Score     int       `json:"score"`
	Result    string    `json:"result"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

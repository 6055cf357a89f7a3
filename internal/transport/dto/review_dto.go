package dto

import (
	"time"

	"teamup-api/internal/models"

	"github.com/google/uuid"
)

type CreateProfileReviewRequest struct {
	ReviewerID uuid.UUID `json:"-"` // Set from user context
	RevieweeID uuid.UUID `json:"reviewee_id" validate:"required"`
	Content    string    `json:"content" validate:"required"`
}

type CreatePeerReviewRequest struct {
	ReviewerID uuid.UUID `json:"-"` // Set from user context
	RevieweeID uuid.UUID `json:"reviewee_id" validate:"required"`
	ApplyID    uuid.UUID `json:"apply_id" validate:"required"`
	Content    string    `json:"content" validate:"required"`
	Rating     *int      `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

// CreateReviewRecord is used internally by the review service.
type CreateReviewRecord struct {
	Type       models.ReviewType
	ReviewerID uuid.UUID
	RevieweeID uuid.UUID
	ApplyID    *uuid.UUID
	Content    string
	Rating     *int
}

type DeleteReviewRequest struct {
	ReviewID uuid.UUID `json:"-" validate:"required"` // From path
	ActorID  uuid.UUID `json:"-"`                     // Set from user context
}

type ListPeerReviewsByApplyRequest struct {
	ApplyID uuid.UUID `json:"-" validate:"required"` // From path
	ActorID uuid.UUID `json:"-"`                     // Set from user context (must be a participant)
}

type ReviewResponse struct {
	ID         uuid.UUID         `json:"id"`
	Type       models.ReviewType `json:"type"`
	ReviewerID uuid.UUID         `json:"reviewer_id"`
	RevieweeID uuid.UUID         `json:"reviewee_id"`
	ApplyID    *uuid.UUID        `json:"apply_id,omitempty"`
	Content    string            `json:"content"`
	Rating     *int              `json:"rating,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

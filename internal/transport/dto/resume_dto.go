package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateResumeRequest struct {
	OwnerID uuid.UUID `json:"-"` // Set from user context
	Title   string    `json:"title" validate:"required,max=100"`
	Content string    `json:"content" validate:"required"`
	IsMain  bool      `json:"is_main"`
	Skills  []string  `json:"skills" validate:"omitempty,dive,required,max=40"`
}

// UpdateResumeRequest patches individual fields; nil means "leave as is".
type UpdateResumeRequest struct {
	ResumeID uuid.UUID `json:"-" validate:"required"` // From path
	OwnerID  uuid.UUID `json:"-"`                     // Set from user context
	Title    *string   `json:"title" validate:"omitempty,max=100"`
	Content  *string   `json:"content"`
	Skills   *[]string `json:"skills" validate:"omitempty,dive,required,max=40"`
}

type SetMainResumeRequest struct {
	ResumeID uuid.UUID `json:"-" validate:"required"` // From path
	OwnerID  uuid.UUID `json:"-"`                     // Set from user context
}

type DeleteResumeRequest struct {
	ResumeID uuid.UUID `json:"-" validate:"required"` // From path
	OwnerID  uuid.UUID `json:"-"`                     // Set from user context
}

type GetResumeRequest struct {
	ResumeID uuid.UUID `json:"-" validate:"required"` // From path
	ActorID  uuid.UUID `json:"-"`                     // Set from user context
}

type ResumeResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsMain    bool      `json:"is_main"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

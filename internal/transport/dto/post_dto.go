package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	AuthorID  uuid.UUID `json:"-"` // Set from user context
	Title     string    `json:"title" validate:"required,max=100"`
	Content   string    `json:"content" validate:"required"`
	Category  string    `json:"category" validate:"omitempty,max=30"`
	HeadCount int       `json:"head_count" validate:"required,gte=1"`
	Deadline  time.Time `json:"deadline" validate:"required"`
}

type ListPostsRequest struct {
	OpenOnly bool `form:"open_only,default=false"`
	Limit    int  `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset   int  `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type ClosePostRequest struct {
	PostID  uuid.UUID `json:"-" validate:"required"` // From path
	ActorID uuid.UUID `json:"-"`                     // Set from user context
}

type DeletePostRequest struct {
	PostID  uuid.UUID `json:"-" validate:"required"` // From path
	ActorID uuid.UUID `json:"-"`                     // Set from user context
}

type PostResponse struct {
	ID        uuid.UUID  `json:"id"`
	AuthorID  uuid.UUID  `json:"author_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  string     `json:"category"`
	HeadCount int        `json:"head_count"`
	Deadline  time.Time  `json:"deadline"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	IsOpen    bool       `json:"is_open"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	PostID   uuid.UUID  `json:"-"`         // From path
	AuthorID uuid.UUID  `json:"-"`         // Set from user context
	ParentID *uuid.UUID `json:"parent_id"` // Optional; replies point at a top-level comment
	Content  string     `json:"content" validate:"required"`
}

// CreateCommentRecord is used internally by the comment service.
type CreateCommentRecord struct {
	PostID   uuid.UUID
	AuthorID uuid.UUID
	ParentID *uuid.UUID
	Content  string
}

type UpdateCommentRequest struct {
	CommentID uuid.UUID `json:"-" validate:"required"` // From path
	ActorID   uuid.UUID `json:"-"`                     // Set from user context (must be the author)
	Content   string    `json:"content" validate:"required"`
}

type DeleteCommentRequest struct {
	CommentID uuid.UUID `json:"-" validate:"required"` // From path
	ActorID   uuid.UUID `json:"-"`                     // Set from user context (must be the author)
}

// CommentResponse carries one comment. On list reads Replies holds the
// thread below a top-level comment, oldest first.
type CommentResponse struct {
	ID        uuid.UUID         `json:"id"`
	PostID    uuid.UUID         `json:"post_id"`
	AuthorID  uuid.UUID         `json:"author_id"`
	ParentID  *uuid.UUID        `json:"parent_id,omitempty"`
	Nickname  string            `json:"nickname,omitempty"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Replies   []CommentResponse `json:"replies,omitempty"`
}

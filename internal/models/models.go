package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Review Type Enum ---
type ReviewType string

const (
	ReviewTypeProfile ReviewType = "PROFILE"
	ReviewTypePeer    ReviewType = "PEER"
)

// Scan implements the sql.Scanner interface for ReviewType
func (rt *ReviewType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ReviewType: value is not string or []byte")
		}
	}
	v := ReviewType(strVal)
	switch v {
	case ReviewTypeProfile, ReviewTypePeer:
		*rt = v
		return nil
	default:
		return fmt.Errorf("invalid ReviewType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ReviewType
func (rt ReviewType) Value() (driver.Value, error) {
	return string(rt), nil
}

// User represents an account in the system.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Profile holds the public-facing part of a user. One row per user.
type Profile struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Nickname     string    `json:"nickname" db:"nickname"`
	Introduction string    `json:"introduction" db:"introduction"`
	IsVisible    bool      `json:"is_visible" db:"is_visible"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Post is a team-recruitment posting owned by its author.
type Post struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	AuthorID  uuid.UUID  `json:"author_id" db:"author_id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	Category  string     `json:"category" db:"category"`
	HeadCount int        `json:"head_count" db:"head_count"`
	Deadline  time.Time  `json:"deadline" db:"deadline"`
	ClosedAt  *time.Time `json:"closed_at,omitempty" db:"closed_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// IsOpen reports whether the post still accepts applications at the given
// instant. Posts close by explicit author action or deadline expiry;
// head-count is not checked here.
func (p *Post) IsOpen(now time.Time) bool {
	return p.ClosedAt == nil && now.Before(p.Deadline)
}

// Resume belongs to exactly one user. At most one resume per user has
// IsMain set; the repository keeps that invariant with a reset-then-set
// write.
type Resume struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OwnerID   uuid.UUID `json:"owner_id" db:"owner_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	IsMain    bool      `json:"is_main" db:"is_main"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Apply is a candidate's submission to a post. At most one per
// (applicant, post), enforced by a pre-check plus a unique constraint.
type Apply struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	PostID      uuid.UUID  `json:"post_id" db:"post_id"`
	ApplicantID uuid.UUID  `json:"applicant_id" db:"applicant_id"`
	ResumeID    *uuid.UUID `json:"resume_id,omitempty" db:"resume_id"`
	Reason      string     `json:"reason" db:"reason"`
	IsSelected  bool       `json:"is_selected" db:"is_selected"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// Analysis is an AI-produced score for one apply. Zero or more rows may
// exist per apply; readers always take the most recent one.
type Analysis struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ApplyID   uuid.UUID `json:"apply_id" db:"apply_id"`
	Score     int       `json:"score" db:"score"`
	Result    string    `json:"result" db:"result"`
	Summary   string    `json:"summary" db:"summary"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Review is either a profile review (no apply) or a peer review bound to a
// selected apply. ApplyID is nil exactly when Type is PROFILE.
type Review struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Type       ReviewType `json:"type" db:"type"`
	ReviewerID uuid.UUID  `json:"reviewer_id" db:"reviewer_id"`
	RevieweeID uuid.UUID  `json:"reviewee_id" db:"reviewee_id"`
	ApplyID    *uuid.UUID `json:"apply_id,omitempty" db:"apply_id"`
	Content    string     `json:"content" db:"content"`
	Rating     *int       `json:"rating,omitempty" db:"rating"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// Comment is a discussion entry on a post. ParentID is nil for top-level
// comments; a reply points at a top-level comment on the same post.
type Comment struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	PostID    uuid.UUID  `json:"post_id" db:"post_id"`
	AuthorID  uuid.UUID  `json:"author_id" db:"author_id"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty" db:"parent_id"`
	Content   string     `json:"content" db:"content"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// CommentThread is one comment joined with its author's nickname. For
// top-level comments Replies holds the thread below, oldest first.
type CommentThread struct {
	Comment  *Comment
	Nickname string
	Replies  []CommentThread
}

// ApplyDetail is the cross-entity projection served to the post author:
// the apply plus applicant, resume, skills and the latest analysis.
// Profile, Resume and Analysis may all be nil.
type ApplyDetail struct {
	Apply     *Apply
	Applicant *User
	Profile   *Profile
	Resume    *Resume
	Skills    []string
	Analysis  *Analysis
}

package storage

import (
	"context"
	"time"

	"teamup-api/internal/models"
	"teamup-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data operations.
// Create also provisions the user's empty profile row.
type UserRepository interface {
	Create(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ProfileRepository reads the public profile attached to a user.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

// PostRepository defines the interface for recruitment-post data operations.
type PostRepository interface {
	WithTx(tx pgx.Tx) PostRepository
	Create(ctx context.Context, req *dto.CreatePostRequest) (*models.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	List(ctx context.Context, req *dto.ListPostsRequest) ([]models.Post, error)
	// Close stamps closed_at when it is still NULL; closing twice is a no-op.
	Close(ctx context.Context, id uuid.UUID) (*models.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResumeRepository defines the interface for resume and skill data operations.
type ResumeRepository interface {
	Create(ctx context.Context, req *dto.CreateResumeRequest) (*models.Resume, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Resume, error)
	Update(ctx context.Context, req *dto.UpdateResumeRequest) (*models.Resume, error)
	// SetMain clears any other main resume of the owner and marks the given
	// one, in a single transaction.
	SetMain(ctx context.Context, ownerID, resumeID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListSkillNames(ctx context.Context, resumeID uuid.UUID) ([]string, error)
	SetSkills(ctx context.Context, resumeID uuid.UUID, names []string) error
}

// ApplyRepository defines the interface for apply data operations.
type ApplyRepository interface {
	WithTx(tx pgx.Tx) ApplyRepository
	Create(ctx context.Context, req *dto.CreateApplyRequest) (*models.Apply, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Apply, error)
	ExistsByApplicantAndPost(ctx context.Context, applicantID, postID uuid.UUID) (bool, error)
	ListByPost(ctx context.Context, req *dto.ListAppliesByPostRequest) ([]models.Apply, error)
	ListByApplicant(ctx context.Context, req *dto.ListMyAppliesRequest) ([]models.Apply, error)
	UpdateSelection(ctx context.Context, id uuid.UUID, selected bool) (*models.Apply, error)
	// DeleteIfNotSelected deletes the row only while is_selected is still
	// false and reports whether a row was removed. The condition and the
	// delete execute as one statement, so a concurrent selection wins.
	DeleteIfNotSelected(ctx context.Context, id uuid.UUID) (bool, error)
	CountSelectedByPost(ctx context.Context, postID uuid.UUID) (int, error)
}

// AnalysisRepository defines the interface for AI-analysis data operations.
// Rows are append-only; LatestByApply resolves re-runs by recency.
type AnalysisRepository interface {
	Create(ctx context.Context, req *dto.CreateAnalysisRequest) (*models.Analysis, error)
	LatestByApply(ctx context.Context, applyID uuid.UUID) (*models.Analysis, error)
}

// CommentRepository defines the interface for post-comment data operations.
// Deleting a top-level comment removes its replies via the FK cascade.
type CommentRepository interface {
	Create(ctx context.Context, req *dto.CreateCommentRecord) (*models.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewRepository defines the interface for review data operations.
type ReviewRepository interface {
	Create(ctx context.Context, req *dto.CreateReviewRecord) (*models.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	PeerReviewExists(ctx context.Context, reviewerID, revieweeID, applyID uuid.UUID) (bool, error)
	ListByReviewee(ctx context.Context, revieweeID uuid.UUID) ([]models.Review, error)
	ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]models.Review, error)
	ListPeerByApply(ctx context.Context, applyID uuid.UUID) ([]models.Review, error)
}

// RefreshTokenStore keeps opaque refresh tokens with a TTL.
type RefreshTokenStore interface {
	Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	// Resolve returns the owning user, or ErrNotFound for unknown/expired tokens.
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}

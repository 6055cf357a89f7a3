package services

import (
	"context"

	"teamup-api/internal/models"
	"teamup-api/internal/scoring"
	"teamup-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService defines the interface for account and session business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// PostService defines the interface for recruitment-post business logic.
type PostService interface {
	Create(ctx context.Context, req *dto.CreatePostRequest) (*models.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	List(ctx context.Context, req *dto.ListPostsRequest) ([]models.Post, error)
	Close(ctx context.Context, req *dto.ClosePostRequest) (*models.Post, error)
	Delete(ctx context.Context, req *dto.DeletePostRequest) error
}

// ResumeService defines the interface for resume business logic.
type ResumeService interface {
	Create(ctx context.Context, req *dto.CreateResumeRequest) (*models.Resume, []string, error)
	Get(ctx context.Context, req *dto.GetResumeRequest) (*models.Resume, []string, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]models.Resume, map[uuid.UUID][]string, error)
	Update(ctx context.Context, req *dto.UpdateResumeRequest) (*models.Resume, []string, error)
	SetMain(ctx context.Context, req *dto.SetMainResumeRequest) error
	Delete(ctx context.Context, req *dto.DeleteResumeRequest) error
}

// ApplyService defines the interface for apply lifecycle business logic.
type ApplyService interface {
	Submit(ctx context.Context, req *dto.SubmitApplyRequest) (*models.Apply, error)
	Cancel(ctx context.Context, req *dto.CancelApplyRequest) error
	ToggleSelection(ctx context.Context, req *dto.ToggleSelectionRequest) (*models.Apply, error)
	Detail(ctx context.Context, req *dto.GetApplyDetailRequest) (*models.ApplyDetail, error)
	ListByPost(ctx context.Context, req *dto.ListAppliesByPostRequest) ([]models.ApplyDetail, error)
	ListMine(ctx context.Context, req *dto.ListMyAppliesRequest) ([]models.Apply, error)
}

// CommentService defines the interface for post-comment business logic.
type CommentService interface {
	Create(ctx context.Context, req *dto.CreateCommentRequest) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]models.CommentThread, error)
	Update(ctx context.Context, req *dto.UpdateCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, req *dto.DeleteCommentRequest) error
}

// AnalysisRequester kicks off AI scoring for an apply. Implementations must
// not block the caller on the scoring round-trip.
type AnalysisRequester interface {
	RequestAnalysis(applyID uuid.UUID)
}

// AnalysisService runs and reads AI analyses.
type AnalysisService interface {
	AnalysisRequester
	// Analyze performs one scoring round-trip synchronously.
	Analyze(ctx context.Context, applyID uuid.UUID) (*models.Analysis, error)
	LatestByApply(ctx context.Context, applyID uuid.UUID) (*models.Analysis, error)
}

// ResumeScorer abstracts the scoring collaborator for testing.
type ResumeScorer interface {
	Score(ctx context.Context, applicantMaterial, postContext string) (*scoring.Result, error)
}

// ReviewService defines the interface for review business logic.
type ReviewService interface {
	CreateProfileReview(ctx context.Context, req *dto.CreateProfileReviewRequest) (*models.Review, error)
	CreatePeerReview(ctx context.Context, req *dto.CreatePeerReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, req *dto.DeleteReviewRequest) error
	ListReceived(ctx context.Context, revieweeID uuid.UUID) ([]models.Review, error)
	ListWritten(ctx context.Context, reviewerID uuid.UUID) ([]models.Review, error)
	ListPeerByApply(ctx context.Context, req *dto.ListPeerReviewsByApplyRequest) ([]models.Review, error)
}

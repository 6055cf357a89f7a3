package services

import (
	"context"
	"fmt"
	"log"

	"teamup-api/internal/models"
	"teamup-api/internal/storage"
	"teamup-api/internal/transport/dto"

	"github.com/google/uuid"
)

type reviewService struct {
	reviewRepo storage.ReviewRepository
	applyRepo  storage.ApplyRepository
	postRepo   storage.PostRepository
	userRepo   storage.UserRepository
}

// NewReviewService creates a new instance of ReviewService.
func NewReviewService(
	reviewRepo storage.ReviewRepository,
	applyRepo storage.ApplyRepository,
	postRepo storage.PostRepository,
	userRepo storage.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		applyRepo:  applyRepo,
		postRepo:   postRepo,
		userRepo:   userRepo,
	}
}

// CreateProfileReview writes a free-form review on another user's profile.
// Profile reviews are not deduplicated; a user may leave several.
func (s *reviewService) CreateProfileReview(ctx context.Context, req *dto.CreateProfileReviewRequest) (*models.Review, error) {
	if req.ReviewerID == req.RevieweeID {
		return nil, fmt.Errorf("%w: cannot review yourself", ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, req.RevieweeID); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching reviewee %s", req.RevieweeID))
	}

	review, err := s.reviewRepo.Create(ctx, &dto.CreateReviewRecord{
		Type:       models.ReviewTypeProfile,
		ReviewerID: req.ReviewerID,
		RevieweeID: req.RevieweeID,
		Content:    req.Content,
	})
	if err != nil {
		log.Printf("ReviewService: Error creating profile review: %v", err)
		return nil, mapRepoError(err, "creating profile review")
	}
	return review, nil
}

// CreatePeerReview writes a review between the two participants of a
// selected apply. One per (reviewer, reviewee, apply), enforced by a
// pre-check plus a unique index.
func (s *reviewService) CreatePeerReview(ctx context.Context, req *dto.CreatePeerReviewRequest) (*models.Review, error) {
	apply, err := s.applyRepo.GetByID(ctx, req.ApplyID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching apply %s for peer review", req.ApplyID))
	}
	post, err := s.postRepo.GetByID(ctx, apply.PostID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching post %s for peer review", apply.PostID))
	}

	if req.ReviewerID == req.RevieweeID {
		return nil, fmt.Errorf("%w: cannot review yourself", ErrValidation)
	}
	if !CanCreatePeerReview(apply, post, req.ReviewerID, req.RevieweeID) {
		if !apply.IsSelected {
			log.Printf("CreatePeerReview: Apply %s is not selected", apply.ID)
			return nil, fmt.Errorf("%w: peer reviews require a selected apply", ErrForbidden)
		}
		log.Printf("CreatePeerReview: Users %s/%s are not the participants of apply %s", req.ReviewerID, req.RevieweeID, apply.ID)
		return nil, fmt.Errorf("%w: both sides must be participants of the apply", ErrForbidden)
	}

	exists, err := s.reviewRepo.PeerReviewExists(ctx, req.ReviewerID, req.RevieweeID, req.ApplyID)
	if err != nil {
		return nil, mapRepoError(err, "checking for existing peer review")
	}
	if exists {
		return nil, fmt.Errorf("%w: already reviewed this apply", ErrConflict)
	}

	review, err := s.reviewRepo.Create(ctx, &dto.CreateReviewRecord{
		Type:       models.ReviewTypePeer,
		ReviewerID: req.ReviewerID,
		RevieweeID: req.RevieweeID,
		ApplyID:    &req.ApplyID,
		Content:    req.Content,
		Rating:     req.Rating,
	})
	if err != nil {
		log.Printf("ReviewService: Error creating peer review: %v", err)
		return nil, mapRepoError(err, "creating peer review")
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, req *dto.DeleteReviewRequest) error {
	review, err := s.reviewRepo.GetByID(ctx, req.ReviewID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching review %s for delete", req.ReviewID))
	}
	if !CanDeleteReview(review, req.ActorID) {
		log.Printf("DeleteReview: Forbidden attempt by user %s on review %s written by %s", req.ActorID, review.ID, review.ReviewerID)
		return ErrForbidden
	}

	if err := s.reviewRepo.Delete(ctx, req.ReviewID); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting review %s", req.ReviewID))
	}
	return nil
}

func (s *reviewService) ListReceived(ctx context.Context, revieweeID uuid.UUID) ([]models.Review, error) {
	reviews, err := s.reviewRepo.ListByReviewee(ctx, revieweeID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing reviews for user %s", revieweeID))
	}
	return reviews, nil
}

func (s *reviewService) ListWritten(ctx context.Context, reviewerID uuid.UUID) ([]models.Review, error) {
	reviews, err := s.reviewRepo.ListByReviewer(ctx, reviewerID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing reviews written by %s", reviewerID))
	}
	return reviews, nil
}

// ListPeerByApply returns the peer reviews on one apply. Only the apply's
// participants may read them.
func (s *reviewService) ListPeerByApply(ctx context.Context, req *dto.ListPeerReviewsByApplyRequest) ([]models.Review, error) {
	apply, err := s.applyRepo.GetByID(ctx, req.ApplyID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching apply %s for review list", req.ApplyID))
	}
	post, err := s.postRepo.GetByID(ctx, apply.PostID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching post %s for review list", apply.PostID))
	}
	if !IsApplyParticipant(apply, post, req.ActorID) {
		return nil, ErrForbidden
	}

	reviews, err := s.reviewRepo.ListPeerByApply(ctx, req.ApplyID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing peer reviews for apply %s", req.ApplyID))
	}
	return reviews, nil
}

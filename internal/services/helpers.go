package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"teamup-api/internal/models"
	"teamup-api/internal/storage"
	"teamup-api/internal/transport/dto"
)

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		// The repo layer should provide more context for conflict errors if possible
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

func MapUserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func MapPostToResponse(post *models.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Content:   post.Content,
		Category:  post.Category,
		HeadCount: post.HeadCount,
		Deadline:  post.Deadline,
		ClosedAt:  post.ClosedAt,
		IsOpen:    post.IsOpen(time.Now()),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func MapResumeToResponse(resume *models.Resume, skills []string) dto.ResumeResponse {
	if skills == nil {
		skills = []string{}
	}
	return dto.ResumeResponse{
		ID:        resume.ID,
		OwnerID:   resume.OwnerID,
		Title:     resume.Title,
		Content:   resume.Content,
		IsMain:    resume.IsMain,
		Skills:    skills,
		CreatedAt: resume.CreatedAt,
		UpdatedAt: resume.UpdatedAt,
	}
}

func MapApplyToResponse(apply *models.Apply) dto.ApplyResponse {
	return dto.ApplyResponse{
		ID:          apply.ID,
		PostID:      apply.PostID,
		ApplicantID: apply.ApplicantID,
		ResumeID:    apply.ResumeID,
		Reason:      apply.Reason,
		IsSelected:  apply.IsSelected,
		CreatedAt:   apply.CreatedAt,
		UpdatedAt:   apply.UpdatedAt,
	}
}

func MapAnalysisToResponse(analysis *models.Analysis) dto.AnalysisResponse {
	return dto.AnalysisResponse{
		ID:        analysis.ID,
		ApplyID:   analysis.ApplyID,
		Score:     analysis.Score,
		Result:    analysis.Result,
		Summary:   analysis.Summary,
		CreatedAt: analysis.CreatedAt,
	}
}

func MapReviewToResponse(review *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:         review.ID,
		Type:       review.Type,
		ReviewerID: review.ReviewerID,
		RevieweeID: review.RevieweeID,
		ApplyID:    review.ApplyID,
		Content:    review.Content,
		Rating:     review.Rating,
		CreatedAt:  review.CreatedAt,
	}
}

func MapCommentToResponse(comment *models.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		ParentID:  comment.ParentID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

func MapCommentThreadToResponse(thread *models.CommentThread) dto.CommentResponse {
	resp := MapCommentToResponse(thread.Comment)
	resp.Nickname = thread.Nickname
	for i := range thread.Replies {
		resp.Replies = append(resp.Replies, MapCommentThreadToResponse(&thread.Replies[i]))
	}
	return resp
}

func MapApplyDetailToResponse(detail *models.ApplyDetail) dto.ApplyDetailResponse {
	resp := dto.ApplyDetailResponse{
		Apply:  MapApplyToResponse(detail.Apply),
		Skills: detail.Skills,
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if detail.Applicant != nil {
		u := MapUserToResponse(detail.Applicant)
		resp.Applicant = &u
	}
	if detail.Profile != nil {
		resp.Nickname = detail.Profile.Nickname
	}
	if detail.Resume != nil {
		r := MapResumeToResponse(detail.Resume, detail.Skills)
		resp.Resume = &r
	}
	if detail.Analysis != nil {
		a := MapAnalysisToResponse(detail.Analysis)
		resp.Analysis = &a
	}
	return resp
}

package services

import (
	"teamup-api/internal/models"

	"github.com/google/uuid"
)

// Pure authorization predicates. Services call these after loading the
// involved rows so the rules stay in one place and unit-test without a
// database.

// CanUseResume reports whether the actor may attach the resume to an apply.
func CanUseResume(resume *models.Resume, actorID uuid.UUID) bool {
	return resume.OwnerID == actorID
}

// CanManagePost reports whether the actor may close, delete or review
// applies on the post.
func CanManagePost(post *models.Post, actorID uuid.UUID) bool {
	return post.AuthorID == actorID
}

// CanCancelApply reports whether the actor owns the apply.
func CanCancelApply(apply *models.Apply, actorID uuid.UUID) bool {
	return apply.ApplicantID == actorID
}

// CanToggleSelection reports whether the actor authors the apply's post.
func CanToggleSelection(post *models.Post, actorID uuid.UUID) bool {
	return post.AuthorID == actorID
}

// IsApplyParticipant reports whether the actor is the applicant or the post
// author. Peer reviews and peer-review reads are participant-only.
func IsApplyParticipant(apply *models.Apply, post *models.Post, actorID uuid.UUID) bool {
	return apply.ApplicantID == actorID || post.AuthorID == actorID
}

// CanCreatePeerReview checks the peer review eligibility rules: both sides
// must be participants of a selected apply, on opposite ends, and nobody
// reviews themselves.
func CanCreatePeerReview(apply *models.Apply, post *models.Post, reviewerID, revieweeID uuid.UUID) bool {
	if !apply.IsSelected {
		return false
	}
	if reviewerID == revieweeID {
		return false
	}
	if !IsApplyParticipant(apply, post, reviewerID) || !IsApplyParticipant(apply, post, revieweeID) {
		return false
	}
	return true
}

// CanModifyComment reports whether the actor wrote the comment.
func CanModifyComment(comment *models.Comment, actorID uuid.UUID) bool {
	return comment.AuthorID == actorID
}

// CanDeleteReview reports whether the actor may remove the review. The
// reviewer always may; a profile review may also be removed by the person it
// is about.
func CanDeleteReview(review *models.Review, actorID uuid.UUID) bool {
	if review.ReviewerID == actorID {
		return true
	}
	return review.Type == models.ReviewTypeProfile && review.RevieweeID == actorID
}

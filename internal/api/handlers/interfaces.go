package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the auth and user routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	GetUserByID(c *gin.Context)
}

// PostHandlerInterface defines the methods needed by the post routes.
type PostHandlerInterface interface {
	CreatePost(c *gin.Context)
	GetPostByID(c *gin.Context)
	ListPosts(c *gin.Context)
	ClosePost(c *gin.Context)
	DeletePost(c *gin.Context)
}

// ResumeHandlerInterface defines the methods needed by the resume routes.
type ResumeHandlerInterface interface {
	CreateResume(c *gin.Context)
	GetResumeByID(c *gin.Context)
	ListMyResumes(c *gin.Context)
	UpdateResume(c *gin.Context)
	SetMainResume(c *gin.Context)
	DeleteResume(c *gin.Context)
}

// ApplyHandlerInterface defines the methods needed by the apply routes.
type ApplyHandlerInterface interface {
	SubmitApply(c *gin.Context)
	CancelApply(c *gin.Context)
	ToggleSelection(c *gin.Context)
	GetApplyDetail(c *gin.Context)
	ListAppliesByPost(c *gin.Context)
	ListMyApplies(c *gin.Context)
}

// CommentHandlerInterface defines the methods needed by the comment routes.
type CommentHandlerInterface interface {
	CreateComment(c *gin.Context)
	ListCommentsByPost(c *gin.Context)
	UpdateComment(c *gin.Context)
	DeleteComment(c *gin.Context)
}

// ReviewHandlerInterface defines the methods needed by the review routes.
type ReviewHandlerInterface interface {
	CreateProfileReview(c *gin.Context)
	CreatePeerReview(c *gin.Context)
	DeleteReview(c *gin.Context)
	ListReviewsForUser(c *gin.Context)
	ListMyWrittenReviews(c *gin.Context)
	ListPeerReviewsByApply(c *gin.Context)
}

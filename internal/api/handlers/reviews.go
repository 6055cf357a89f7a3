package handlers

import (
	"net/http"

	"teamup-api/internal/api/middleware"
	"teamup-api/internal/services"
	"teamup-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ReviewHandler holds dependencies for review operations.
type ReviewHandler struct {
	service   services.ReviewService
	validator *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service services.ReviewService, validate *validator.Validate) *ReviewHandler {
	return &ReviewHandler{service: service, validator: validate}
}

var _ ReviewHandlerInterface = (*ReviewHandler)(nil)

// CreateProfileReview godoc
//
//	@Summary		Review a user's profile
//	@Description	Leaves a free-form review on another user's profile.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			review	body		dto.CreateProfileReviewRequest	true	"Review data"
//	@Success		201		{object}	dto.ReviewResponse				"Review created successfully"
//	@Failure		400		{object}	map[string]string				"Bad Request - Invalid input or self review"
//	@Failure		401		{object}	map[string]string				"Unauthorized"
//	@Failure		404		{object}	map[string]string				"Reviewee Not Found"
//	@Failure		500		{object}	map[string]string				"Internal Server Error"
//	@Router			/reviews/profile [post]
//	@Security		BearerAuth
func (h *ReviewHandler) CreateProfileReview(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateProfileReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ReviewerID = userID

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	review, err := h.service.CreateProfileReview(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create review")
		return
	}

	c.JSON(http.StatusCreated, services.MapReviewToResponse(review))
}

// CreatePeerReview godoc
//
//	@Summary		Review a collaborator
//	@Description	Leaves a review between the two participants of a selected apply. One per reviewer, reviewee and apply.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			review	body		dto.CreatePeerReviewRequest	true	"Review data"
//	@Success		201		{object}	dto.ReviewResponse			"Review created successfully"
//	@Failure		400		{object}	map[string]string			"Bad Request - Invalid input or self review"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		403		{object}	map[string]string			"Forbidden - Not a participant or apply not selected"
//	@Failure		404		{object}	map[string]string			"Apply Not Found"
//	@Failure		409		{object}	map[string]string			"Conflict - Already reviewed"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/reviews/peer [post]
//	@Security		BearerAuth
func (h *ReviewHandler) CreatePeerReview(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreatePeerReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ReviewerID = userID

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	review, err := h.service.CreatePeerReview(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create review")
		return
	}

	c.JSON(http.StatusCreated, services.MapReviewToResponse(review))
}

// DeleteReview godoc
//
//	@Summary		Delete a review
//	@Description	Deletes a review. The reviewer may delete any of their reviews; a profile review may also be deleted by the user it is about.
//	@Tags			reviews
//	@Param			id	path	string	true	"Review ID"	Format(uuid)
//	@Success		204	"Review deleted"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Neither reviewer nor profile owner"
//	@Failure		404	{object}	map[string]string	"Review Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/reviews/{id} [delete]
//	@Security		BearerAuth
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), &dto.DeleteReviewRequest{ReviewID: id, ActorID: userID}); err != nil {
		respondServiceError(c, err, "Failed to delete review")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListReviewsForUser godoc
//
//	@Summary		List reviews received by a user
//	@Description	Lists all reviews where the given user is the reviewee, newest first.
//	@Tags			reviews
//	@Produce		json
//	@Param			id	path		string				true	"User ID"	Format(uuid)
//	@Success		200	{array}		dto.ReviewResponse	"Successfully retrieved reviews"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/users/{id}/reviews [get]
//	@Security		BearerAuth
func (h *ReviewHandler) ListReviewsForUser(c *gin.Context) {
	revieweeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	reviews, err := h.service.ListReceived(c.Request.Context(), revieweeID)
	if err != nil {
		respondServiceError(c, err, "Failed to list reviews")
		return
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, services.MapReviewToResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// ListMyWrittenReviews godoc
//
//	@Summary		List reviews I wrote
//	@Description	Lists all reviews written by the authenticated user, newest first.
//	@Tags			reviews
//	@Produce		json
//	@Success		200	{array}		dto.ReviewResponse	"Successfully retrieved reviews"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/reviews/written [get]
//	@Security		BearerAuth
func (h *ReviewHandler) ListMyWrittenReviews(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reviews, err := h.service.ListWritten(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list reviews")
		return
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, services.MapReviewToResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// ListPeerReviewsByApply godoc
//
//	@Summary		List peer reviews on an apply
//	@Description	Lists the peer reviews exchanged on one apply. Only the apply's participants may view.
//	@Tags			reviews
//	@Produce		json
//	@Param			id	path		string				true	"Apply ID"	Format(uuid)
//	@Success		200	{array}		dto.ReviewResponse	"Successfully retrieved reviews"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not a participant"
//	@Failure		404	{object}	map[string]string	"Apply Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applies/{id}/reviews [get]
//	@Security		BearerAuth
func (h *ReviewHandler) ListPeerReviewsByApply(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid apply ID format"})
		return
	}

	reviews, err := h.service.ListPeerByApply(c.Request.Context(), &dto.ListPeerReviewsByApplyRequest{ApplyID: applyID, ActorID: userID})
	if err != nil {
		respondServiceError(c, err, "Failed to list reviews")
		return
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, services.MapReviewToResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, responses)
}

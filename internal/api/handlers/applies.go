package handlers

import (
	"log"
	"net/http"

	"teamup-api/internal/api/middleware"
	"teamup-api/internal/services"
	"teamup-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplyHandler holds dependencies for apply lifecycle operations.
type ApplyHandler struct {
	service   services.ApplyService
	validator *validator.Validate
}

// NewApplyHandler creates a new ApplyHandler.
func NewApplyHandler(service services.ApplyService, validate *validator.Validate) *ApplyHandler {
	return &ApplyHandler{service: service, validator: validate}
}

var _ ApplyHandlerInterface = (*ApplyHandler)(nil)

// SubmitApply godoc
//
//	@Summary		Apply to a post
//	@Description	Submits an apply to an open post. One apply per user per post. AI scoring runs in the background after submission.
//	@Tags			applies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Post ID"	Format(uuid)
//	@Param			apply	body		dto.SubmitApplyRequest	true	"Apply data"
//	@Success		201		{object}	dto.ApplyResponse		"Apply created successfully"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		403		{object}	map[string]string		"Forbidden - Own post or foreign resume"
//	@Failure		404		{object}	map[string]string		"Post Not Found"
//	@Failure		409		{object}	map[string]string		"Conflict - Post closed or already applied"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/posts/{id}/applies [post]
//	@Security		BearerAuth
func (h *ApplyHandler) SubmitApply(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("SubmitApply: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format"})
		return
	}

	var req dto.SubmitApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.PostID = postID
	req.ApplicantID = userID

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	apply, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to submit apply")
		return
	}

	c.JSON(http.StatusCreated, services.MapApplyToResponse(apply))
}

// CancelApply godoc
//
//	@Summary		Cancel an apply
//	@Description	Withdraws the authenticated user's own apply. Selected applies cannot be cancelled.
//	@Tags			applies
//	@Param			id	path	string	true	"Apply ID"	Format(uuid)
//	@Success		204	"Apply cancelled"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the applicant"
//	@Failure		404	{object}	map[string]string	"Apply Not Found"
//	@Failure		409	{object}	map[string]string	"Conflict - Apply is selected"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applies/{id} [delete]
//	@Security		BearerAuth
func (h *ApplyHandler) CancelApply(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid apply ID format"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), &dto.CancelApplyRequest{ApplyID: id, ActorID: userID}); err != nil {
		respondServiceError(c, err, "Failed to cancel apply")
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleSelection godoc
//
//	@Summary		Select or unselect an apply
//	@Description	Sets the selection flag. Only the post author may do this; repeating the same value is a no-op.
//	@Tags			applies
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"Apply ID"	Format(uuid)
//	@Param			selection	body		dto.ToggleSelectionBody		true	"Desired selection state"
//	@Success		200			{object}	dto.ApplyResponse			"Selection updated"
//	@Failure		400			{object}	map[string]string			"Bad Request - Invalid input"
//	@Failure		401			{object}	map[string]string			"Unauthorized"
//	@Failure		403			{object}	map[string]string			"Forbidden - Not the post author"
//	@Failure		404			{object}	map[string]string			"Apply Not Found"
//	@Failure		500			{object}	map[string]string			"Internal Server Error"
//	@Router			/applies/{id}/selection [patch]
//	@Security		BearerAuth
func (h *ApplyHandler) ToggleSelection(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid apply ID format"})
		return
	}

	var body dto.ToggleSelectionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: is_selected is required"})
		return
	}

	apply, err := h.service.ToggleSelection(c.Request.Context(), &dto.ToggleSelectionRequest{
		ApplyID:  id,
		ActorID:  userID,
		Selected: *body.IsSelected,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to update selection")
		return
	}

	c.JSON(http.StatusOK, services.MapApplyToResponse(apply))
}

// GetApplyDetail godoc
//
//	@Summary		Get apply detail
//	@Description	Retrieves an apply joined with applicant, resume, skills and the latest AI analysis. Only the post author may view.
//	@Tags			applies
//	@Produce		json
//	@Param			id	path		string					true	"Apply ID"	Format(uuid)
//	@Success		200	{object}	dto.ApplyDetailResponse	"Successfully retrieved detail"
//	@Failure		400	{object}	map[string]string		"Invalid ID format"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		403	{object}	map[string]string		"Forbidden - Not the post author"
//	@Failure		404	{object}	map[string]string		"Apply Not Found"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/applies/{id} [get]
//	@Security		BearerAuth
func (h *ApplyHandler) GetApplyDetail(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid apply ID format"})
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), &dto.GetApplyDetailRequest{ApplyID: id, ActorID: userID})
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve apply detail")
		return
	}

	c.JSON(http.StatusOK, services.MapApplyDetailToResponse(detail))
}

// ListAppliesByPost godoc
//
//	@Summary		List applies on a post
//	@Description	Lists applies on one post, newest first, each joined with resume, skills and latest analysis. Only the post author may view.
//	@Tags			applies
//	@Produce		json
//	@Param			id		path		string					true	"Post ID"	Format(uuid)
//	@Param			limit	query		int						false	"Page size"		default(10)
//	@Param			offset	query		int						false	"Page offset"	default(0)
//	@Success		200		{array}		dto.ApplyDetailResponse	"Successfully retrieved applies"
//	@Failure		400		{object}	map[string]string	"Invalid ID format"
//	@Failure		401		{object}	map[string]string	"Unauthorized"
//	@Failure		403		{object}	map[string]string	"Forbidden - Not the post author"
//	@Failure		404		{object}	map[string]string	"Post Not Found"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/posts/{id}/applies [get]
//	@Security		BearerAuth
func (h *ApplyHandler) ListAppliesByPost(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format"})
		return
	}

	var req dto.ListAppliesByPostRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.PostID = postID
	req.ActorID = userID

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	details, err := h.service.ListByPost(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to list applies")
		return
	}

	responses := make([]dto.ApplyDetailResponse, 0, len(details))
	for i := range details {
		responses = append(responses, services.MapApplyDetailToResponse(&details[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// ListMyApplies godoc
//
//	@Summary		List my applies
//	@Description	Lists applies submitted by the authenticated user, newest first. Use selected_only=true to keep only selected ones.
//	@Tags			applies
//	@Produce		json
//	@Param			selected_only	query		bool				false	"Only selected applies"
//	@Param			limit			query		int					false	"Page size"		default(10)
//	@Param			offset			query		int					false	"Page offset"	default(0)
//	@Success		200				{array}		dto.ApplyResponse	"Successfully retrieved applies"
//	@Failure		401				{object}	map[string]string	"Unauthorized"
//	@Failure		500				{object}	map[string]string	"Internal Server Error"
//	@Router			/applies/my [get]
//	@Security		BearerAuth
func (h *ApplyHandler) ListMyApplies(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListMyAppliesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.ApplicantID = userID

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	applies, err := h.service.ListMine(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to list applies")
		return
	}

	responses := make([]dto.ApplyResponse, 0, len(applies))
	for i := range applies {
		responses = append(responses, services.MapApplyToResponse(&applies[i]))
	}
	c.JSON(http.StatusOK, responses)
}

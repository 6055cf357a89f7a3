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

// CommentHandler holds dependencies for comment operations.
type CommentHandler struct {
	service   services.CommentService
	validator *validator.Validate
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service services.CommentService, validate *validator.Validate) *CommentHandler {
	return &CommentHandler{service: service, validator: validate}
}

var _ CommentHandlerInterface = (*CommentHandler)(nil)

// CreateComment godoc
//
//	@Summary		Comment on a post
//	@Description	Writes a comment on a post, or a reply when parent_id names a top-level comment of the same post.
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Post ID"	Format(uuid)
//	@Param			comment	body		dto.CreateCommentRequest	true	"Comment data"
//	@Success		201		{object}	dto.CommentResponse		"Comment created successfully"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid input or nested reply"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		404		{object}	map[string]string		"Post or Parent Not Found"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/posts/{id}/comments [post]
//	@Security		BearerAuth
func (h *CommentHandler) CreateComment(c *gin.Context) {
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

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.PostID = postID
	req.AuthorID = userID

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	comment, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, services.MapCommentToResponse(comment))
}

// ListCommentsByPost godoc
//
//	@Summary		List comments on a post
//	@Description	Lists the post's comments threaded, oldest first, replies under their parents. Public.
//	@Tags			comments
//	@Produce		json
//	@Param			id	path		string				true	"Post ID"	Format(uuid)
//	@Success		200	{array}		dto.CommentResponse	"Successfully retrieved comments"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		404	{object}	map[string]string	"Post Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/posts/{id}/comments [get]
func (h *CommentHandler) ListCommentsByPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format"})
		return
	}

	threads, err := h.service.ListByPost(c.Request.Context(), postID)
	if err != nil {
		respondServiceError(c, err, "Failed to list comments")
		return
	}

	responses := make([]dto.CommentResponse, 0, len(threads))
	for i := range threads {
		responses = append(responses, services.MapCommentThreadToResponse(&threads[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// UpdateComment godoc
//
//	@Summary		Edit a comment
//	@Description	Rewrites the body of a comment. Only its author may edit it.
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Comment ID"	Format(uuid)
//	@Param			comment	body		dto.UpdateCommentRequest	true	"New content"
//	@Success		200		{object}	dto.CommentResponse		"Comment updated successfully"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		403		{object}	map[string]string		"Forbidden - Not the author"
//	@Failure		404		{object}	map[string]string		"Comment Not Found"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/comments/{id} [patch]
//	@Security		BearerAuth
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID format"})
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.CommentID = id
	req.ActorID = userID

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	comment, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update comment")
		return
	}

	c.JSON(http.StatusOK, services.MapCommentToResponse(comment))
}

// DeleteComment godoc
//
//	@Summary		Delete a comment
//	@Description	Deletes a comment and its replies. Only its author may delete it.
//	@Tags			comments
//	@Param			id	path	string	true	"Comment ID"	Format(uuid)
//	@Success		204	"Comment deleted"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the author"
//	@Failure		404	{object}	map[string]string	"Comment Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/comments/{id} [delete]
//	@Security		BearerAuth
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), &dto.DeleteCommentRequest{CommentID: id, ActorID: userID}); err != nil {
		respondServiceError(c, err, "Failed to delete comment")
		return
	}

	c.Status(http.StatusNoContent)
}

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

// PostHandler holds dependencies for recruitment-post operations.
type PostHandler struct {
	service   services.PostService
	validator *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostService, validate *validator.Validate) *PostHandler {
	return &PostHandler{service: service, validator: validate}
}

var _ PostHandlerInterface = (*PostHandler)(nil)

// CreatePost godoc
//
//	@Summary		Create a recruitment post
//	@Description	Creates a post owned by the authenticated user.
//	@Tags			posts
//	@Accept			json
//	@Produce		json
//	@Param			post	body		dto.CreatePostRequest	true	"Post data"
//	@Success		201		{object}	dto.PostResponse		"Post created successfully"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/posts [post]
//	@Security		BearerAuth
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("CreatePost: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.AuthorID = userID

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	post, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, services.MapPostToResponse(post))
}

// GetPostByID godoc
//
//	@Summary		Get a post by ID
//	@Description	Retrieves one recruitment post.
//	@Tags			posts
//	@Produce		json
//	@Param			id	path		string				true	"Post ID"	Format(uuid)
//	@Success		200	{object}	dto.PostResponse	"Successfully retrieved post"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		404	{object}	map[string]string	"Post Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/posts/{id} [get]
func (h *PostHandler) GetPostByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format"})
		return
	}

	post, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve post")
		return
	}

	c.JSON(http.StatusOK, services.MapPostToResponse(post))
}

// ListPosts godoc
//
//	@Summary		List posts
//	@Description	Lists recruitment posts, newest first. Use open_only=true to hide closed and expired posts.
//	@Tags			posts
//	@Produce		json
//	@Param			open_only	query		bool				false	"Only posts still accepting applications"
//	@Param			limit		query		int					false	"Page size"		default(10)
//	@Param			offset		query		int					false	"Page offset"	default(0)
//	@Success		200			{array}		dto.PostResponse	"Successfully retrieved posts"
//	@Failure		400			{object}	map[string]string	"Bad Request - Invalid query"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	var req dto.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	posts, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to list posts")
		return
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, services.MapPostToResponse(&posts[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// ClosePost godoc
//
//	@Summary		Close a post
//	@Description	Stops the post from accepting applications. Only the author may close; closing twice is a no-op.
//	@Tags			posts
//	@Produce		json
//	@Param			id	path		string				true	"Post ID"	Format(uuid)
//	@Success		200	{object}	dto.PostResponse	"Post closed"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the author"
//	@Failure		404	{object}	map[string]string	"Post Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/posts/{id}/close [patch]
//	@Security		BearerAuth
func (h *PostHandler) ClosePost(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format"})
		return
	}

	post, err := h.service.Close(c.Request.Context(), &dto.ClosePostRequest{PostID: id, ActorID: userID})
	if err != nil {
		respondServiceError(c, err, "Failed to close post")
		return
	}

	c.JSON(http.StatusOK, services.MapPostToResponse(post))
}

// DeletePost godoc
//
//	@Summary		Delete a post
//	@Description	Deletes the post and all applies on it. Only the author may delete.
//	@Tags			posts
//	@Param			id	path	string	true	"Post ID"	Format(uuid)
//	@Success		204	"Post deleted"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the author"
//	@Failure		404	{object}	map[string]string	"Post Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/posts/{id} [delete]
//	@Security		BearerAuth
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), &dto.DeletePostRequest{PostID: id, ActorID: userID}); err != nil {
		respondServiceError(c, err, "Failed to delete post")
		return
	}

	c.Status(http.StatusNoContent)
}

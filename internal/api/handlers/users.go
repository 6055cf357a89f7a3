package handlers

import (
	"net/http"

	"teamup-api/internal/services"
	"teamup-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserHandler holds dependencies for account and session operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{service: service, validator: validate}
}

var _ UserHandlerInterface = (*UserHandler)(nil)

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Creates an account with an empty profile.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		dto.RegisterRequest	true	"Registration data"
//	@Success		201		{object}	dto.UserResponse	"User created successfully"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		409		{object}	map[string]string	"Conflict - Email already registered"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, services.MapUserToResponse(user))
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Exchanges email and password for an access and refresh token pair.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	true	"Login credentials"
//	@Success		200			{object}	dto.TokenResponse	"Tokens issued"
//	@Failure		400			{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		401			{object}	map[string]string	"Unauthorized - Invalid credentials"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	_, tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Refresh godoc
//
//	@Summary		Refresh tokens
//	@Description	Rotates a refresh token into a new token pair.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		dto.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	dto.TokenResponse	"Tokens issued"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string	"Unauthorized - Unknown or expired token"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to refresh tokens")
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Invalidates the given refresh token.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		dto.LogoutRequest	true	"Refresh token"
//	@Success		204		"Logged out"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err, "Failed to log out")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUserByID godoc
//
//	@Summary		Get a user by ID
//	@Description	Retrieves the public account details of a user.
//	@Tags			users
//	@Produce		json
//	@Param			id	path		string				true	"User ID"	Format(uuid)
//	@Success		200	{object}	dto.UserResponse	"Successfully retrieved user"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		404	{object}	map[string]string	"User Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/users/{id} [get]
//	@Security		BearerAuth
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, services.MapUserToResponse(user))
}

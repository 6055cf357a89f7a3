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

// ResumeHandler holds dependencies for resume operations.
type ResumeHandler struct {
	service   services.ResumeService
	validator *validator.Validate
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(service services.ResumeService, validate *validator.Validate) *ResumeHandler {
	return &ResumeHandler{service: service, validator: validate}
}

var _ ResumeHandlerInterface = (*ResumeHandler)(nil)

// CreateResume godoc
//
//	@Summary		Create a resume
//	@Description	Creates a resume owned by the authenticated user, with optional skills.
//	@Tags			resumes
//	@Accept			json
//	@Produce		json
//	@Param			resume	body		dto.CreateResumeRequest	true	"Resume data"
//	@Success		201		{object}	dto.ResumeResponse		"Resume created successfully"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/resumes [post]
//	@Security		BearerAuth
func (h *ResumeHandler) CreateResume(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.OwnerID = userID

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	resume, skills, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create resume")
		return
	}

	c.JSON(http.StatusCreated, services.MapResumeToResponse(resume, skills))
}

// GetResumeByID godoc
//
//	@Summary		Get a resume by ID
//	@Description	Retrieves one resume with its skills.
//	@Tags			resumes
//	@Produce		json
//	@Param			id	path		string				true	"Resume ID"	Format(uuid)
//	@Success		200	{object}	dto.ResumeResponse	"Successfully retrieved resume"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"Resume Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/resumes/{id} [get]
//	@Security		BearerAuth
func (h *ResumeHandler) GetResumeByID(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume ID format"})
		return
	}

	resume, skills, err := h.service.Get(c.Request.Context(), &dto.GetResumeRequest{ResumeID: id, ActorID: userID})
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve resume")
		return
	}

	c.JSON(http.StatusOK, services.MapResumeToResponse(resume, skills))
}

// ListMyResumes godoc
//
//	@Summary		List my resumes
//	@Description	Lists all resumes owned by the authenticated user.
//	@Tags			resumes
//	@Produce		json
//	@Success		200	{array}		dto.ResumeResponse	"Successfully retrieved resumes"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/resumes/my [get]
//	@Security		BearerAuth
func (h *ResumeHandler) ListMyResumes(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resumes, skillsByResume, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list resumes")
		return
	}

	responses := make([]dto.ResumeResponse, 0, len(resumes))
	for i := range resumes {
		responses = append(responses, services.MapResumeToResponse(&resumes[i], skillsByResume[resumes[i].ID]))
	}
	c.JSON(http.StatusOK, responses)
}

// UpdateResume godoc
//
//	@Summary		Update a resume
//	@Description	Patches title, content and/or skills. Only the owner may update.
//	@Tags			resumes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Resume ID"	Format(uuid)
//	@Param			resume	body		dto.UpdateResumeRequest	true	"Fields to update"
//	@Success		200		{object}	dto.ResumeResponse		"Resume updated"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		403		{object}	map[string]string		"Forbidden - Not the owner"
//	@Failure		404		{object}	map[string]string		"Resume Not Found"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/resumes/{id} [patch]
//	@Security		BearerAuth
func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume ID format"})
		return
	}

	var req dto.UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ResumeID = id
	req.OwnerID = userID

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	resume, skills, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update resume")
		return
	}

	c.JSON(http.StatusOK, services.MapResumeToResponse(resume, skills))
}

// SetMainResume godoc
//
//	@Summary		Mark a resume as main
//	@Description	Makes this the owner's main resume, clearing the flag from any other.
//	@Tags			resumes
//	@Param			id	path	string	true	"Resume ID"	Format(uuid)
//	@Success		204	"Main resume set"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the owner"
//	@Failure		404	{object}	map[string]string	"Resume Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/resumes/{id}/main [patch]
//	@Security		BearerAuth
func (h *ResumeHandler) SetMainResume(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume ID format"})
		return
	}

	if err := h.service.SetMain(c.Request.Context(), &dto.SetMainResumeRequest{ResumeID: id, OwnerID: userID}); err != nil {
		respondServiceError(c, err, "Failed to set main resume")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteResume godoc
//
//	@Summary		Delete a resume
//	@Description	Deletes the resume. Applies that referenced it keep working without it.
//	@Tags			resumes
//	@Param			id	path	string	true	"Resume ID"	Format(uuid)
//	@Success		204	"Resume deleted"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the owner"
//	@Failure		404	{object}	map[string]string	"Resume Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/resumes/{id} [delete]
//	@Security		BearerAuth
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), &dto.DeleteResumeRequest{ResumeID: id, OwnerID: userID}); err != nil {
		respondServiceError(c, err, "Failed to delete resume")
		return
	}

	c.Status(http.StatusNoContent)
}

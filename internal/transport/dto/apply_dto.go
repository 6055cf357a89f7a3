package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitApplyRequest struct {
	PostID      uuid.UUID  `json:"-"`         // From path
	ApplicantID uuid.UUID  `json:"-"`         // Set from user context
	ResumeID    *uuid.UUID `json:"resume_id"` // Optional; must belong to the applicant
	Reason      string     `json:"reason" validate:"required"`
}

// CreateApplyRequest is used internally by the Submit service method.
type CreateApplyRequest struct {
	PostID      uuid.UUID
	ApplicantID uuid.UUID
	ResumeID    *uuid.UUID
	Reason      string
}

type CancelApplyRequest struct {
	ApplyID uuid.UUID `json:"-" validate:"required"` // From path
	ActorID uuid.UUID `json:"-"`                     // Set from user context
}

type ToggleSelectionRequest struct {
	ApplyID  uuid.UUID `json:"-" validate:"required"` // From path
	ActorID  uuid.UUID `json:"-"`                     // Set from user context (must be post author)
	Selected bool      `json:"is_selected"`
}

// ToggleSelectionBody is the request body for the selection endpoint.
// Pointer so that an explicit false still binds.
type ToggleSelectionBody struct {
	IsSelected *bool `json:"is_selected" binding:"required"`
}

type GetApplyDetailRequest struct {
	ApplyID uuid.UUID `json:"-" validate:"required"` // From path
	ActorID uuid.UUID `json:"-"`                     // Set from user context (must be post author)
}

type ListAppliesByPostRequest struct {
	PostID  uuid.UUID `json:"-" validate:"required"` // From path
	ActorID uuid.UUID `json:"-"`                     // Set from user context (must be post author)
	Limit   int       `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset  int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type ListMyAppliesRequest struct {
	ApplicantID  uuid.UUID `json:"-" validate:"required"` // Set from user context
	SelectedOnly bool      `form:"selected_only,default=false"`
	Limit        int       `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset       int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type ApplyResponse struct {
	ID          uuid.UUID  `json:"id"`
	PostID      uuid.UUID  `json:"post_id"`
	ApplicantID uuid.UUID  `json:"applicant_id"`
	ResumeID    *uuid.UUID `json:"resume_id,omitempty"`
	Reason      string     `json:"reason"`
	IsSelected  bool       `json:"is_selected"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ApplyDetailResponse is the recruiter-side projection: the apply joined
// with applicant, resume, skills and the latest analysis. Analysis is
// omitted when scoring never ran or failed.
type ApplyDetailResponse struct {
	Apply     ApplyResponse     `json:"apply"`
	Applicant *UserResponse     `json:"applicant,omitempty"`
	Nickname  string            `json:"nickname,omitempty"`
	Resume    *ResumeResponse   `json:"resume,omitempty"`
	Skills    []string          `json:"skills"`
	Analysis  *AnalysisResponse `json:"analysis,omitempty"`
}

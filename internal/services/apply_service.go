package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"teamup-api/internal/models"
	"teamup-api/internal/storage"
	"teamup-api/internal/transport/dto"
)

type applyService struct {
	applyRepo    storage.ApplyRepository
	postRepo     storage.PostRepository
	resumeRepo   storage.ResumeRepository
	userRepo     storage.UserRepository
	profileRepo  storage.ProfileRepository
	analysisRepo storage.AnalysisRepository
	analyses     AnalysisRequester
}

// NewApplyService creates a new instance of ApplyService. analyses may be
// nil, which disables AI scoring.
func NewApplyService(
	applyRepo storage.ApplyRepository,
	postRepo storage.PostRepository,
	resumeRepo storage.ResumeRepository,
	userRepo storage.UserRepository,
	profileRepo storage.ProfileRepository,
	analysisRepo storage.AnalysisRepository,
	analyses AnalysisRequester,
) ApplyService {
	return &applyService{
		applyRepo:    applyRepo,
		postRepo:     postRepo,
		resumeRepo:   resumeRepo,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		analysisRepo: analysisRepo,
		analyses:     analyses,
	}
}

// Submit creates an apply for the actor on the given post and kicks off AI
// scoring. Scoring is best effort; its failure never fails the submission.
func (s *applyService) Submit(ctx context.Context, req *dto.SubmitApplyRequest) (*models.Apply, error) {
	// 1. Fetch the post and check it still accepts applications.
	post, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching post %s for apply", req.PostID))
	}
	if !post.IsOpen(time.Now()) {
		log.Printf("SubmitApply: Attempt to apply to closed post %s by user %s", req.PostID, req.ApplicantID)
		return nil, fmt.Errorf("%w: post is not open for applications", ErrConflict)
	}
	if post.AuthorID == req.ApplicantID {
		return nil, fmt.Errorf("%w: author cannot apply to their own post", ErrForbidden)
	}

	// 2. Optional resume must belong to the applicant.
	if req.ResumeID != nil {
		resume, err := s.resumeRepo.GetByID(ctx, *req.ResumeID)
		if err != nil {
			return nil, mapRepoError(err, fmt.Sprintf("fetching resume %s for apply", *req.ResumeID))
		}
		if !CanUseResume(resume, req.ApplicantID) {
			log.Printf("SubmitApply: User %s attempted to attach resume %s owned by %s", req.ApplicantID, resume.ID, resume.OwnerID)
			return nil, fmt.Errorf("%w: resume does not belong to the applicant", ErrForbidden)
		}
	}

	// 3. Uniqueness pre-check. The unique constraint on (applicant, post)
	// still closes the race between concurrent submissions.
	exists, err := s.applyRepo.ExistsByApplicantAndPost(ctx, req.ApplicantID, req.PostID)
	if err != nil {
		return nil, mapRepoError(err, "checking for existing apply")
	}
	if exists {
		log.Printf("SubmitApply: User %s already applied to post %s", req.ApplicantID, req.PostID)
		return nil, fmt.Errorf("%w: already applied to this post", ErrConflict)
	}

	// 4. Create the apply.
	apply, err := s.applyRepo.Create(ctx, &dto.CreateApplyRequest{
		PostID:      req.PostID,
		ApplicantID: req.ApplicantID,
		ResumeID:    req.ResumeID,
		Reason:      req.Reason,
	})
	if err != nil {
		log.Printf("SubmitApply: Error creating apply in repo: %v", err)
		return nil, mapRepoError(err, "creating apply")
	}

	// 5. Kick off scoring after the insert is durable.
	if s.analyses != nil {
		s.analyses.RequestAnalysis(apply.ID)
	}

	return apply, nil
}

// Cancel removes the actor's own apply. Selected applies cannot be
// cancelled; the conditional delete also closes the race against a
// concurrent selection by the post author.
func (s *applyService) Cancel(ctx context.Context, req *dto.CancelApplyRequest) error {
	apply, err := s.applyRepo.GetByID(ctx, req.ApplyID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching apply %s for cancel", req.ApplyID))
	}
	if !CanCancelApply(apply, req.ActorID) {
		log.Printf("CancelApply: Forbidden attempt by user %s on apply %s owned by %s", req.ActorID, apply.ID, apply.ApplicantID)
		return ErrForbidden
	}
	if apply.IsSelected {
		return fmt.Errorf("%w: selected applies cannot be cancelled", ErrConflict)
	}

	deleted, err := s.applyRepo.DeleteIfNotSelected(ctx, req.ApplyID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("cancelling apply %s", req.ApplyID))
	}
	if !deleted {
		// Either selected in the meantime or already gone.
		if _, err := s.applyRepo.GetByID(ctx, req.ApplyID); errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: apply already cancelled", ErrNotFound)
		}
		log.Printf("CancelApply: Apply %s was selected while cancel was in flight", req.ApplyID)
		return fmt.Errorf("%w: selected applies cannot be cancelled", ErrConflict)
	}
	return nil
}

// ToggleSelection sets the selection flag on an apply. Only the post author
// may do this; repeating the same value is a no-op.
func (s *applyService) ToggleSelection(ctx context.Context, req *dto.ToggleSelectionRequest) (*models.Apply, error) {
	apply, err := s.applyRepo.GetByID(ctx, req.ApplyID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching apply %s for selection", req.ApplyID))
	}
	post, err := s.postRepo.GetByID(ctx, apply.PostID)
	if err != nil {
		log.Printf("ToggleSelection: Error fetching post %s for apply %s: %v", apply.PostID, apply.ID, err)
		return nil, mapRepoError(err, fmt.Sprintf("fetching post %s for selection", apply.PostID))
	}
	if !CanToggleSelection(post, req.ActorID) {
		log.Printf("ToggleSelection: Forbidden attempt by user %s on post %s owned by %s", req.ActorID, post.ID, post.AuthorID)
		return nil, ErrForbidden
	}

	updated, err := s.applyRepo.UpdateSelection(ctx, req.ApplyID, req.Selected)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating selection on apply %s", req.ApplyID))
	}

	// Selecting past the head count is allowed; the post closes only by
	// author action or deadline. Surface a full team in the log so the
	// author notices.
	if req.Selected {
		if count, err := s.applyRepo.CountSelectedByPost(ctx, post.ID); err != nil {
			log.Printf("ToggleSelection: Error counting selected applies for post %s: %v", post.ID, err)
		} else if count >= post.HeadCount {
			log.Printf("ToggleSelection: Post %s has %d selected applies for a head count of %d", post.ID, count, post.HeadCount)
		}
	}
	return updated, nil
}

// Detail assembles the recruiter-side view of one apply. Only the post
// author sees applicant details.
func (s *applyService) Detail(ctx context.Context, req *dto.GetApplyDetailRequest) (*models.ApplyDetail, error) {
	apply, err := s.applyRepo.GetByID(ctx, req.ApplyID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching apply %s", req.ApplyID))
	}
	post, err := s.postRepo.GetByID(ctx, apply.PostID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching post %s for apply detail", apply.PostID))
	}
	if !CanManagePost(post, req.ActorID) {
		return nil, ErrForbidden
	}

	return s.assembleDetail(ctx, apply)
}

// assembleDetail joins an apply with its applicant, profile, resume, skills
// and latest analysis. Callers authorize first.
func (s *applyService) assembleDetail(ctx context.Context, apply *models.Apply) (*models.ApplyDetail, error) {
	detail := &models.ApplyDetail{Apply: apply}

	applicant, err := s.userRepo.GetByID(ctx, apply.ApplicantID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching applicant %s", apply.ApplicantID))
	}
	detail.Applicant = applicant

	if profile, err := s.profileRepo.GetByUserID(ctx, apply.ApplicantID); err == nil {
		detail.Profile = profile
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, fmt.Sprintf("fetching profile of %s", apply.ApplicantID))
	}

	if apply.ResumeID != nil {
		resume, err := s.resumeRepo.GetByID(ctx, *apply.ResumeID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, mapRepoError(err, fmt.Sprintf("fetching resume %s", *apply.ResumeID))
		}
		if resume != nil {
			detail.Resume = resume
			skills, err := s.resumeRepo.ListSkillNames(ctx, resume.ID)
			if err != nil {
				return nil, mapRepoError(err, fmt.Sprintf("fetching skills for resume %s", resume.ID))
			}
			detail.Skills = skills
		}
	}

	// Missing analysis is normal: scoring is best effort and may have
	// failed or not finished yet.
	if analysis, err := s.analysisRepo.LatestByApply(ctx, apply.ID); err == nil {
		detail.Analysis = analysis
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, fmt.Sprintf("fetching analysis for apply %s", apply.ID))
	}

	return detail, nil
}

// ListByPost returns the recruiter-side view of every apply on the post,
// each joined with the applicant's resume, skills and latest analysis.
func (s *applyService) ListByPost(ctx context.Context, req *dto.ListAppliesByPostRequest) ([]models.ApplyDetail, error) {
	post, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching post %s for apply list", req.PostID))
	}
	if !CanManagePost(post, req.ActorID) {
		return nil, ErrForbidden
	}

	applies, err := s.applyRepo.ListByPost(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applies for post %s", req.PostID))
	}

	details := make([]models.ApplyDetail, 0, len(applies))
	for i := range applies {
		detail, err := s.assembleDetail(ctx, &applies[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *applyService) ListMine(ctx context.Context, req *dto.ListMyAppliesRequest) ([]models.Apply, error) {
	applies, err := s.applyRepo.ListByApplicant(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applies for user %s", req.ApplicantID))
	}
	return applies, nil
}

package services

import (
	"context"
	"fmt"
	"log"

	"teamup-api/internal/models"
	"teamup-api/internal/storage"
	"teamup-api/internal/transport/dto"

	"github.com/google/uuid"
)

type resumeService struct {
	repo storage.ResumeRepository
}

// NewResumeService creates a new instance of ResumeService.
func NewResumeService(repo storage.ResumeRepository) ResumeService {
	return &resumeService{repo: repo}
}

func (s *resumeService) Create(ctx context.Context, req *dto.CreateResumeRequest) (*models.Resume, []string, error) {
	resume, err := s.repo.Create(ctx, req)
	if err != nil {
		log.Printf("ResumeService: Error creating resume: %v", err)
		return nil, nil, mapRepoError(err, "creating resume")
	}
	return resume, req.Skills, nil
}

// Get loads a resume with its skills. Resumes are readable by any
// authenticated user; attaching one to an apply is what requires ownership.
func (s *resumeService) Get(ctx context.Context, req *dto.GetResumeRequest) (*models.Resume, []string, error) {
	resume, err := s.repo.GetByID(ctx, req.ResumeID)
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("fetching resume %s", req.ResumeID))
	}
	skills, err := s.repo.ListSkillNames(ctx, req.ResumeID)
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("fetching skills for resume %s", req.ResumeID))
	}
	return resume, skills, nil
}

func (s *resumeService) ListMine(ctx context.Context, ownerID uuid.UUID) ([]models.Resume, map[uuid.UUID][]string, error) {
	resumes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("listing resumes for user %s", ownerID))
	}

	skillsByResume := make(map[uuid.UUID][]string, len(resumes))
	for i := range resumes {
		skills, err := s.repo.ListSkillNames(ctx, resumes[i].ID)
		if err != nil {
			return nil, nil, mapRepoError(err, fmt.Sprintf("fetching skills for resume %s", resumes[i].ID))
		}
		skillsByResume[resumes[i].ID] = skills
	}
	return resumes, skillsByResume, nil
}

func (s *resumeService) Update(ctx context.Context, req *dto.UpdateResumeRequest) (*models.Resume, []string, error) {
	existing, err := s.repo.GetByID(ctx, req.ResumeID)
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("fetching resume %s for update", req.ResumeID))
	}
	if existing.OwnerID != req.OwnerID {
		log.Printf("UpdateResume: Forbidden attempt by user %s on resume %s owned by %s", req.OwnerID, existing.ID, existing.OwnerID)
		return nil, nil, ErrForbidden
	}

	updated, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("updating resume %s", req.ResumeID))
	}
	skills, err := s.repo.ListSkillNames(ctx, req.ResumeID)
	if err != nil {
		return nil, nil, mapRepoError(err, fmt.Sprintf("fetching skills for resume %s", req.ResumeID))
	}
	return updated, skills, nil
}

func (s *resumeService) SetMain(ctx context.Context, req *dto.SetMainResumeRequest) error {
	existing, err := s.repo.GetByID(ctx, req.ResumeID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching resume %s for set-main", req.ResumeID))
	}
	if existing.OwnerID != req.OwnerID {
		return ErrForbidden
	}

	if err := s.repo.SetMain(ctx, req.OwnerID, req.ResumeID); err != nil {
		return mapRepoError(err, fmt.Sprintf("setting main resume %s", req.ResumeID))
	}
	return nil
}

func (s *resumeService) Delete(ctx context.Context, req *dto.DeleteResumeRequest) error {
	existing, err := s.repo.GetByID(ctx, req.ResumeID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching resume %s for delete", req.ResumeID))
	}
	if existing.OwnerID != req.OwnerID {
		log.Printf("DeleteResume: Forbidden attempt by user %s on resume %s owned by %s", req.OwnerID, existing.ID, existing.OwnerID)
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, req.ResumeID); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting resume %s", req.ResumeID))
	}
	return nil
}

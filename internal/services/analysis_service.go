package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"teamup-api/internal/models"
	"teamup-api/internal/storage"
	"teamup-api/internal/transport/dto"

	"github.com/google/uuid"
)

type analysisService struct {
	analysisRepo storage.AnalysisRepository
	applyRepo    storage.ApplyRepository
	postRepo     storage.PostRepository
	resumeRepo   storage.ResumeRepository
	scorer       ResumeScorer
	timeout      time.Duration
}

// NewAnalysisService creates a new instance of AnalysisService.
func NewAnalysisService(
	analysisRepo storage.AnalysisRepository,
	applyRepo storage.ApplyRepository,
	postRepo storage.PostRepository,
	resumeRepo storage.ResumeRepository,
	scorer ResumeScorer,
	timeout time.Duration,
) AnalysisService {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &analysisService{
		analysisRepo: analysisRepo,
		applyRepo:    applyRepo,
		postRepo:     postRepo,
		resumeRepo:   resumeRepo,
		scorer:       scorer,
		timeout:      timeout,
	}
}

// RequestAnalysis runs one scoring round-trip in the background. The caller
// returns immediately; failures are logged and never surfaced.
func (s *analysisService) RequestAnalysis(applyID uuid.UUID) {
	go func() {
		// Detached from the request context on purpose: the HTTP response
		// must not wait for, or cancel, the scoring call.
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if _, err := s.Analyze(ctx, applyID); err != nil {
			log.Printf("AnalysisService: scoring apply %s failed: %v", applyID, err)
		}
	}()
}

// Analyze scores the apply's material against its post and stores the
// result. Analyses are append-only; a re-run adds a newer row.
func (s *analysisService) Analyze(ctx context.Context, applyID uuid.UUID) (*models.Analysis, error) {
	if s.scorer == nil {
		return nil, fmt.Errorf("no scorer configured")
	}

	apply, err := s.applyRepo.GetByID(ctx, applyID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching apply %s for scoring", applyID))
	}
	post, err := s.postRepo.GetByID(ctx, apply.PostID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching post %s for scoring", apply.PostID))
	}

	material := s.buildMaterial(ctx, apply)
	postContext := buildPostContext(post)

	result, err := s.scorer.Score(ctx, material, postContext)
	if err != nil {
		return nil, fmt.Errorf("scoring apply %s: %w", applyID, err)
	}

	score := result.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	analysis, err := s.analysisRepo.Create(ctx, &dto.CreateAnalysisRequest{
		ApplyID: applyID,
		Score:   score,
		Result:  result.Result,
		Summary: result.Summary,
	})
	if err != nil {
		// The apply may have been cancelled while the call was in flight.
		return nil, mapRepoError(err, fmt.Sprintf("storing analysis for apply %s", applyID))
	}
	return analysis, nil
}

func (s *analysisService) LatestByApply(ctx context.Context, applyID uuid.UUID) (*models.Analysis, error) {
	analysis, err := s.analysisRepo.LatestByApply(ctx, applyID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching analysis for apply %s", applyID))
	}
	return analysis, nil
}

// buildMaterial joins the apply reason with the attached resume, when one
// exists. A missing resume degrades to reason-only scoring.
func (s *analysisService) buildMaterial(ctx context.Context, apply *models.Apply) string {
	var b strings.Builder
	b.WriteString("Application reason:\n")
	b.WriteString(apply.Reason)

	if apply.ResumeID != nil {
		resume, err := s.resumeRepo.GetByID(ctx, *apply.ResumeID)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				log.Printf("AnalysisService: fetching resume %s: %v", *apply.ResumeID, err)
			}
			return b.String()
		}
		b.WriteString("\n\nResume: ")
		b.WriteString(resume.Title)
		b.WriteString("\n")
		b.WriteString(resume.Content)

		if skills, err := s.resumeRepo.ListSkillNames(ctx, resume.ID); err == nil && len(skills) > 0 {
			b.WriteString("\nSkills: ")
			b.WriteString(strings.Join(skills, ", "))
		}
	}
	return b.String()
}

func buildPostContext(post *models.Post) string {
	var b strings.Builder
	b.WriteString(post.Title)
	if post.Category != "" {
		b.WriteString(" [")
		b.WriteString(post.Category)
		b.WriteString("]")
	}
	b.WriteString("\n")
	b.WriteString(post.Content)
	return b.String()
}

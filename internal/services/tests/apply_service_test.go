package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_storage "teamup-api/internal/mocks"
	"teamup-api/internal/models"
	"teamup-api/internal/services"
	"teamup-api/internal/storage"
	"teamup-api/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applyServiceMocks struct {
	applyRepo    *mock_storage.MockApplyRepository
	postRepo     *mock_storage.MockPostRepository
	resumeRepo   *mock_storage.MockResumeRepository
	userRepo     *mock_storage.MockUserRepository
	profileRepo  *mock_storage.MockProfileRepository
	analysisRepo *mock_storage.MockAnalysisRepository
	analyses     *mock_storage.MockAnalysisRequester
}

func newApplyService(ctrl *gomock.Controller) (services.ApplyService, *applyServiceMocks) {
	m := &applyServiceMocks{
		applyRepo:    mock_storage.NewMockApplyRepository(ctrl),
		postRepo:     mock_storage.NewMockPostRepository(ctrl),
		resumeRepo:   mock_storage.NewMockResumeRepository(ctrl),
		userRepo:     mock_storage.NewMockUserRepository(ctrl),
		profileRepo:  mock_storage.NewMockProfileRepository(ctrl),
		analysisRepo: mock_storage.NewMockAnalysisRepository(ctrl),
		analyses:     mock_storage.NewMockAnalysisRequester(ctrl),
	}
	svc := services.NewApplyService(m.applyRepo, m.postRepo, m.resumeRepo, m.userRepo, m.profileRepo, m.analysisRepo, m.analyses)
	return svc, m
}

func openPost(authorID uuid.UUID) *models.Post {
	return &models.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     "Backend teammate wanted",
		HeadCount: 2,
		Deadline:  time.Now().Add(48 * time.Hour),
	}
}

func TestApplyService_Submit(t *testing.T) {
	authorID := uuid.New()
	applicantID := uuid.New()
	resumeID := uuid.New()

	tests := []struct {
		name          string
		setup         func(m *applyServiceMocks, req *dto.SubmitApplyRequest)
		resume        *uuid.UUID
		expectedError error
	}{
		{
			name:   "Success without resume",
			resume: nil,
			setup: func(m *applyServiceMocks, req *dto.SubmitApplyRequest) {
				post := openPost(authorID)
				post.ID = req.PostID
				m.postRepo.EXPECT().GetByID(gomock.Any(), req.PostID).Return(post, nil)
				m.applyRepo.EXPECT().ExistsByApplicantAndPost(gomock.Any(), applicantID, req.PostID).Return(false, nil)
				m.applyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, cr *dto.CreateApplyRequest) (*models.Apply, error) {
						return &models.Apply{ID: uuid.New(), PostID: cr.PostID, ApplicantID: cr.ApplicantID, Reason: cr.Reason}, nil
					})
				m.analyses.EXPECT().RequestAnalysis(gomock.Any())
			},
		},
		{
			name:   "Success with own resume",
			resume: &resumeID,
			setup: func(m *applyServiceMocks, req *dto.SubmitApplyRequest) {
				post := openPost(authorID)
				post.ID = req.PostID
				m.postRepo.EXPECT().GetByID(gomock.Any(), req.PostID).Return(post, nil)
				m.resumeRepo.EXPECT().GetByID(gomock.Any(), resumeID).Return(&models.Resume{ID: resumeID, OwnerID: applicantID}, nil)
				m.applyRepo.EXPECT().ExistsByApplicantAndPost(gomock.Any(), applicantID, req.PostID).Return(false, nil)
				m.applyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Apply{ID: uuid.New(), PostID: req.PostID, ApplicantID: applicantID, ResumeID: &resumeID}, nil)
				m.analyses.EXPECT().RequestAnalysis(gomock.Any())
			},
		},
		{
			name:   "Forbidden - foreign resume",
			resume: &resumeID,
			setup: func(m *applyServiceMocks, req *dto.SubmitApplyRequest) {
				post := openPost(authorID)
				post.ID = req.PostID
				m.postRepo.EXPECT().GetByID(gomock.Any(), req.PostID).Return(post, nil)
				m.resumeRepo.EXPECT().GetByID(gomock.Any(), resumeID).Return(&models.Resume{ID: resumeID, OwnerID: uuid.New()}, nil)
			},
			expectedError: services.ErrForbidden,
		},
		{
			name: "Conflict - post past deadline",
			setup: func(m *applyServiceMocks, req *dto.SubmitApplyRequest) {
				post := openPost(authorID)
				post.ID = req.PostID
				post.Deadline = time.Now().Add(-time.Hour)
				m.postRepo.EXPECT().GetByID(gomock.Any(), req.PostID).Return(post, nil)
			},
			expectedError: services.ErrConflict,
		},
		{
			name: "Conflict - post explicitly closed",
			setup: func(m *applyServiceMocks, req *dto.SubmitApplyRequest) {
				post := openPost(authorID)
				post.ID = req.PostID
				closedAt := time.Now().Add(-time.Minute)
				post.ClosedAt = &closedAt
				m.postRepo.EXPECT().GetByID(gomock.Any(), req.PostID).Return(post, nil)
			},
			expectedError: services.ErrConflict,
		},
		{
			name: "Forbidden - author applies to own post",
			setup: func(m *applyServiceMocks, req *dto.SubmitApplyRequest) {
				post := openPost(applicantID) // actor authors the post
				post.ID = req.PostID
				m.postRepo.EXPECT().GetByID(gomock.Any(), req.PostID).Return(post, nil)
			},
			expectedError: services.ErrForbidden,
		},
		{
			name: "Conflict - already applied",
			setup: func(m *applyServiceMocks, req *dto.SubmitApplyRequest) {
				post := openPost(authorID)
				post.ID = req.PostID
				m.postRepo.EXPECT().GetByID(gomock.Any(), req.PostID).Return(post, nil)
				m.applyRepo.EXPECT().ExistsByApplicantAndPost(gomock.Any(), applicantID, req.PostID).Return(true, nil)
			},
			expectedError: services.ErrConflict,
		},
		{
			name: "Conflict - duplicate insert race",
			setup: func(m *applyServiceMocks, req *dto.SubmitApplyRequest) {
				post := openPost(authorID)
				post.ID = req.PostID
				m.postRepo.EXPECT().GetByID(gomock.Any(), req.PostID).Return(post, nil)
				// Pre-check passes, the unique constraint catches the race.
				m.applyRepo.EXPECT().ExistsByApplicantAndPost(gomock.Any(), applicantID, req.PostID).Return(false, nil)
				m.applyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, storage.ErrConflict)
			},
			expectedError: services.ErrConflict,
		},
		{
			name: "NotFound - post does not exist",
			setup: func(m *applyServiceMocks, req *dto.SubmitApplyRequest) {
				m.postRepo.EXPECT().GetByID(gomock.Any(), req.PostID).Return(nil, storage.ErrNotFound)
			},
			expectedError: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newApplyService(ctrl)
			req := &dto.SubmitApplyRequest{
				PostID:      uuid.New(),
				ApplicantID: applicantID,
				ResumeID:    tt.resume,
				Reason:      "I want to join",
			}
			tt.setup(m, req)

			apply, err := svc.Submit(context.Background(), req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				assert.Nil(t, apply)
			} else {
				require.NoError(t, err)
				require.NotNil(t, apply)
				assert.Equal(t, req.PostID, apply.PostID)
				assert.Equal(t, applicantID, apply.ApplicantID)
			}
		})
	}
}

func TestApplyService_Cancel(t *testing.T) {
	applicantID := uuid.New()
	applyID := uuid.New()

	tests := []struct {
		name          string
		actorID       uuid.UUID
		setup         func(m *applyServiceMocks)
		expectedError error
	}{
		{
			name:    "Success",
			actorID: applicantID,
			setup: func(m *applyServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, ApplicantID: applicantID}, nil)
				m.applyRepo.EXPECT().DeleteIfNotSelected(gomock.Any(), applyID).Return(true, nil)
			},
		},
		{
			name:    "Forbidden - not the applicant",
			actorID: uuid.New(),
			setup: func(m *applyServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, ApplicantID: applicantID}, nil)
			},
			expectedError: services.ErrForbidden,
		},
		{
			name:    "Conflict - already selected",
			actorID: applicantID,
			setup: func(m *applyServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, ApplicantID: applicantID, IsSelected: true}, nil)
			},
			expectedError: services.ErrConflict,
		},
		{
			name:    "Conflict - selected while cancel in flight",
			actorID: applicantID,
			setup: func(m *applyServiceMocks) {
				gomock.InOrder(
					m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, ApplicantID: applicantID}, nil),
					m.applyRepo.EXPECT().DeleteIfNotSelected(gomock.Any(), applyID).Return(false, nil),
					m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, ApplicantID: applicantID, IsSelected: true}, nil),
				)
			},
			expectedError: services.ErrConflict,
		},
		{
			name:    "NotFound - deleted concurrently",
			actorID: applicantID,
			setup: func(m *applyServiceMocks) {
				gomock.InOrder(
					m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, ApplicantID: applicantID}, nil),
					m.applyRepo.EXPECT().DeleteIfNotSelected(gomock.Any(), applyID).Return(false, nil),
					m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(nil, storage.ErrNotFound),
				)
			},
			expectedError: services.ErrNotFound,
		},
		{
			name:    "NotFound - apply does not exist",
			actorID: applicantID,
			setup: func(m *applyServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(nil, storage.ErrNotFound)
			},
			expectedError: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newApplyService(ctrl)
			tt.setup(m)

			err := svc.Cancel(context.Background(), &dto.CancelApplyRequest{ApplyID: applyID, ActorID: tt.actorID})

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestApplyService_ToggleSelection(t *testing.T) {
	authorID := uuid.New()
	applyID := uuid.New()
	postID := uuid.New()

	tests := []struct {
		name          string
		actorID       uuid.UUID
		selected      bool
		setup         func(m *applyServiceMocks)
		expectedError error
	}{
		{
			name:     "Success - select",
			actorID:  authorID,
			selected: true,
			setup: func(m *applyServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, PostID: postID}, nil)
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID, AuthorID: authorID, HeadCount: 3}, nil)
				m.applyRepo.EXPECT().UpdateSelection(gomock.Any(), applyID, true).Return(&models.Apply{ID: applyID, PostID: postID, IsSelected: true}, nil)
				m.applyRepo.EXPECT().CountSelectedByPost(gomock.Any(), postID).Return(1, nil)
			},
		},
		{
			name:     "Success - repeated select is a no-op",
			actorID:  authorID,
			selected: true,
			setup: func(m *applyServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, PostID: postID, IsSelected: true}, nil)
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID, AuthorID: authorID, HeadCount: 3}, nil)
				m.applyRepo.EXPECT().UpdateSelection(gomock.Any(), applyID, true).Return(&models.Apply{ID: applyID, PostID: postID, IsSelected: true}, nil)
				m.applyRepo.EXPECT().CountSelectedByPost(gomock.Any(), postID).Return(1, nil)
			},
		},
		{
			name:     "Success - selection count failure does not fail the toggle",
			actorID:  authorID,
			selected: true,
			setup: func(m *applyServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, PostID: postID}, nil)
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID, AuthorID: authorID, HeadCount: 1}, nil)
				m.applyRepo.EXPECT().UpdateSelection(gomock.Any(), applyID, true).Return(&models.Apply{ID: applyID, PostID: postID, IsSelected: true}, nil)
				m.applyRepo.EXPECT().CountSelectedByPost(gomock.Any(), postID).Return(0, errors.New("connection reset"))
			},
		},
		{
			name:     "Success - unselect skips the count",
			actorID:  authorID,
			selected: false,
			setup: func(m *applyServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, PostID: postID, IsSelected: true}, nil)
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID, AuthorID: authorID, HeadCount: 3}, nil)
				m.applyRepo.EXPECT().UpdateSelection(gomock.Any(), applyID, false).Return(&models.Apply{ID: applyID, PostID: postID}, nil)
			},
		},
		{
			name:     "Forbidden - not the post author",
			actorID:  uuid.New(),
			selected: true,
			setup: func(m *applyServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, PostID: postID}, nil)
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID, AuthorID: authorID}, nil)
			},
			expectedError: services.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newApplyService(ctrl)
			tt.setup(m)

			apply, err := svc.ToggleSelection(context.Background(), &dto.ToggleSelectionRequest{ApplyID: applyID, ActorID: tt.actorID, Selected: tt.selected})

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.selected, apply.IsSelected)
			}
		})
	}
}

func TestApplyService_Detail(t *testing.T) {
	authorID := uuid.New()
	applicantID := uuid.New()
	applyID := uuid.New()
	postID := uuid.New()
	resumeID := uuid.New()

	t.Run("Full detail for the post author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newApplyService(ctrl)
		apply := &models.Apply{ID: applyID, PostID: postID, ApplicantID: applicantID, ResumeID: &resumeID}
		m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(apply, nil)
		m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID, AuthorID: authorID}, nil)
		m.userRepo.EXPECT().GetByID(gomock.Any(), applicantID).Return(&models.User{ID: applicantID, Name: "Jamie"}, nil)
		m.profileRepo.EXPECT().GetByUserID(gomock.Any(), applicantID).Return(&models.Profile{UserID: applicantID, Nickname: "jam"}, nil)
		m.resumeRepo.EXPECT().GetByID(gomock.Any(), resumeID).Return(&models.Resume{ID: resumeID, OwnerID: applicantID}, nil)
		m.resumeRepo.EXPECT().ListSkillNames(gomock.Any(), resumeID).Return([]string{"Go", "Postgres"}, nil)
		m.analysisRepo.EXPECT().LatestByApply(gomock.Any(), applyID).Return(&models.Analysis{ApplyID: applyID, Score: 87}, nil)

		detail, err := svc.Detail(context.Background(), &dto.GetApplyDetailRequest{ApplyID: applyID, ActorID: authorID})

		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, "Jamie", detail.Applicant.Name)
		assert.Equal(t, "jam", detail.Profile.Nickname)
		assert.Equal(t, []string{"Go", "Postgres"}, detail.Skills)
		assert.Equal(t, 87, detail.Analysis.Score)
	})

	t.Run("Missing analysis is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newApplyService(ctrl)
		apply := &models.Apply{ID: applyID, PostID: postID, ApplicantID: applicantID}
		m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(apply, nil)
		m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID, AuthorID: authorID}, nil)
		m.userRepo.EXPECT().GetByID(gomock.Any(), applicantID).Return(&models.User{ID: applicantID}, nil)
		m.profileRepo.EXPECT().GetByUserID(gomock.Any(), applicantID).Return(nil, storage.ErrNotFound)
		m.analysisRepo.EXPECT().LatestByApply(gomock.Any(), applyID).Return(nil, storage.ErrNotFound)

		detail, err := svc.Detail(context.Background(), &dto.GetApplyDetailRequest{ApplyID: applyID, ActorID: authorID})

		require.NoError(t, err)
		assert.Nil(t, detail.Analysis)
		assert.Nil(t, detail.Resume)
	})

	t.Run("Forbidden for non-author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newApplyService(ctrl)
		m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, PostID: postID, ApplicantID: applicantID}, nil)
		m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID, AuthorID: authorID}, nil)

		_, err := svc.Detail(context.Background(), &dto.GetApplyDetailRequest{ApplyID: applyID, ActorID: applicantID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}

func TestApplyService_ListByPost(t *testing.T) {
	authorID := uuid.New()
	postID := uuid.New()

	t.Run("Author lists applies with resume, skills and analysis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newApplyService(ctrl)
		firstApplicantID := uuid.New()
		secondApplicantID := uuid.New()
		firstApplyID := uuid.New()
		secondApplyID := uuid.New()
		resumeID := uuid.New()

		req := &dto.ListAppliesByPostRequest{PostID: postID, ActorID: authorID, Limit: 10}
		m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID, AuthorID: authorID}, nil)
		m.applyRepo.EXPECT().ListByPost(gomock.Any(), req).Return([]models.Apply{
			{ID: firstApplyID, PostID: postID, ApplicantID: firstApplicantID, ResumeID: &resumeID},
			{ID: secondApplyID, PostID: postID, ApplicantID: secondApplicantID},
		}, nil)

		// First apply carries a resume and a finished analysis.
		m.userRepo.EXPECT().GetByID(gomock.Any(), firstApplicantID).Return(&models.User{ID: firstApplicantID, Name: "Jamie"}, nil)
		m.profileRepo.EXPECT().GetByUserID(gomock.Any(), firstApplicantID).Return(&models.Profile{UserID: firstApplicantID, Nickname: "jam"}, nil)
		m.resumeRepo.EXPECT().GetByID(gomock.Any(), resumeID).Return(&models.Resume{ID: resumeID, OwnerID: firstApplicantID}, nil)
		m.resumeRepo.EXPECT().ListSkillNames(gomock.Any(), resumeID).Return([]string{"Go", "Postgres"}, nil)
		m.analysisRepo.EXPECT().LatestByApply(gomock.Any(), firstApplyID).Return(&models.Analysis{ApplyID: firstApplyID, Score: 87}, nil)

		// Second apply has neither.
		m.userRepo.EXPECT().GetByID(gomock.Any(), secondApplicantID).Return(&models.User{ID: secondApplicantID}, nil)
		m.profileRepo.EXPECT().GetByUserID(gomock.Any(), secondApplicantID).Return(nil, storage.ErrNotFound)
		m.analysisRepo.EXPECT().LatestByApply(gomock.Any(), secondApplyID).Return(nil, storage.ErrNotFound)

		details, err := svc.ListByPost(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.Equal(t, "Jamie", details[0].Applicant.Name)
		assert.Equal(t, []string{"Go", "Postgres"}, details[0].Skills)
		assert.Equal(t, 87, details[0].Analysis.Score)
		assert.Nil(t, details[1].Resume)
		assert.Nil(t, details[1].Analysis)
	})

	t.Run("Forbidden for non-author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newApplyService(ctrl)
		m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID, AuthorID: authorID}, nil)

		_, err := svc.ListByPost(context.Background(), &dto.ListAppliesByPostRequest{PostID: postID, ActorID: uuid.New()})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}

package services_test

import (
	"context"
	"errors"
	"testing"

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

type reviewServiceMocks struct {
	reviewRepo *mock_storage.MockReviewRepository
	applyRepo  *mock_storage.MockApplyRepository
	postRepo   *mock_storage.MockPostRepository
	userRepo   *mock_storage.MockUserRepository
}

func newReviewService(ctrl *gomock.Controller) (services.ReviewService, *reviewServiceMocks) {
	m := &reviewServiceMocks{
		reviewRepo: mock_storage.NewMockReviewRepository(ctrl),
		applyRepo:  mock_storage.NewMockApplyRepository(ctrl),
		postRepo:   mock_storage.NewMockPostRepository(ctrl),
		userRepo:   mock_storage.NewMockUserRepository(ctrl),
	}
	svc := services.NewReviewService(m.reviewRepo, m.applyRepo, m.postRepo, m.userRepo)
	return svc, m
}

func TestReviewService_CreateProfileReview(t *testing.T) {
	reviewerID := uuid.New()
	revieweeID := uuid.New()

	tests := []struct {
		name          string
		req           *dto.CreateProfileReviewRequest
		setup         func(m *reviewServiceMocks)
		expectedError error
	}{
		{
			name: "Success",
			req:  &dto.CreateProfileReviewRequest{ReviewerID: reviewerID, RevieweeID: revieweeID, Content: "Great to work with"},
			setup: func(m *reviewServiceMocks) {
				m.userRepo.EXPECT().GetByID(gomock.Any(), revieweeID).Return(&models.User{ID: revieweeID}, nil)
				m.reviewRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rec *dto.CreateReviewRecord) (*models.Review, error) {
						assert.Equal(t, models.ReviewTypeProfile, rec.Type)
						assert.Nil(t, rec.ApplyID)
						return &models.Review{ID: uuid.New(), Type: rec.Type, ReviewerID: rec.ReviewerID, RevieweeID: rec.RevieweeID, Content: rec.Content}, nil
					})
			},
		},
		{
			name:          "Validation - self review",
			req:           &dto.CreateProfileReviewRequest{ReviewerID: reviewerID, RevieweeID: reviewerID, Content: "nice"},
			setup:         func(m *reviewServiceMocks) {},
			expectedError: services.ErrValidation,
		},
		{
			name: "NotFound - reviewee does not exist",
			req:  &dto.CreateProfileReviewRequest{ReviewerID: reviewerID, RevieweeID: revieweeID, Content: "nice"},
			setup: func(m *reviewServiceMocks) {
				m.userRepo.EXPECT().GetByID(gomock.Any(), revieweeID).Return(nil, storage.ErrNotFound)
			},
			expectedError: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newReviewService(ctrl)
			tt.setup(m)

			review, err := svc.CreateProfileReview(context.Background(), tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.ReviewTypeProfile, review.Type)
			}
		})
	}
}

func TestReviewService_CreatePeerReview(t *testing.T) {
	authorID := uuid.New()
	applicantID := uuid.New()
	applyID := uuid.New()
	postID := uuid.New()

	selectedApply := func() *models.Apply {
		return &models.Apply{ID: applyID, PostID: postID, ApplicantID: applicantID, IsSelected: true}
	}
	post := func() *models.Post {
		return &models.Post{ID: postID, AuthorID: authorID}
	}

	rating := 5

	tests := []struct {
		name          string
		req           *dto.CreatePeerReviewRequest
		setup         func(m *reviewServiceMocks)
		expectedError error
	}{
		{
			name: "Author reviews the selected applicant",
			req:  &dto.CreatePeerReviewRequest{ReviewerID: authorID, RevieweeID: applicantID, ApplyID: applyID, Content: "Delivered on time", Rating: &rating},
			setup: func(m *reviewServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(selectedApply(), nil)
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(post(), nil)
				m.reviewRepo.EXPECT().PeerReviewExists(gomock.Any(), authorID, applicantID, applyID).Return(false, nil)
				m.reviewRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rec *dto.CreateReviewRecord) (*models.Review, error) {
						assert.Equal(t, models.ReviewTypePeer, rec.Type)
						require.NotNil(t, rec.ApplyID)
						assert.Equal(t, applyID, *rec.ApplyID)
						return &models.Review{ID: uuid.New(), Type: rec.Type, ReviewerID: rec.ReviewerID, RevieweeID: rec.RevieweeID, ApplyID: rec.ApplyID, Rating: rec.Rating}, nil
					})
			},
		},
		{
			name: "Applicant reviews the author back",
			req:  &dto.CreatePeerReviewRequest{ReviewerID: applicantID, RevieweeID: authorID, ApplyID: applyID, Content: "Clear direction"},
			setup: func(m *reviewServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(selectedApply(), nil)
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(post(), nil)
				m.reviewRepo.EXPECT().PeerReviewExists(gomock.Any(), applicantID, authorID, applyID).Return(false, nil)
				m.reviewRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Review{ID: uuid.New(), Type: models.ReviewTypePeer}, nil)
			},
		},
		{
			name: "Forbidden - apply not selected",
			req:  &dto.CreatePeerReviewRequest{ReviewerID: authorID, RevieweeID: applicantID, ApplyID: applyID, Content: "x"},
			setup: func(m *reviewServiceMocks) {
				apply := selectedApply()
				apply.IsSelected = false
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(apply, nil)
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(post(), nil)
			},
			expectedError: services.ErrForbidden,
		},
		{
			name: "Forbidden - reviewer is a bystander",
			req:  &dto.CreatePeerReviewRequest{ReviewerID: uuid.New(), RevieweeID: applicantID, ApplyID: applyID, Content: "x"},
			setup: func(m *reviewServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(selectedApply(), nil)
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(post(), nil)
			},
			expectedError: services.ErrForbidden,
		},
		{
			name: "Validation - self review",
			req:  &dto.CreatePeerReviewRequest{ReviewerID: authorID, RevieweeID: authorID, ApplyID: applyID, Content: "x"},
			setup: func(m *reviewServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(selectedApply(), nil)
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(post(), nil)
			},
			expectedError: services.ErrValidation,
		},
		{
			name: "Conflict - already reviewed this apply",
			req:  &dto.CreatePeerReviewRequest{ReviewerID: authorID, RevieweeID: applicantID, ApplyID: applyID, Content: "x"},
			setup: func(m *reviewServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(selectedApply(), nil)
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(post(), nil)
				m.reviewRepo.EXPECT().PeerReviewExists(gomock.Any(), authorID, applicantID, applyID).Return(true, nil)
			},
			expectedError: services.ErrConflict,
		},
		{
			name: "NotFound - apply does not exist",
			req:  &dto.CreatePeerReviewRequest{ReviewerID: authorID, RevieweeID: applicantID, ApplyID: applyID, Content: "x"},
			setup: func(m *reviewServiceMocks) {
				m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(nil, storage.ErrNotFound)
			},
			expectedError: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newReviewService(ctrl)
			tt.setup(m)

			review, err := svc.CreatePeerReview(context.Background(), tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.ReviewTypePeer, review.Type)
			}
		})
	}
}

func TestReviewService_Delete(t *testing.T) {
	reviewerID := uuid.New()
	revieweeID := uuid.New()
	reviewID := uuid.New()

	t.Run("Reviewer deletes own review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		m.reviewRepo.EXPECT().GetByID(gomock.Any(), reviewID).Return(&models.Review{ID: reviewID, Type: models.ReviewTypePeer, ReviewerID: reviewerID, RevieweeID: revieweeID}, nil)
		m.reviewRepo.EXPECT().Delete(gomock.Any(), reviewID).Return(nil)

		err := svc.Delete(context.Background(), &dto.DeleteReviewRequest{ReviewID: reviewID, ActorID: reviewerID})

		require.NoError(t, err)
	})

	t.Run("Reviewee deletes a profile review about them", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		m.reviewRepo.EXPECT().GetByID(gomock.Any(), reviewID).Return(&models.Review{ID: reviewID, Type: models.ReviewTypeProfile, ReviewerID: reviewerID, RevieweeID: revieweeID}, nil)
		m.reviewRepo.EXPECT().Delete(gomock.Any(), reviewID).Return(nil)

		err := svc.Delete(context.Background(), &dto.DeleteReviewRequest{ReviewID: reviewID, ActorID: revieweeID})

		require.NoError(t, err)
	})

	t.Run("Reviewee cannot delete a peer review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		m.reviewRepo.EXPECT().GetByID(gomock.Any(), reviewID).Return(&models.Review{ID: reviewID, Type: models.ReviewTypePeer, ReviewerID: reviewerID, RevieweeID: revieweeID}, nil)

		err := svc.Delete(context.Background(), &dto.DeleteReviewRequest{ReviewID: reviewID, ActorID: revieweeID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Forbidden for everyone else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		m.reviewRepo.EXPECT().GetByID(gomock.Any(), reviewID).Return(&models.Review{ID: reviewID, Type: models.ReviewTypeProfile, ReviewerID: reviewerID, RevieweeID: revieweeID}, nil)

		err := svc.Delete(context.Background(), &dto.DeleteReviewRequest{ReviewID: reviewID, ActorID: uuid.New()})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}

func TestReviewService_ListPeerByApply(t *testing.T) {
	authorID := uuid.New()
	applicantID := uuid.New()
	applyID := uuid.New()
	postID := uuid.New()

	setup := func(m *reviewServiceMocks) {
		m.applyRepo.EXPECT().GetByID(gomock.Any(), applyID).Return(&models.Apply{ID: applyID, PostID: postID, ApplicantID: applicantID, IsSelected: true}, nil)
		m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID, AuthorID: authorID}, nil)
	}

	t.Run("Participant reads the reviews", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		setup(m)
		m.reviewRepo.EXPECT().ListPeerByApply(gomock.Any(), applyID).Return([]models.Review{{Type: models.ReviewTypePeer}}, nil)

		reviews, err := svc.ListPeerByApply(context.Background(), &dto.ListPeerReviewsByApplyRequest{ApplyID: applyID, ActorID: applicantID})

		require.NoError(t, err)
		assert.Len(t, reviews, 1)
	})

	t.Run("Forbidden for outsiders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newReviewService(ctrl)
		setup(m)

		_, err := svc.ListPeerByApply(context.Background(), &dto.ListPeerReviewsByApplyRequest{ApplyID: applyID, ActorID: uuid.New()})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}

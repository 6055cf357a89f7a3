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

func newResumeService(ctrl *gomock.Controller) (services.ResumeService, *mock_storage.MockResumeRepository) {
	repo := mock_storage.NewMockResumeRepository(ctrl)
	return services.NewResumeService(repo), repo
}

func TestResumeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newResumeService(ctrl)
	ownerID := uuid.New()
	req := &dto.CreateResumeRequest{OwnerID: ownerID, Title: "Backend dev", Content: "Go and Postgres", Skills: []string{"Go", "Docker"}}
	repo.EXPECT().Create(gomock.Any(), req).Return(&models.Resume{ID: uuid.New(), OwnerID: ownerID, Title: req.Title}, nil)

	resume, skills, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, ownerID, resume.OwnerID)
	assert.Equal(t, []string{"Go", "Docker"}, skills)
}

func TestResumeService_Get(t *testing.T) {
	resumeID := uuid.New()

	t.Run("Readable by any authenticated user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newResumeService(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), resumeID).Return(&models.Resume{ID: resumeID, OwnerID: uuid.New()}, nil)
		repo.EXPECT().ListSkillNames(gomock.Any(), resumeID).Return([]string{"Go"}, nil)

		resume, skills, err := svc.Get(context.Background(), &dto.GetResumeRequest{ResumeID: resumeID, ActorID: uuid.New()})

		require.NoError(t, err)
		assert.Equal(t, resumeID, resume.ID)
		assert.Equal(t, []string{"Go"}, skills)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newResumeService(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), resumeID).Return(nil, storage.ErrNotFound)

		_, _, err := svc.Get(context.Background(), &dto.GetResumeRequest{ResumeID: resumeID, ActorID: uuid.New()})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}

func TestResumeService_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newResumeService(ctrl)
	ownerID := uuid.New()
	first := models.Resume{ID: uuid.New(), OwnerID: ownerID, Title: "Main", IsMain: true}
	second := models.Resume{ID: uuid.New(), OwnerID: ownerID, Title: "Side"}
	repo.EXPECT().ListByOwner(gomock.Any(), ownerID).Return([]models.Resume{first, second}, nil)
	repo.EXPECT().ListSkillNames(gomock.Any(), first.ID).Return([]string{"Go"}, nil)
	repo.EXPECT().ListSkillNames(gomock.Any(), second.ID).Return([]string{}, nil)

	resumes, skillsByResume, err := svc.ListMine(context.Background(), ownerID)

	require.NoError(t, err)
	require.Len(t, resumes, 2)
	assert.Equal(t, []string{"Go"}, skillsByResume[first.ID])
	assert.Empty(t, skillsByResume[second.ID])
}

func TestResumeService_Update(t *testing.T) {
	ownerID := uuid.New()
	resumeID := uuid.New()
	newTitle := "Senior backend dev"

	t.Run("Owner updates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newResumeService(ctrl)
		req := &dto.UpdateResumeRequest{ResumeID: resumeID, OwnerID: ownerID, Title: &newTitle}
		repo.EXPECT().GetByID(gomock.Any(), resumeID).Return(&models.Resume{ID: resumeID, OwnerID: ownerID}, nil)
		repo.EXPECT().Update(gomock.Any(), req).Return(&models.Resume{ID: resumeID, OwnerID: ownerID, Title: newTitle}, nil)
		repo.EXPECT().ListSkillNames(gomock.Any(), resumeID).Return([]string{"Go"}, nil)

		resume, skills, err := svc.Update(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, newTitle, resume.Title)
		assert.Equal(t, []string{"Go"}, skills)
	})

	t.Run("Forbidden for non-owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newResumeService(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), resumeID).Return(&models.Resume{ID: resumeID, OwnerID: uuid.New()}, nil)

		_, _, err := svc.Update(context.Background(), &dto.UpdateResumeRequest{ResumeID: resumeID, OwnerID: ownerID, Title: &newTitle})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}

func TestResumeService_SetMain(t *testing.T) {
	ownerID := uuid.New()
	resumeID := uuid.New()

	t.Run("Owner marks a resume as main", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newResumeService(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), resumeID).Return(&models.Resume{ID: resumeID, OwnerID: ownerID}, nil)
		repo.EXPECT().SetMain(gomock.Any(), ownerID, resumeID).Return(nil)

		err := svc.SetMain(context.Background(), &dto.SetMainResumeRequest{ResumeID: resumeID, OwnerID: ownerID})

		require.NoError(t, err)
	})

	t.Run("Forbidden for non-owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newResumeService(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), resumeID).Return(&models.Resume{ID: resumeID, OwnerID: uuid.New()}, nil)

		err := svc.SetMain(context.Background(), &dto.SetMainResumeRequest{ResumeID: resumeID, OwnerID: ownerID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}

func TestResumeService_Delete(t *testing.T) {
	ownerID := uuid.New()
	resumeID := uuid.New()

	t.Run("Owner deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newResumeService(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), resumeID).Return(&models.Resume{ID: resumeID, OwnerID: ownerID}, nil)
		repo.EXPECT().Delete(gomock.Any(), resumeID).Return(nil)

		err := svc.Delete(context.Background(), &dto.DeleteResumeRequest{ResumeID: resumeID, OwnerID: ownerID})

		require.NoError(t, err)
	})

	t.Run("Forbidden for non-owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, repo := newResumeService(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), resumeID).Return(&models.Resume{ID: resumeID, OwnerID: uuid.New()}, nil)

		err := svc.Delete(context.Background(), &dto.DeleteResumeRequest{ResumeID: resumeID, OwnerID: ownerID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}

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

type commentServiceMocks struct {
	commentRepo *mock_storage.MockCommentRepository
	postRepo    *mock_storage.MockPostRepository
	profileRepo *mock_storage.MockProfileRepository
}

func newCommentService(ctrl *gomock.Controller) (services.CommentService, *commentServiceMocks) {
	m := &commentServiceMocks{
		commentRepo: mock_storage.NewMockCommentRepository(ctrl),
		postRepo:    mock_storage.NewMockPostRepository(ctrl),
		profileRepo: mock_storage.NewMockProfileRepository(ctrl),
	}
	svc := services.NewCommentService(m.commentRepo, m.postRepo, m.profileRepo)
	return svc, m
}

func TestCommentService_Create(t *testing.T) {
	authorID := uuid.New()
	postID := uuid.New()
	parentID := uuid.New()

	tests := []struct {
		name          string
		req           *dto.CreateCommentRequest
		setup         func(m *commentServiceMocks)
		expectedError error
	}{
		{
			name: "Success - top-level comment",
			req:  &dto.CreateCommentRequest{PostID: postID, AuthorID: authorID, Content: "Looks interesting"},
			setup: func(m *commentServiceMocks) {
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID}, nil)
				m.commentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rec *dto.CreateCommentRecord) (*models.Comment, error) {
						assert.Equal(t, postID, rec.PostID)
						assert.Equal(t, authorID, rec.AuthorID)
						assert.Nil(t, rec.ParentID)
						return &models.Comment{ID: uuid.New(), PostID: rec.PostID, AuthorID: rec.AuthorID, Content: rec.Content}, nil
					})
			},
		},
		{
			name: "Success - reply to a top-level comment",
			req:  &dto.CreateCommentRequest{PostID: postID, AuthorID: authorID, ParentID: &parentID, Content: "Same here"},
			setup: func(m *commentServiceMocks) {
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID}, nil)
				m.commentRepo.EXPECT().GetByID(gomock.Any(), parentID).Return(&models.Comment{ID: parentID, PostID: postID}, nil)
				m.commentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rec *dto.CreateCommentRecord) (*models.Comment, error) {
						require.NotNil(t, rec.ParentID)
						assert.Equal(t, parentID, *rec.ParentID)
						return &models.Comment{ID: uuid.New(), PostID: rec.PostID, AuthorID: rec.AuthorID, ParentID: rec.ParentID, Content: rec.Content}, nil
					})
			},
		},
		{
			name: "Validation - parent on another post",
			req:  &dto.CreateCommentRequest{PostID: postID, AuthorID: authorID, ParentID: &parentID, Content: "hi"},
			setup: func(m *commentServiceMocks) {
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID}, nil)
				m.commentRepo.EXPECT().GetByID(gomock.Any(), parentID).Return(&models.Comment{ID: parentID, PostID: uuid.New()}, nil)
			},
			expectedError: services.ErrValidation,
		},
		{
			name: "Validation - reply to a reply",
			req:  &dto.CreateCommentRequest{PostID: postID, AuthorID: authorID, ParentID: &parentID, Content: "hi"},
			setup: func(m *commentServiceMocks) {
				grandparentID := uuid.New()
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID}, nil)
				m.commentRepo.EXPECT().GetByID(gomock.Any(), parentID).Return(&models.Comment{ID: parentID, PostID: postID, ParentID: &grandparentID}, nil)
			},
			expectedError: services.ErrValidation,
		},
		{
			name: "Not found - parent comment gone",
			req:  &dto.CreateCommentRequest{PostID: postID, AuthorID: authorID, ParentID: &parentID, Content: "hi"},
			setup: func(m *commentServiceMocks) {
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID}, nil)
				m.commentRepo.EXPECT().GetByID(gomock.Any(), parentID).Return(nil, storage.ErrNotFound)
			},
			expectedError: services.ErrNotFound,
		},
		{
			name: "Not found - unknown post",
			req:  &dto.CreateCommentRequest{PostID: postID, AuthorID: authorID, Content: "hi"},
			setup: func(m *commentServiceMocks) {
				m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(nil, storage.ErrNotFound)
			},
			expectedError: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newCommentService(ctrl)
			tt.setup(m)

			comment, err := svc.Create(context.Background(), tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.req.Content, comment.Content)
			}
		})
	}
}

func TestCommentService_ListByPost(t *testing.T) {
	postID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	t.Run("Threads replies under their parents with nicknames", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCommentService(ctrl)
		firstID := uuid.New()
		secondID := uuid.New()
		m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID}, nil)
		m.commentRepo.EXPECT().ListByPost(gomock.Any(), postID).Return([]models.Comment{
			{ID: firstID, PostID: postID, AuthorID: alice, Content: "Anyone up for this?"},
			{ID: secondID, PostID: postID, AuthorID: bob, Content: "When does it start?"},
			{ID: uuid.New(), PostID: postID, AuthorID: bob, ParentID: &firstID, Content: "Count me in"},
		}, nil)
		m.profileRepo.EXPECT().GetByUserID(gomock.Any(), alice).Return(&models.Profile{UserID: alice, Nickname: "al"}, nil)
		m.profileRepo.EXPECT().GetByUserID(gomock.Any(), bob).Return(&models.Profile{UserID: bob, Nickname: "bob"}, nil)

		threads, err := svc.ListByPost(context.Background(), postID)

		require.NoError(t, err)
		require.Len(t, threads, 2)
		assert.Equal(t, firstID, threads[0].Comment.ID)
		assert.Equal(t, "al", threads[0].Nickname)
		require.Len(t, threads[0].Replies, 1)
		assert.Equal(t, "Count me in", threads[0].Replies[0].Comment.Content)
		assert.Equal(t, "bob", threads[0].Replies[0].Nickname)
		assert.Equal(t, secondID, threads[1].Comment.ID)
		assert.Empty(t, threads[1].Replies)
	})

	t.Run("Missing profile leaves nickname empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCommentService(ctrl)
		m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(&models.Post{ID: postID}, nil)
		m.commentRepo.EXPECT().ListByPost(gomock.Any(), postID).Return([]models.Comment{
			{ID: uuid.New(), PostID: postID, AuthorID: alice, Content: "hello"},
		}, nil)
		m.profileRepo.EXPECT().GetByUserID(gomock.Any(), alice).Return(nil, storage.ErrNotFound)

		threads, err := svc.ListByPost(context.Background(), postID)

		require.NoError(t, err)
		require.Len(t, threads, 1)
		assert.Empty(t, threads[0].Nickname)
	})

	t.Run("Not found for unknown post", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCommentService(ctrl)
		m.postRepo.EXPECT().GetByID(gomock.Any(), postID).Return(nil, storage.ErrNotFound)

		_, err := svc.ListByPost(context.Background(), postID)

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}

func TestCommentService_Update(t *testing.T) {
	authorID := uuid.New()
	commentID := uuid.New()

	t.Run("Author edits their comment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCommentService(ctrl)
		m.commentRepo.EXPECT().GetByID(gomock.Any(), commentID).Return(&models.Comment{ID: commentID, AuthorID: authorID, Content: "old"}, nil)
		m.commentRepo.EXPECT().UpdateContent(gomock.Any(), commentID, "new").Return(&models.Comment{ID: commentID, AuthorID: authorID, Content: "new"}, nil)

		comment, err := svc.Update(context.Background(), &dto.UpdateCommentRequest{CommentID: commentID, ActorID: authorID, Content: "new"})

		require.NoError(t, err)
		assert.Equal(t, "new", comment.Content)
	})

	t.Run("Forbidden for non-author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCommentService(ctrl)
		m.commentRepo.EXPECT().GetByID(gomock.Any(), commentID).Return(&models.Comment{ID: commentID, AuthorID: authorID}, nil)

		_, err := svc.Update(context.Background(), &dto.UpdateCommentRequest{CommentID: commentID, ActorID: uuid.New(), Content: "new"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})
}

func TestCommentService_Delete(t *testing.T) {
	authorID := uuid.New()
	commentID := uuid.New()

	t.Run("Author deletes their comment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCommentService(ctrl)
		m.commentRepo.EXPECT().GetByID(gomock.Any(), commentID).Return(&models.Comment{ID: commentID, AuthorID: authorID}, nil)
		m.commentRepo.EXPECT().Delete(gomock.Any(), commentID).Return(nil)

		err := svc.Delete(context.Background(), &dto.DeleteCommentRequest{CommentID: commentID, ActorID: authorID})

		require.NoError(t, err)
	})

	t.Run("Forbidden for non-author", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCommentService(ctrl)
		m.commentRepo.EXPECT().GetByID(gomock.Any(), commentID).Return(&models.Comment{ID: commentID, AuthorID: authorID}, nil)

		err := svc.Delete(context.Background(), &dto.DeleteCommentRequest{CommentID: commentID, ActorID: uuid.New()})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCommentService(ctrl)
		m.commentRepo.EXPECT().GetByID(gomock.Any(), commentID).Return(nil, storage.ErrNotFound)

		err := svc.Delete(context.Background(), &dto.DeleteCommentRequest{CommentID: commentID, ActorID: authorID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}

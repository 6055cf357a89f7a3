package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"teamup-api/internal/api/handlers"
	mock_services "teamup-api/internal/mocks"
	"teamup-api/internal/models"
	"teamup-api/internal/services"
	"teamup-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCommentRouter(t *testing.T, userID uuid.UUID) (*gin.Engine, *mock_services.MockCommentService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mock_services.NewMockCommentService(ctrl)
	handler := handlers.NewCommentHandler(mockService, validator.New())

	router := newTestRouter()
	router.GET("/posts/:id/comments", handler.ListCommentsByPost)

	authed := router.Group("")
	authed.Use(authAs(userID))
	authed.POST("/posts/:id/comments", handler.CreateComment)
	authed.PATCH("/comments/:id", handler.UpdateComment)
	authed.DELETE("/comments/:id", handler.DeleteComment)
	return router, mockService
}

func TestCommentHandler_CreateComment(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	t.Run("Created", func(t *testing.T) {
		router, mockService := setupCommentRouter(t, userID)
		commentID := uuid.New()
		mockService.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *dto.CreateCommentRequest) (*models.Comment, error) {
				assert.Equal(t, postID, req.PostID)
				assert.Equal(t, userID, req.AuthorID)
				return &models.Comment{ID: commentID, PostID: req.PostID, AuthorID: req.AuthorID, Content: req.Content}, nil
			})

		recorder := performRequest(t, router, http.MethodPost, "/posts/"+postID.String()+"/comments", gin.H{"content": "sounds fun"})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var resp dto.CommentResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, commentID, resp.ID)
		assert.Equal(t, "sounds fun", resp.Content)
	})

	t.Run("Created as reply", func(t *testing.T) {
		router, mockService := setupCommentRouter(t, userID)
		parentID := uuid.New()
		mockService.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *dto.CreateCommentRequest) (*models.Comment, error) {
				require.NotNil(t, req.ParentID)
				assert.Equal(t, parentID, *req.ParentID)
				return &models.Comment{ID: uuid.New(), PostID: req.PostID, AuthorID: req.AuthorID, ParentID: req.ParentID, Content: req.Content}, nil
			})

		recorder := performRequest(t, router, http.MethodPost, "/posts/"+postID.String()+"/comments",
			gin.H{"content": "me too", "parent_id": parentID.String()})

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("Bad request on missing content", func(t *testing.T) {
		router, _ := setupCommentRouter(t, userID)

		recorder := performRequest(t, router, http.MethodPost, "/posts/"+postID.String()+"/comments", gin.H{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Content")
	})

	t.Run("Bad request on nested reply", func(t *testing.T) {
		router, mockService := setupCommentRouter(t, userID)
		mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrValidation)

		recorder := performRequest(t, router, http.MethodPost, "/posts/"+postID.String()+"/comments", gin.H{"content": "x"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCommentHandler_ListCommentsByPost(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	t.Run("OK with threaded replies", func(t *testing.T) {
		router, mockService := setupCommentRouter(t, userID)
		parentID := uuid.New()
		authorID := uuid.New()
		mockService.EXPECT().ListByPost(gomock.Any(), postID).Return([]models.CommentThread{
			{
				Comment:  &models.Comment{ID: parentID, PostID: postID, AuthorID: authorID, Content: "first"},
				Nickname: "al",
				Replies: []models.CommentThread{
					{Comment: &models.Comment{ID: uuid.New(), PostID: postID, AuthorID: uuid.New(), ParentID: &parentID, Content: "reply"}, Nickname: "bob"},
				},
			},
		}, nil)

		recorder := performRequest(t, router, http.MethodGet, "/posts/"+postID.String()+"/comments", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var resp []dto.CommentResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "al", resp[0].Nickname)
		require.Len(t, resp[0].Replies, 1)
		assert.Equal(t, "reply", resp[0].Replies[0].Content)
		assert.Equal(t, "bob", resp[0].Replies[0].Nickname)
	})

	t.Run("Empty list stays a JSON array", func(t *testing.T) {
		router, mockService := setupCommentRouter(t, userID)
		mockService.EXPECT().ListByPost(gomock.Any(), postID).Return([]models.CommentThread{}, nil)

		recorder := performRequest(t, router, http.MethodGet, "/posts/"+postID.String()+"/comments", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})

	t.Run("Not found for unknown post", func(t *testing.T) {
		router, mockService := setupCommentRouter(t, userID)
		mockService.EXPECT().ListByPost(gomock.Any(), postID).Return(nil, services.ErrNotFound)

		recorder := performRequest(t, router, http.MethodGet, "/posts/"+postID.String()+"/comments", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestCommentHandler_UpdateComment(t *testing.T) {
	userID := uuid.New()
	commentID := uuid.New()

	t.Run("OK", func(t *testing.T) {
		router, mockService := setupCommentRouter(t, userID)
		mockService.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *dto.UpdateCommentRequest) (*models.Comment, error) {
				assert.Equal(t, commentID, req.CommentID)
				assert.Equal(t, userID, req.ActorID)
				return &models.Comment{ID: commentID, AuthorID: userID, Content: req.Content}, nil
			})

		recorder := performRequest(t, router, http.MethodPatch, "/comments/"+commentID.String(), gin.H{"content": "edited"})

		assert.Equal(t, http.StatusOK, recorder.Code)
		var resp dto.CommentResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "edited", resp.Content)
	})

	t.Run("Forbidden for non-author", func(t *testing.T) {
		router, mockService := setupCommentRouter(t, userID)
		mockService.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, services.ErrForbidden)

		recorder := performRequest(t, router, http.MethodPatch, "/comments/"+commentID.String(), gin.H{"content": "edited"})

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("Bad request on missing content", func(t *testing.T) {
		router, _ := setupCommentRouter(t, userID)

		recorder := performRequest(t, router, http.MethodPatch, "/comments/"+commentID.String(), gin.H{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Content")
	})
}

func TestCommentHandler_DeleteComment(t *testing.T) {
	userID := uuid.New()
	commentID := uuid.New()

	t.Run("No content", func(t *testing.T) {
		router, mockService := setupCommentRouter(t, userID)
		mockService.EXPECT().Delete(gomock.Any(), &dto.DeleteCommentRequest{CommentID: commentID, ActorID: userID}).Return(nil)

		recorder := performRequest(t, router, http.MethodDelete, "/comments/"+commentID.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("Forbidden for non-author", func(t *testing.T) {
		router, mockService := setupCommentRouter(t, userID)
		mockService.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(services.ErrForbidden)

		recorder := performRequest(t, router, http.MethodDelete, "/comments/"+commentID.String(), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		router, mockService := setupCommentRouter(t, userID)
		mockService.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(services.ErrNotFound)

		recorder := performRequest(t, router, http.MethodDelete, "/comments/"+commentID.String(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

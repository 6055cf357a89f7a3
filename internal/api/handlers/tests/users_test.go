package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teamup-api/internal/api/handlers"
	"teamup-api/internal/api/middleware"
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

const testSecret = "handler-test-secret"

func setupUserRouter(t *testing.T) (*gin.Engine, *mock_services.MockUserService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mock_services.NewMockUserService(ctrl)
	handler := handlers.NewUserHandler(mockService, validator.New())

	router := newTestRouter()
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/refresh", handler.Refresh)
	router.POST("/auth/logout", handler.Logout)

	authed := router.Group("/")
	authed.Use(middleware.JWTAuthMiddleware(testSecret))
	authed.GET("/users/:id", handler.GetUserByID)
	return router, mockService
}

func TestUserHandler_Register(t *testing.T) {
	body := gin.H{"name": "Alex", "email": "alex@example.com", "password": "longenough"}

	t.Run("Created", func(t *testing.T) {
		router, mockService := setupUserRouter(t)
		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&models.User{ID: uuid.New(), Name: "Alex", Email: "alex@example.com"}, nil)

		recorder := performRequest(t, router, http.MethodPost, "/auth/register", body)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var resp dto.UserResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "alex@example.com", resp.Email)
	})

	t.Run("Conflict on duplicate email", func(t *testing.T) {
		router, mockService := setupUserRouter(t)
		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: email already registered", services.ErrConflict))

		recorder := performRequest(t, router, http.MethodPost, "/auth/register", body)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("Bad request on invalid email", func(t *testing.T) {
		router, _ := setupUserRouter(t)

		recorder := performRequest(t, router, http.MethodPost, "/auth/register", gin.H{"name": "Alex", "email": "not-an-email", "password": "longenough"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Email")
	})
}

func TestUserHandler_Login(t *testing.T) {
	body := gin.H{"email": "alex@example.com", "password": "longenough"}

	t.Run("OK returns token pair", func(t *testing.T) {
		router, mockService := setupUserRouter(t)
		tokens := &dto.TokenResponse{AccessToken: "access", RefreshToken: "refresh"}
		mockService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&models.User{ID: uuid.New()}, tokens, nil)

		recorder := performRequest(t, router, http.MethodPost, "/auth/login", body)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var resp dto.TokenResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "access", resp.AccessToken)
		assert.Equal(t, "refresh", resp.RefreshToken)
	})

	t.Run("Unauthorized on bad credentials", func(t *testing.T) {
		router, mockService := setupUserRouter(t)
		mockService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, nil, services.ErrInvalidCredentials)

		recorder := performRequest(t, router, http.MethodPost, "/auth/login", body)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid credentials")
	})
}

func TestUserHandler_Refresh(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		router, mockService := setupUserRouter(t)
		mockService.EXPECT().Refresh(gomock.Any(), &dto.RefreshRequest{RefreshToken: "old"}).
			Return(&dto.TokenResponse{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		recorder := performRequest(t, router, http.MethodPost, "/auth/refresh", gin.H{"refresh_token": "old"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Unauthorized on expired token", func(t *testing.T) {
		router, mockService := setupUserRouter(t)
		mockService.EXPECT().Refresh(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidCredentials)

		recorder := performRequest(t, router, http.MethodPost, "/auth/refresh", gin.H{"refresh_token": "stale"})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	t.Run("Valid token reaches the handler", func(t *testing.T) {
		router, mockService := setupUserRouter(t)
		mockService.EXPECT().GetByID(gomock.Any(), userID).Return(&models.User{ID: userID, Name: "Alex"}, nil)

		token, err := generateTestToken(userID, testSecret, time.Minute)
		require.NoError(t, err)

		request, _ := http.NewRequest(http.MethodGet, "/users/"+userID.String(), nil)
		request.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Missing header is rejected", func(t *testing.T) {
		router, _ := setupUserRouter(t)

		recorder := performRequest(t, router, http.MethodGet, "/users/"+userID.String(), nil)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Authorization header required")
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		router, _ := setupUserRouter(t)

		token, err := generateTestToken(userID, testSecret, -time.Minute)
		require.NoError(t, err)

		request, _ := http.NewRequest(http.MethodGet, "/users/"+userID.String(), nil)
		request.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Token has expired")
	})

	t.Run("Token signed with another secret is rejected", func(t *testing.T) {
		router, _ := setupUserRouter(t)

		token, err := generateTestToken(userID, "some-other-secret", time.Minute)
		require.NoError(t, err)

		request, _ := http.NewRequest(http.MethodGet, "/users/"+userID.String(), nil)
		request.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid token")
	})
}

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

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo              storage.UserRepository
	tokens            storage.RefreshTokenStore
	jwtSecret         string
	jwtExpiration     time.Duration
	refreshExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, tokens storage.RefreshTokenStore, jwtSecret string, jwtExpiration, refreshExpiration time.Duration) UserService {
	return &userService{
		repo:              repo,
		tokens:            tokens,
		jwtSecret:         jwtSecret,
		jwtExpiration:     jwtExpiration,
		refreshExpiration: refreshExpiration,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	user, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	userID, err := s.tokens.Resolve(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Printf("Error resolving refresh token: %v", err)
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}

	// Rotate: the presented token is single-use.
	if err := s.tokens.Delete(ctx, req.RefreshToken); err != nil {
		log.Printf("Error deleting rotated refresh token: %v", err)
	}

	return s.issueTokens(ctx, userID)
}

func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if err := s.tokens.Delete(ctx, req.RefreshToken); err != nil {
		log.Printf("Error deleting refresh token on logout: %v", err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", id))
	}
	return user, nil
}

// issueTokens builds a signed access token and stores a fresh opaque
// refresh token.
func (s *userService) issueTokens(ctx context.Context, userID uuid.UUID) (*dto.TokenResponse, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to generate login token: %w", err)
	}

	refreshToken := uuid.NewString()
	if err := s.tokens.Save(ctx, refreshToken, userID, s.refreshExpiration); err != nil {
		log.Printf("Error storing refresh token for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

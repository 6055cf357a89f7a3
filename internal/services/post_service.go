package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"teamup-api/internal/models"
	"teamup-api/internal/storage"
	"teamup-api/internal/transport/dto"

	"github.com/google/uuid"
)

type postService struct {
	repo storage.PostRepository
}

// NewPostService creates a new instance of PostService.
func NewPostService(repo storage.PostRepository) PostService {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, req *dto.CreatePostRequest) (*models.Post, error) {
	if !req.Deadline.After(time.Now()) {
		return nil, fmt.Errorf("%w: deadline must be in the future", ErrValidation)
	}

	post, err := s.repo.Create(ctx, req)
	if err != nil {
		log.Printf("PostService: Error creating post: %v", err)
		return nil, mapRepoError(err, "creating post")
	}
	return post, nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching post %s", id))
	}
	return post, nil
}

func (s *postService) List(ctx context.Context, req *dto.ListPostsRequest) ([]models.Post, error) {
	posts, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing posts")
	}
	return posts, nil
}

// Close stamps the post closed. Closing an already closed post is a no-op
// and returns the post as is.
func (s *postService) Close(ctx context.Context, req *dto.ClosePostRequest) (*models.Post, error) {
	post, err := s.repo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching post %s for close", req.PostID))
	}
	if !CanManagePost(post, req.ActorID) {
		log.Printf("ClosePost: Forbidden attempt by user %s on post %s owned by %s", req.ActorID, post.ID, post.AuthorID)
		return nil, ErrForbidden
	}

	closed, err := s.repo.Close(ctx, req.PostID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("closing post %s", req.PostID))
	}
	return closed, nil
}

func (s *postService) Delete(ctx context.Context, req *dto.DeletePostRequest) error {
	post, err := s.repo.GetByID(ctx, req.PostID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching post %s for delete", req.PostID))
	}
	if !CanManagePost(post, req.ActorID) {
		log.Printf("DeletePost: Forbidden attempt by user %s on post %s owned by %s", req.ActorID, post.ID, post.AuthorID)
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, req.PostID); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting post %s", req.PostID))
	}
	return nil
}

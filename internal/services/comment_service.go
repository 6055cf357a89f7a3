package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"teamup-api/internal/models"
	"teamup-api/internal/storage"
	"teamup-api/internal/transport/dto"

	"github.com/google/uuid"
)

type commentService struct {
	commentRepo storage.CommentRepository
	postRepo    storage.PostRepository
	profileRepo storage.ProfileRepository
}

// NewCommentService creates a new instance of CommentService.
func NewCommentService(
	commentRepo storage.CommentRepository,
	postRepo storage.PostRepository,
	profileRepo storage.ProfileRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		profileRepo: profileRepo,
	}
}

// Create writes a comment, or a reply when ParentID is set. Replies stay one
// level deep: the parent must be a top-level comment on the same post.
func (s *commentService) Create(ctx context.Context, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching post %s for comment", req.PostID))
	}

	if req.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, mapRepoError(err, fmt.Sprintf("fetching parent comment %s", *req.ParentID))
		}
		if parent.PostID != req.PostID {
			return nil, fmt.Errorf("%w: parent comment belongs to another post", ErrValidation)
		}
		if parent.ParentID != nil {
			return nil, fmt.Errorf("%w: cannot reply to a reply", ErrValidation)
		}
	}

	comment, err := s.commentRepo.Create(ctx, &dto.CreateCommentRecord{
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
		ParentID: req.ParentID,
		Content:  req.Content,
	})
	if err != nil {
		log.Printf("CommentService: Error creating comment: %v", err)
		return nil, mapRepoError(err, "creating comment")
	}
	return comment, nil
}

// ListByPost returns the post's comments threaded: top-level comments oldest
// first, each with its replies oldest first and the author's nickname.
// Reading comments needs no authentication.
func (s *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]models.CommentThread, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching post %s for comments", postID))
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing comments for post %s", postID))
	}

	nicknames, err := s.resolveNicknames(ctx, comments)
	if err != nil {
		return nil, err
	}

	threads := make([]models.CommentThread, 0, len(comments))
	index := make(map[uuid.UUID]int, len(comments))
	for i := range comments {
		comment := &comments[i]
		if comment.ParentID == nil {
			threads = append(threads, models.CommentThread{Comment: comment, Nickname: nicknames[comment.AuthorID]})
			index[comment.ID] = len(threads) - 1
			continue
		}
		// Rows come back oldest first, so the parent is already placed.
		parent, ok := index[*comment.ParentID]
		if !ok {
			log.Printf("ListComments: Reply %s references missing parent %s", comment.ID, *comment.ParentID)
			continue
		}
		threads[parent].Replies = append(threads[parent].Replies,
			models.CommentThread{Comment: comment, Nickname: nicknames[comment.AuthorID]})
	}
	return threads, nil
}

// Update rewrites the body of the actor's own comment.
func (s *commentService) Update(ctx context.Context, req *dto.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, req.CommentID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching comment %s for update", req.CommentID))
	}
	if !CanModifyComment(comment, req.ActorID) {
		log.Printf("UpdateComment: Forbidden attempt by user %s on comment %s written by %s", req.ActorID, comment.ID, comment.AuthorID)
		return nil, ErrForbidden
	}

	updated, err := s.commentRepo.UpdateContent(ctx, req.CommentID, req.Content)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating comment %s", req.CommentID))
	}
	return updated, nil
}

// Delete removes the actor's own comment. Replies below a top-level comment
// go with it.
func (s *commentService) Delete(ctx context.Context, req *dto.DeleteCommentRequest) error {
	comment, err := s.commentRepo.GetByID(ctx, req.CommentID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching comment %s for delete", req.CommentID))
	}
	if !CanModifyComment(comment, req.ActorID) {
		log.Printf("DeleteComment: Forbidden attempt by user %s on comment %s written by %s", req.ActorID, comment.ID, comment.AuthorID)
		return ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, req.CommentID); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting comment %s", req.CommentID))
	}
	return nil
}

// resolveNicknames fetches each distinct author's profile once. A missing
// profile leaves the nickname empty instead of failing the read.
func (s *commentService) resolveNicknames(ctx context.Context, comments []models.Comment) (map[uuid.UUID]string, error) {
	nicknames := make(map[uuid.UUID]string)
	for i := range comments {
		authorID := comments[i].AuthorID
		if _, seen := nicknames[authorID]; seen {
			continue
		}
		profile, err := s.profileRepo.GetByUserID(ctx, authorID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				nicknames[authorID] = ""
				continue
			}
			return nil, mapRepoError(err, fmt.Sprintf("fetching profile of %s", authorID))
		}
		nicknames[authorID] = profile.Nickname
	}
	return nicknames, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"teamup-api/internal/models"
	"teamup-api/internal/storage"
	"teamup-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const commentColumns = "id, post_id, author_id, parent_id, content, created_at, updated_at"

// CommentRepo implements the storage.CommentRepository interface using
// PostgreSQL. parent_id carries ON DELETE CASCADE, so removing a top-level
// comment takes its replies with it.
type CommentRepo struct {
	db Querier
}

// NewCommentRepo creates a new CommentRepo.
func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{db: pool}
}

// Compile-time check to ensure CommentRepo implements CommentRepository
var _ storage.CommentRepository = (*CommentRepo)(nil)

// Create saves a new comment or reply.
func (r *CommentRepo) Create(ctx context.Context, req *dto.CreateCommentRecord) (*models.Comment, error) {
	query := `
		INSERT INTO comments (id, post_id, author_id, parent_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + commentColumns

	row := r.db.QueryRow(ctx, query, uuid.New(), req.PostID, req.AuthorID, req.ParentID, req.Content)

	comment, err := scanComment(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			log.Printf("Error creating comment: foreign key violation: %v\n", err)
			return nil, fmt.Errorf("failed to create comment: unknown post, user or parent: %w", storage.ErrConflict)
		}
		log.Printf("Error creating comment: %v\n", err)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	log.Printf("Comment created successfully with ID: %s", comment.ID)
	return comment, nil
}

// GetByID retrieves a specific comment by its ID.
func (r *CommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	query := "SELECT " + commentColumns + " FROM comments WHERE id = $1"

	comment, err := scanComment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning comment by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get comment by ID %s: %w", id, err)
	}

	return comment, nil
}

// ListByPost retrieves every comment on one post, oldest first, so callers
// can thread replies under their parents in submission order.
func (r *CommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	query := "SELECT " + commentColumns + " FROM comments WHERE post_id = $1 ORDER BY created_at ASC"

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		log.Printf("Error querying comments for post %s: %v\n", postID, err)
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Comment])
	if err != nil {
		log.Printf("Error scanning comments: %v\n", err)
		return nil, fmt.Errorf("failed to scan comments: %w", err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// UpdateContent rewrites the body of a comment.
func (r *CommentRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error) {
	query := `
		UPDATE comments
		SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + commentColumns

	comment, err := scanComment(r.db.QueryRow(ctx, query, id, content))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating comment %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update comment %s: %w", id, err)
	}

	return comment, nil
}

// Delete removes a comment and, through the cascade, its replies.
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		log.Printf("Error deleting comment %s: %v\n", id, err)
		return fmt.Errorf("failed to delete comment %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	log.Printf("Comment deleted successfully: %s", id)
	return nil
}

func scanComment(row pgx.Row) (*models.Comment, error) {
	var comment models.Comment
	err := row.Scan(&comment.ID, &comment.PostID, &comment.AuthorID, &comment.ParentID,
		&comment.Content, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

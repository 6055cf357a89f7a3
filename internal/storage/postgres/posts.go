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

const postColumns = "id, author_id, title, content, category, head_count, deadline, closed_at, created_at, updated_at"

// PostRepo implements the storage.PostRepository interface using PostgreSQL.
type PostRepo struct {
	db Querier
}

// NewPostRepo creates a new PostRepo.
func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{db: pool}
}

// WithTx creates a new PostRepo bound to the transaction.
func (r *PostRepo) WithTx(tx pgx.Tx) storage.PostRepository {
	return &PostRepo{db: tx}
}

// Compile-time check to ensure PostRepo implements PostRepository
var _ storage.PostRepository = (*PostRepo)(nil)

// Create saves a new recruitment post.
func (r *PostRepo) Create(ctx context.Context, req *dto.CreatePostRequest) (*models.Post, error) {
	query := `
		INSERT INTO posts (id, author_id, title, content, category, head_count, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + postColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(), req.AuthorID, req.Title, req.Content, req.Category, req.HeadCount, req.Deadline)

	post, err := scanPost(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			log.Printf("Error creating post: unknown author %s: %v\n", req.AuthorID, err)
			return nil, fmt.Errorf("failed to create post: invalid author ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating post: %v\n", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	log.Printf("Post created successfully with ID: %s", post.ID)
	return post, nil
}

// GetByID retrieves a specific post by its ID.
func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	query := "SELECT " + postColumns + " FROM posts WHERE id = $1"

	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning post by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get post by ID %s: %w", id, err)
	}

	return post, nil
}

// List retrieves posts, newest first.
func (r *PostRepo) List(ctx context.Context, req *dto.ListPostsRequest) ([]models.Post, error) {
	baseQuery := "SELECT " + postColumns + " FROM posts"

	var conditions []string
	args := []interface{}{}
	if req.OpenOnly {
		conditions = append(conditions, "closed_at IS NULL", "deadline > NOW()")
	}

	query := buildListQuery(baseQuery, conditions, &args, req.Offset, req.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying posts: %v\n", err)
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Post])
	if err != nil {
		log.Printf("Error scanning posts: %v\n", err)
		return nil, fmt.Errorf("failed to scan posts: %w", err)
	}

	if posts == nil {
		posts = []models.Post{}
	}

	return posts, nil
}

// Close stamps closed_at once. Closing an already closed post leaves the
// original timestamp in place; either way the resulting row is returned.
func (r *PostRepo) Close(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	query := `
		UPDATE posts
		SET closed_at = COALESCE(closed_at, NOW()), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error closing post %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to close post %s: %w", id, err)
	}

	return post, nil
}

// Delete removes the post. Applies and peer reviews hanging off it go with
// it via ON DELETE CASCADE.
func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		log.Printf("Error deleting post %s: %v\n", id, err)
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	log.Printf("Post deleted successfully: %s", id)
	return nil
}

func scanPost(row pgx.Row) (*models.Post, error) {
	var post models.Post
	err := row.Scan(&post.ID, &post.AuthorID, &post.Title, &post.Content, &post.Category,
		&post.HeadCount, &post.Deadline, &post.ClosedAt, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

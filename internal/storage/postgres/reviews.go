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

const reviewColumns = "id, type, reviewer_id, reviewee_id, apply_id, content, rating, created_at"

// ReviewRepo implements the storage.ReviewRepository interface using
// PostgreSQL. A partial unique index on (reviewer_id, reviewee_id, apply_id)
// WHERE type = 'PEER' backs the one-peer-review-per-triple rule.
type ReviewRepo struct {
	db Querier
}

// NewReviewRepo creates a new ReviewRepo.
func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{db: pool}
}

// Compile-time check to ensure ReviewRepo implements ReviewRepository
var _ storage.ReviewRepository = (*ReviewRepo)(nil)

// Create saves a new review of either variant.
func (r *ReviewRepo) Create(ctx context.Context, req *dto.CreateReviewRecord) (*models.Review, error) {
	query := `
		INSERT INTO reviews (id, type, reviewer_id, reviewee_id, apply_id, content, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING ` + reviewColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(), req.Type, req.ReviewerID, req.RevieweeID, req.ApplyID, req.Content, req.Rating)

	review, err := scanReview(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				log.Printf("Error creating review: duplicate peer review by %s on %s\n", req.ReviewerID, req.RevieweeID)
				return nil, fmt.Errorf("failed to create review: already reviewed: %w", storage.ErrConflict)
			case pgForeignKeyViolation:
				log.Printf("Error creating review: foreign key violation: %v\n", err)
				return nil, fmt.Errorf("failed to create review: unknown user or apply: %w", storage.ErrConflict)
			}
		}
		log.Printf("Error creating review: %v\n", err)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	log.Printf("Review created successfully with ID: %s", review.ID)
	return review, nil
}

// GetByID retrieves a specific review by its ID.
func (r *ReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	query := "SELECT " + reviewColumns + " FROM reviews WHERE id = $1"

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning review by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get review by ID %s: %w", id, err)
	}

	return review, nil
}

// Delete removes a review.
func (r *ReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		log.Printf("Error deleting review %s: %v\n", id, err)
		return fmt.Errorf("failed to delete review %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	log.Printf("Review deleted successfully: %s", id)
	return nil
}

// PeerReviewExists reports whether the (reviewer, reviewee, apply) triple
// already carries a peer review.
func (r *ReviewRepo) PeerReviewExists(ctx context.Context, reviewerID, revieweeID, applyID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reviews
			WHERE type = $1 AND reviewer_id = $2 AND reviewee_id = $3 AND apply_id = $4
		)
	`, models.ReviewTypePeer, reviewerID, revieweeID, applyID).Scan(&exists)
	if err != nil {
		log.Printf("Error checking peer review existence: %v\n", err)
		return false, fmt.Errorf("failed to check peer review existence: %w", err)
	}

	return exists, nil
}

// ListByReviewee retrieves all reviews received by a user, newest first.
func (r *ReviewRepo) ListByReviewee(ctx context.Context, revieweeID uuid.UUID) ([]models.Review, error) {
	return r.list(ctx, "reviewee_id = $1", revieweeID)
}

// ListByReviewer retrieves all reviews written by a user, newest first.
func (r *ReviewRepo) ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]models.Review, error) {
	return r.list(ctx, "reviewer_id = $1", reviewerID)
}

// ListPeerByApply retrieves the peer reviews exchanged over one apply.
func (r *ReviewRepo) ListPeerByApply(ctx context.Context, applyID uuid.UUID) ([]models.Review, error) {
	query := "SELECT " + reviewColumns + " FROM reviews WHERE type = $1 AND apply_id = $2 ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, models.ReviewTypePeer, applyID)
	if err != nil {
		log.Printf("Error querying peer reviews for apply %s: %v\n", applyID, err)
		return nil, fmt.Errorf("failed to query peer reviews: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

func (r *ReviewRepo) list(ctx context.Context, condition string, arg any) ([]models.Review, error) {
	query := "SELECT " + reviewColumns + " FROM reviews WHERE " + condition + " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		log.Printf("Error querying reviews (%s): %v\n", condition, err)
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

func scanReview(row pgx.Row) (*models.Review, error) {
	var review models.Review
	err := row.Scan(&review.ID, &review.Type, &review.ReviewerID, &review.RevieweeID,
		&review.ApplyID, &review.Content, &review.Rating, &review.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func collectReviews(rows pgx.Rows) ([]models.Review, error) {
	reviews, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Review])
	if err != nil {
		log.Printf("Error scanning reviews: %v\n", err)
		return nil, fmt.Errorf("failed to scan reviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

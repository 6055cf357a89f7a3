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

const applyColumns = "id, post_id, applicant_id, resume_id, reason, is_selected, created_at, updated_at"

// ApplyRepo implements the storage.ApplyRepository interface using PostgreSQL.
type ApplyRepo struct {
	db Querier
}

// NewApplyRepo creates a new ApplyRepo.
func NewApplyRepo(pool *pgxpool.Pool) *ApplyRepo {
	return &ApplyRepo{db: pool}
}

// WithTx creates a new ApplyRepo bound to the transaction.
func (r *ApplyRepo) WithTx(tx pgx.Tx) storage.ApplyRepository {
	return &ApplyRepo{db: tx}
}

// Compile-time check to ensure ApplyRepo implements ApplyRepository
var _ storage.ApplyRepository = (*ApplyRepo)(nil)

// Create saves a new apply. The applies_applicant_post_key unique constraint
// backs up the service-level duplicate check, so a concurrent double submit
// surfaces here as ErrConflict.
func (r *ApplyRepo) Create(ctx context.Context, req *dto.CreateApplyRequest) (*models.Apply, error) {
	query := `
		INSERT INTO applies (id, post_id, applicant_id, resume_id, reason, is_selected, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, false, NOW(), NOW())
		RETURNING ` + applyColumns

	row := r.db.QueryRow(ctx, query, uuid.New(), req.PostID, req.ApplicantID, req.ResumeID, req.Reason)

	apply, err := scanApply(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				log.Printf("Error creating apply: duplicate for applicant %s on post %s\n", req.ApplicantID, req.PostID)
				return nil, fmt.Errorf("failed to create apply: already applied: %w", storage.ErrConflict)
			case pgForeignKeyViolation:
				log.Printf("Error creating apply: foreign key violation: %v\n", err)
				return nil, fmt.Errorf("failed to create apply: unknown post, user or resume: %w", storage.ErrConflict)
			}
		}
		log.Printf("Error creating apply: %v\n", err)
		return nil, fmt.Errorf("failed to create apply: %w", err)
	}

	log.Printf("Apply created successfully with ID: %s", apply.ID)
	return apply, nil
}

// GetByID retrieves a specific apply by its ID.
func (r *ApplyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Apply, error) {
	query := "SELECT " + applyColumns + " FROM applies WHERE id = $1"

	apply, err := scanApply(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning apply by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get apply by ID %s: %w", id, err)
	}

	return apply, nil
}

// ExistsByApplicantAndPost reports whether the applicant already applied.
func (r *ApplyRepo) ExistsByApplicantAndPost(ctx context.Context, applicantID, postID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM applies WHERE applicant_id = $1 AND post_id = $2)",
		applicantID, postID).Scan(&exists)
	if err != nil {
		log.Printf("Error checking apply existence for applicant %s on post %s: %v\n", applicantID, postID, err)
		return false, fmt.Errorf("failed to check apply existence: %w", err)
	}

	return exists, nil
}

// ListByPost retrieves applies for one post, newest first.
func (r *ApplyRepo) ListByPost(ctx context.Context, req *dto.ListAppliesByPostRequest) ([]models.Apply, error) {
	baseQuery := "SELECT " + applyColumns + " FROM applies"
	conditions := []string{"post_id = $1"}
	args := []interface{}{req.PostID}

	query := buildListQuery(baseQuery, conditions, &args, req.Offset, req.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying applies for post %s: %v\n", req.PostID, err)
		return nil, fmt.Errorf("failed to query applies by post: %w", err)
	}
	defer rows.Close()

	return collectApplies(rows)
}

// ListByApplicant retrieves applies submitted by one user, newest first.
func (r *ApplyRepo) ListByApplicant(ctx context.Context, req *dto.ListMyAppliesRequest) ([]models.Apply, error) {
	baseQuery := "SELECT " + applyColumns + " FROM applies"
	conditions := []string{"applicant_id = $1"}
	args := []interface{}{req.ApplicantID}

	if req.SelectedOnly {
		conditions = append(conditions, "is_selected = true")
	}

	query := buildListQuery(baseQuery, conditions, &args, req.Offset, req.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying applies for applicant %s: %v\n", req.ApplicantID, err)
		return nil, fmt.Errorf("failed to query applies by applicant: %w", err)
	}
	defer rows.Close()

	return collectApplies(rows)
}

// UpdateSelection sets is_selected. Idempotent; last write wins.
func (r *ApplyRepo) UpdateSelection(ctx context.Context, id uuid.UUID, selected bool) (*models.Apply, error) {
	query := `
		UPDATE applies
		SET is_selected = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + applyColumns

	apply, err := scanApply(r.db.QueryRow(ctx, query, id, selected))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating selection on apply %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update selection on apply %s: %w", id, err)
	}

	return apply, nil
}

// DeleteIfNotSelected removes the apply only while it is unselected. One
// conditional statement, so a cancel racing a selection can never delete a
// selected row.
func (r *ApplyRepo) DeleteIfNotSelected(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM applies WHERE id = $1 AND is_selected = false", id)
	if err != nil {
		log.Printf("Error deleting apply %s: %v\n", id, err)
		return false, fmt.Errorf("failed to delete apply %s: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}

// CountSelectedByPost counts the selected applies of a post. Kept for the
// head-count policy; not consulted on the submit path.
func (r *ApplyRepo) CountSelectedByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM applies WHERE post_id = $1 AND is_selected = true",
		postID).Scan(&count)
	if err != nil {
		log.Printf("Error counting selected applies for post %s: %v\n", postID, err)
		return 0, fmt.Errorf("failed to count selected applies: %w", err)
	}

	return count, nil
}

func scanApply(row pgx.Row) (*models.Apply, error) {
	var apply models.Apply
	err := row.Scan(&apply.ID, &apply.PostID, &apply.ApplicantID, &apply.ResumeID,
		&apply.Reason, &apply.IsSelected, &apply.CreatedAt, &apply.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &apply, nil
}

func collectApplies(rows pgx.Rows) ([]models.Apply, error) {
	applies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Apply])
	if err != nil {
		log.Printf("Error scanning applies: %v\n", err)
		return nil, fmt.Errorf("failed to scan applies: %w", err)
	}
	if applies == nil {
		applies = []models.Apply{}
	}
	return applies, nil
}

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
	"github.com/jackc/pgx/v5/pgxpool"
)

const resumeColumns = "id, owner_id, title, content, is_main, created_at, updated_at"

// ResumeRepo implements the storage.ResumeRepository interface using PostgreSQL.
type ResumeRepo struct {
	pool *pgxpool.Pool
}

// NewResumeRepo creates a new ResumeRepo.
func NewResumeRepo(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

// Compile-time check to ensure ResumeRepo implements ResumeRepository
var _ storage.ResumeRepository = (*ResumeRepo)(nil)

// Create saves a new resume together with its skills. When IsMain is set, the
// owner's previous main resume is cleared in the same transaction.
func (r *ResumeRepo) Create(ctx context.Context, req *dto.CreateResumeRequest) (*models.Resume, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if req.IsMain {
		if _, err := tx.Exec(ctx,
			"UPDATE resumes SET is_main = false, updated_at = NOW() WHERE owner_id = $1 AND is_main = true",
			req.OwnerID); err != nil {
			log.Printf("Error clearing main resume for owner %s: %v\n", req.OwnerID, err)
			return nil, fmt.Errorf("failed to clear main resume: %w", err)
		}
	}

	query := `
		INSERT INTO resumes (id, owner_id, title, content, is_main, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + resumeColumns

	row := tx.QueryRow(ctx, query, uuid.New(), req.OwnerID, req.Title, req.Content, req.IsMain)

	var resume models.Resume
	err = row.Scan(&resume.ID, &resume.OwnerID, &resume.Title, &resume.Content,
		&resume.IsMain, &resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		log.Printf("Error creating resume: %v\n", err)
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}

	if err := setSkills(ctx, tx, resume.ID, req.Skills); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit resume creation: %w", err)
	}

	log.Printf("Resume created successfully with ID: %s", resume.ID)
	return &resume, nil
}

// GetByID retrieves a specific resume by its ID.
func (r *ResumeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Resume, error) {
	query := "SELECT " + resumeColumns + " FROM resumes WHERE id = $1"
	row := r.pool.QueryRow(ctx, query, id)

	var resume models.Resume
	err := row.Scan(&resume.ID, &resume.OwnerID, &resume.Title, &resume.Content,
		&resume.IsMain, &resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning resume by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get resume by ID %s: %w", id, err)
	}

	return &resume, nil
}

// ListByOwner retrieves all resumes of one user, newest first.
func (r *ResumeRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Resume, error) {
	query := "SELECT " + resumeColumns + " FROM resumes WHERE owner_id = $1 ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		log.Printf("Error querying resumes for owner %s: %v\n", ownerID, err)
		return nil, fmt.Errorf("failed to query resumes: %w", err)
	}
	defer rows.Close()

	resumes, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Resume])
	if err != nil {
		log.Printf("Error scanning resumes for owner %s: %v\n", ownerID, err)
		return nil, fmt.Errorf("failed to scan resumes: %w", err)
	}

	if resumes == nil {
		resumes = []models.Resume{}
	}

	return resumes, nil
}

// Update patches the provided fields only.
func (r *ResumeRepo) Update(ctx context.Context, req *dto.UpdateResumeRequest) (*models.Resume, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE resumes
		SET title = COALESCE($2, title),
		    content = COALESCE($3, content),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + resumeColumns

	row := tx.QueryRow(ctx, query, req.ResumeID, req.Title, req.Content)

	var resume models.Resume
	err = row.Scan(&resume.ID, &resume.OwnerID, &resume.Title, &resume.Content,
		&resume.IsMain, &resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating resume %s: %v\n", req.ResumeID, err)
		return nil, fmt.Errorf("failed to update resume %s: %w", req.ResumeID, err)
	}

	if req.Skills != nil {
		if err := setSkills(ctx, tx, resume.ID, *req.Skills); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit resume update: %w", err)
	}

	return &resume, nil
}

// SetMain clears the owner's current main resume and marks the given one,
// inside one transaction so the at-most-one-main invariant always holds.
func (r *ResumeRepo) SetMain(ctx context.Context, ownerID, resumeID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		"UPDATE resumes SET is_main = false, updated_at = NOW() WHERE owner_id = $1 AND is_main = true",
		ownerID); err != nil {
		log.Printf("Error clearing main resume for owner %s: %v\n", ownerID, err)
		return fmt.Errorf("failed to clear main resume: %w", err)
	}

	tag, err := tx.Exec(ctx,
		"UPDATE resumes SET is_main = true, updated_at = NOW() WHERE id = $1 AND owner_id = $2",
		resumeID, ownerID)
	if err != nil {
		log.Printf("Error setting main resume %s: %v\n", resumeID, err)
		return fmt.Errorf("failed to set main resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return tx.Commit(ctx)
}

// Delete removes the resume; skill links cascade.
func (r *ResumeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM resumes WHERE id = $1", id)
	if err != nil {
		log.Printf("Error deleting resume %s: %v\n", id, err)
		return fmt.Errorf("failed to delete resume %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// ListSkillNames returns the skill names linked to a resume.
func (r *ResumeRepo) ListSkillNames(ctx context.Context, resumeID uuid.UUID) ([]string, error) {
	query := `
		SELECT s.name
		FROM skills s
		JOIN resume_skills rs ON rs.skill_id = s.id
		WHERE rs.resume_id = $1
		ORDER BY s.name
	`
	rows, err := r.pool.Query(ctx, query, resumeID)
	if err != nil {
		log.Printf("Error querying skills for resume %s: %v\n", resumeID, err)
		return nil, fmt.Errorf("failed to query resume skills: %w", err)
	}
	defer rows.Close()

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan resume skills: %w", err)
	}
	if names == nil {
		names = []string{}
	}

	return names, nil
}

// SetSkills replaces the skill set linked to a resume.
func (r *ResumeRepo) SetSkills(ctx context.Context, resumeID uuid.UUID, names []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := setSkills(ctx, tx, resumeID, names); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// setSkills upserts skills by name and relinks them to the resume.
func setSkills(ctx context.Context, tx pgx.Tx, resumeID uuid.UUID, names []string) error {
	if _, err := tx.Exec(ctx, "DELETE FROM resume_skills WHERE resume_id = $1", resumeID); err != nil {
		log.Printf("Error clearing skills for resume %s: %v\n", resumeID, err)
		return fmt.Errorf("failed to clear resume skills: %w", err)
	}

	for _, name := range names {
		var skillID uuid.UUID
		err := tx.QueryRow(ctx, `
			INSERT INTO skills (id, name)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, uuid.New(), name).Scan(&skillID)
		if err != nil {
			log.Printf("Error upserting skill %q: %v\n", name, err)
			return fmt.Errorf("failed to upsert skill %q: %w", name, err)
		}

		if _, err := tx.Exec(ctx,
			"INSERT INTO resume_skills (resume_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			resumeID, skillID); err != nil {
			return fmt.Errorf("failed to link skill %q: %w", name, err)
		}
	}

	return nil
}

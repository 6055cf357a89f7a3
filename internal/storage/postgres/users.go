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
	"golang.org/x/crypto/bcrypt"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

// Create inserts the user and an empty profile row in one transaction.
func (r *UserRepo) Create(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, email, password_hash, created_at, updated_at
	`
	row := tx.QueryRow(ctx, query, uuid.New(), req.Name, req.Email, string(hash))

	var user models.User
	err = row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			log.Printf("Error creating user: duplicate email %s\n", req.Email)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user: %v\n", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = req.Name
	}
	profileQuery := `
		INSERT INTO profiles (id, user_id, nickname, introduction, is_visible, created_at, updated_at)
		VALUES ($1, $2, $3, '', true, NOW(), NOW())
	`
	if _, err := tx.Exec(ctx, profileQuery, uuid.New(), user.ID, nickname); err != nil {
		log.Printf("Error creating profile for user %s: %v\n", user.ID, err)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit user creation: %w", err)
	}

	log.Printf("User created successfully with ID: %s", user.ID)
	return &user, nil
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}

	return &user, nil
}

// GetByEmail retrieves a single user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	row := r.pool.QueryRow(ctx, query, email)

	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by email %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// ProfileRepo implements the storage.ProfileRepository interface.
type ProfileRepo struct {
	db Querier
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{db: pool}
}

var _ storage.ProfileRepository = (*ProfileRepo)(nil)

// GetByUserID retrieves the profile attached to a user.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT id, user_id, nickname, introduction, is_visible, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	row := r.db.QueryRow(ctx, query, userID)

	var profile models.Profile
	err := row.Scan(&profile.ID, &profile.UserID, &profile.Nickname, &profile.Introduction,
		&profile.IsVisible, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning profile for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to get profile for user %s: %w", userID, err)
	}

	return &profile, nil
}

package integration_tests

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"teamup-api/internal/models"
	"teamup-api/internal/storage/postgres"
	"teamup-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

// getTestPool connects to the database named by TEST_DATABASE_URL and makes
// sure the schema exists. Tests are skipped when the variable is unset so the
// unit suite stays runnable without infrastructure.
func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set, skipping integration test")
	}

	if testPool != nil {
		return testPool
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "Failed to create test connection pool")
	require.NoError(t, pool.Ping(ctx), "Failed to ping test database")

	applySchema(ctx, t, pool)
	testPool = pool
	return testPool
}

// applySchema loads migrations/schema.sql once against an empty database.
func applySchema(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	var exists bool
	err := pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'users')",
	).Scan(&exists)
	require.NoError(t, err, "Failed to inspect test database schema")
	if exists {
		return
	}

	schemaPath := filepath.Join("..", "..", "..", "migrations", "schema.sql")
	ddl, err := os.ReadFile(schemaPath)
	require.NoError(t, err, "Failed to read %s", schemaPath)

	_, err = pool.Exec(ctx, string(ddl))
	require.NoError(t, err, "Failed to apply schema")
}

// cleanupTables truncates the given tables after a test, cascading to
// dependents so ordering does not matter.
func cleanupTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()
	if len(tables) == 0 {
		return
	}
	query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(tables, ", "))
	if _, err := pool.Exec(ctx, query); err != nil {
		t.Logf("WARN: failed to clean up tables %v: %v", tables, err)
	}
}

func createTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, email, name string) *models.User {
	t.Helper()
	userRepo := postgres.NewUserRepo(pool)
	user, err := userRepo.Create(ctx, &dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err, "Failed to create test user %s", email)
	require.NotNil(t, user)
	return user
}

func createTestPost(t *testing.T, ctx context.Context, pool *pgxpool.Pool, authorID uuid.UUID, deadline time.Time) *models.Post {
	t.Helper()
	postRepo := postgres.NewPostRepo(pool)
	post, err := postRepo.Create(ctx, &dto.CreatePostRequest{
		AuthorID:  authorID,
		Title:     "Integration test post",
		Content:   "Looking for teammates",
		Category:  "BACKEND",
		HeadCount: 2,
		Deadline:  deadline,
	})
	require.NoError(t, err, "Failed to create test post for author %s", authorID)
	require.NotNil(t, post)
	return post
}

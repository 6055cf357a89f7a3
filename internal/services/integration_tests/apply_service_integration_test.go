package integration_tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"teamup-api/internal/services"
	"teamup-api/internal/storage/postgres"
	"teamup-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApplyServiceIntegrationTest(t *testing.T) (context.Context, services.ApplyService, *postgres.ApplyRepo) {
	t.Helper()
	pool := getTestPool(t)
	applyRepo := postgres.NewApplyRepo(pool)
	svc := services.NewApplyService(
		applyRepo,
		postgres.NewPostRepo(pool),
		postgres.NewResumeRepo(pool),
		postgres.NewUserRepo(pool),
		postgres.NewProfileRepo(pool),
		postgres.NewAnalysisRepo(pool),
		nil, // no scoring in integration runs
	)
	return context.Background(), svc, applyRepo
}

func TestApplyService_Integration_Submit(t *testing.T) {
	ctx, svc, _ := setupApplyServiceIntegrationTest(t)
	pool := getTestPool(t)
	defer cleanupTables(ctx, t, pool, "users")

	author := createTestUser(t, ctx, pool, "submit-author@test.com", "Author")
	applicant := createTestUser(t, ctx, pool, "submit-applicant@test.com", "Applicant")
	post := createTestPost(t, ctx, pool, author.ID, time.Now().Add(24*time.Hour))

	apply, err := svc.Submit(ctx, &dto.SubmitApplyRequest{
		PostID:      post.ID,
		ApplicantID: applicant.ID,
		Reason:      "integration submit",
	})
	require.NoError(t, err)
	require.NotNil(t, apply)
	assert.False(t, apply.IsSelected)

	// Second submission trips the unique constraint path.
	_, err = svc.Submit(ctx, &dto.SubmitApplyRequest{
		PostID:      post.ID,
		ApplicantID: applicant.ID,
		Reason:      "again",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict), "Expected Conflict, got %v", err)
}

func TestApplyService_Integration_CancelAndSelection(t *testing.T) {
	ctx, svc, applyRepo := setupApplyServiceIntegrationTest(t)
	pool := getTestPool(t)
	defer cleanupTables(ctx, t, pool, "users")

	author := createTestUser(t, ctx, pool, "cancel-author@test.com", "Author")
	applicant := createTestUser(t, ctx, pool, "cancel-applicant@test.com", "Applicant")
	post := createTestPost(t, ctx, pool, author.ID, time.Now().Add(24*time.Hour))

	apply, err := svc.Submit(ctx, &dto.SubmitApplyRequest{
		PostID:      post.ID,
		ApplicantID: applicant.ID,
		Reason:      "integration cancel",
	})
	require.NoError(t, err)

	// Author selects the apply; the applicant can no longer cancel.
	selected, err := svc.ToggleSelection(ctx, &dto.ToggleSelectionRequest{
		ApplyID:  apply.ID,
		ActorID:  author.ID,
		Selected: true,
	})
	require.NoError(t, err)
	assert.True(t, selected.IsSelected)

	err = svc.Cancel(ctx, &dto.CancelApplyRequest{ApplyID: apply.ID, ActorID: applicant.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict), "Expected Conflict, got %v", err)

	// Unselect, then cancel goes through and the row is gone.
	_, err = svc.ToggleSelection(ctx, &dto.ToggleSelectionRequest{
		ApplyID:  apply.ID,
		ActorID:  author.ID,
		Selected: false,
	})
	require.NoError(t, err)

	err = svc.Cancel(ctx, &dto.CancelApplyRequest{ApplyID: apply.ID, ActorID: applicant.ID})
	require.NoError(t, err)

	_, err = applyRepo.GetByID(ctx, apply.ID)
	require.Error(t, err)
}

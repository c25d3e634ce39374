package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"trajmatch/config"
	"trajmatch/internal/domain/entity"
	"trajmatch/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepository needs a disposable Redis, e.g. REDIS_ADDR=localhost:6379.
func newTestRepository(t *testing.T, maxRuns int) *RunProgressRepository {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping redis integration test")
	}

	repo, err := Open(context.Background(), &config.RedisConfig{
		Addr:      addr,
		KeyPrefix: "trajmatch-test:" + uuid.NewString() + ":",
		TTL:       time.Hour,
	}, maxRuns)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestRunProgressRepository_Redis(t *testing.T) {
	repo := newTestRepository(t, 2)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	first, err := repo.MarkEventSeen(ctx, "run-a", "evt-1")
	require.NoError(t, err)
	again, err := repo.MarkEventSeen(ctx, "run-a", "evt-1")
	require.NoError(t, err)
	assert.True(t, first)
	assert.False(t, again)

	_, err = repo.FindRun(ctx, "run-a")
	require.ErrorIs(t, err, repository.ErrRunNotFound)

	for i, id := range []string{"run-a", "run-b", "run-c"} {
		require.NoError(t, repo.SaveRun(ctx, &entity.RunProgress{
			RunID:     id,
			State:     entity.SimulationRunning,
			AtIdx:     i,
			UpdatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := repo.FindRun(ctx, "run-b")
	require.NoError(t, err)
	assert.Equal(t, 1, got.AtIdx)
	assert.True(t, got.UpdatedAt.Equal(now.Add(time.Second)))

	runs, err := repo.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2, "the index keeps the newest maxRuns runs")
	assert.Equal(t, "run-c", runs[0].RunID)
	assert.Equal(t, "run-b", runs[1].RunID)
}

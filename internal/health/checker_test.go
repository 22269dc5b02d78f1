package health_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugshot-app/mugshot/internal/health"
	"github.com/mugshot-app/mugshot/internal/infra/sqlite"
)

func TestChecker_HealthyStore(t *testing.T) {
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	require.NoError(t, err)
	defer db.Close()

	c := health.NewChecker(db, dir)

	ctx, cancel := context.WithCancel(context.Background())
	go c.Run(ctx)

	// Run executes all checks immediately on start.
	deadline := time.After(2 * time.Second)
	for len(c.Statuses()) == 0 {
		select {
		case <-deadline:
			t.Fatal("checker never produced statuses")
		case <-time.After(10 * time.Millisecond):
		}
	}
	cancel()

	assert.True(t, c.IsHealthy())
	statuses := c.Statuses()
	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.True(t, s.Healthy, "%s: %s", s.Name, s.Error)
		assert.False(t, s.CheckedAt.IsZero())
	}
}

func TestChecker_ClosedStoreUnhealthy(t *testing.T) {
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	c := health.NewChecker(db, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	deadline := time.After(2 * time.Second)
	for len(c.Statuses()) == 0 {
		select {
		case <-deadline:
			t.Fatal("checker never produced statuses")
		case <-time.After(10 * time.Millisecond):
		}
	}

	assert.False(t, c.IsHealthy())
}

func TestChecker_EmptyBeforeFirstRun(t *testing.T) {
	db, err := sqlite.Open(t.TempDir())
	require.NoError(t, err)
	defer db.Close()

	c := health.NewChecker(db, t.TempDir())
	assert.Empty(t, c.Statuses())
	assert.True(t, c.IsHealthy(), "vacuously healthy before the first run")
}

package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/hearthfire/gamemaster/internal/stores/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	sessions := session.NewInMemoryStore()

	t.Run("valid schedule", func(t *testing.T) {
		sw, err := New(sessions, 24*time.Hour, "@hourly")
		require.NoError(t, err)
		sw.Start()
		sw.Stop()
	})

	t.Run("invalid schedule", func(t *testing.T) {
		_, err := New(sessions, 24*time.Hour, "not a schedule")
		assert.Error(t, err)
	})

	t.Run("non-positive retention", func(t *testing.T) {
		_, err := New(sessions, 0, "@hourly")
		assert.Error(t, err)
	})
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	sessions := session.NewInMemoryStore()

	require.NoError(t, sessions.Insert(ctx, &session.GameSession{SessionID: "stale"}))
	require.NoError(t, sessions.Insert(ctx, &session.GameSession{SessionID: "active"}))

	require.NoError(t, sessions.UpdateTranscript(ctx, "active", "[]"))
	purged, err := sessions.DeleteStale(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, purged, "nothing is stale yet")

	sw, err := New(sessions, time.Nanosecond, "@hourly")
	require.NoError(t, err)

	// Run one sweep directly; everything is older than a nanosecond window
	time.Sleep(time.Millisecond)
	sw.sweep()

	_, err = sessions.GetByToken(ctx, "stale")
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = sessions.GetByToken(ctx, "active")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

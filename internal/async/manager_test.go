package async

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajime-ito/catalog-extractor/internal/common"
)

func TestStartJobRunsAndClears(t *testing.T) {
	m := NewManager(context.Background(), nil)
	id := uuid.New()
	done := make(chan struct{})

	require.NoError(t, m.StartJob(id, func(ctx context.Context) error {
		close(done)
		return nil
	}))
	<-done
	require.NoError(t, m.Shutdown(context.Background()))
	assert.False(t, m.Running(id))
}

func TestStartJobRejectsDuplicate(t *testing.T) {
	m := NewManager(context.Background(), nil)
	id := uuid.New()
	release := make(chan struct{})

	require.NoError(t, m.StartJob(id, func(ctx context.Context) error {
		<-release
		return nil
	}))
	assert.True(t, m.Running(id))
	assert.Error(t, m.StartJob(id, func(ctx context.Context) error { return nil }))

	close(release)
	require.NoError(t, m.Shutdown(context.Background()))
}

func TestCancelJob(t *testing.T) {
	m := NewManager(context.Background(), nil)
	id := uuid.New()
	cancelled := make(chan struct{})

	require.NoError(t, m.StartJob(id, func(ctx context.Context) error {
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	}))
	require.NoError(t, m.CancelJob(id))

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("job never observed cancellation")
	}
	require.NoError(t, m.Shutdown(context.Background()))
}

func TestCancelJobNotRunning(t *testing.T) {
	m := NewManager(context.Background(), nil)
	assert.ErrorIs(t, m.CancelJob(uuid.New()), common.ErrJobNotRunning)
}

func TestShutdownTimesOut(t *testing.T) {
	m := NewManager(context.Background(), nil)
	release := make(chan struct{})
	defer close(release)

	require.NoError(t, m.StartJob(uuid.New(), func(ctx context.Context) error {
		<-release
		return nil
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, m.Shutdown(ctx), context.DeadlineExceeded)
}

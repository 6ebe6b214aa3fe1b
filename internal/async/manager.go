// Package async tracks running conversion jobs so they can be cancelled
// and drained on shutdown.
package async

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/hajime-ito/catalog-extractor/internal/common"
)

// JobFunc runs one job to completion; it must honor ctx cancellation.
type JobFunc func(ctx context.Context) error

// Manager starts each job on its own goroutine with a cancellable
// context derived from the base context given at construction.
type Manager struct {
	base context.Context
	log  *slog.Logger

	mu      sync.Mutex
	running map[uuid.UUID]context.CancelFunc
	wg      sync.WaitGroup
}

func NewManager(base context.Context, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		base:    base,
		log:     logger,
		running: make(map[uuid.UUID]context.CancelFunc),
	}
}

// StartJob launches fn for jobID. A job id can run at most once at a time.
func (m *Manager) StartJob(jobID uuid.UUID, fn JobFunc) error {
	m.mu.Lock()
	if _, ok := m.running[jobID]; ok {
		m.mu.Unlock()
		return common.NewAppError("JOB_ALREADY_RUNNING", "job is already running", common.ErrInvalidInput)
	}
	ctx, cancel := context.WithCancel(m.base)
	m.running[jobID] = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		defer func() {
			m.mu.Lock()
			delete(m.running, jobID)
			m.mu.Unlock()
			cancel()
		}()
		if err := fn(ctx); err != nil {
			m.log.Warn("async.job.finished_with_error", "job_id", jobID, "error", err)
		}
	}()
	return nil
}

// CancelJob cancels a running job. ErrJobNotRunning when it is not.
func (m *Manager) CancelJob(jobID uuid.UUID) error {
	m.mu.Lock()
	cancel, ok := m.running[jobID]
	m.mu.Unlock()
	if !ok {
		return common.ErrJobNotRunning
	}
	m.log.Info("async.job.cancel", "job_id", jobID)
	cancel()
	return nil
}

// Running reports whether jobID currently runs.
func (m *Manager) Running(jobID uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.running[jobID]
	return ok
}

// Shutdown waits for all jobs to finish or ctx to expire. Jobs keep
// their own contexts; cancel the base context first for a hard stop.
func (m *Manager) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

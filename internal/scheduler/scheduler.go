package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CyberClicker_Go/internal/logger"
	"github.com/osse101/CyberClicker_Go/internal/worker"
)

// Scheduler enqueues jobs on a worker pool at fixed intervals. Jobs never
// run on the scheduler's goroutines.
type Scheduler struct {
	workerPool *worker.Pool
	ctx        context.Context

	mu      sync.Mutex
	entries map[uuid.UUID]context.CancelFunc
	stopped bool
	wg      sync.WaitGroup
}

// New creates a new scheduler
func New(ctx context.Context, pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		ctx:        ctx,
		entries:    make(map[uuid.UUID]context.CancelFunc),
	}
}

// Schedule registers a job to run every interval and returns its id.
// The zero id is returned when the scheduler is stopped.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return uuid.Nil
	}

	id := uuid.New()
	ctx, cancel := context.WithCancel(s.ctx)
	s.entries[id] = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.workerPool.Enqueue(ctx, job); err != nil {
					if !errors.Is(err, context.Canceled) {
						logger.FromContext(ctx).Debug(LogMsgEnqueueFailed, "schedule_id", id, "error", err)
					}
					if errors.Is(err, worker.ErrPoolStopped) {
						return
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return id
}

// Cancel stops one schedule. Unknown ids are ignored.
func (s *Scheduler) Cancel(id uuid.UUID) {
	s.mu.Lock()
	cancel, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()
	if ok {
		cancel()
	}
}

// Len reports the number of active schedules
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stop cancels every schedule and waits for their goroutines
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for id, cancel := range s.entries {
		cancel()
		delete(s.entries, id)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

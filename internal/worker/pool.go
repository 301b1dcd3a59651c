package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/CyberClicker_Go/internal/logger"
)

// ErrPoolStopped is returned when work is offered to a stopped pool
var ErrPoolStopped = errors.New(ErrMsgPoolStopped)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool runs queued jobs on a fixed number of workers. A pool with one
// worker executes jobs strictly in enqueue order.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	ctx      context.Context
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		stopped:  make(chan struct{}),
		ctx:      context.Background(),
	}
}

// Start starts the workers. Jobs receive ctx, which carries the logger.
func (p *Pool) Start(ctx context.Context) {
	if ctx != nil {
		p.ctx = ctx
	}
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			p.drain()
			return
		}
	}
}

// drain runs whatever was queued before Stop
func (p *Pool) drain() {
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		default:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	if err := job.Process(p.ctx); err != nil {
		logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue blocks until the job is queued, the pool stops, or ctx ends
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-p.quit:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit runs fn on a worker and waits for its result
func (p *Pool) Submit(ctx context.Context, fn func(ctx context.Context) error) error {
	done := make(chan error, 1)
	job := JobFunc(func(jobCtx context.Context) error {
		done <- fn(jobCtx)
		return nil
	})
	if err := p.Enqueue(ctx, job); err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-p.stopped:
		select {
		case err := <-done:
			return err
		default:
			return ErrPoolStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop stops accepting work, runs what is already queued, and waits for the workers
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
		close(p.stopped)
	})
}

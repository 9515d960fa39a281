package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/entity"
)

// Job is the smallest useful unit of batch work.
type Job struct {
	Doc         entity.Document
	Strategy    constants.Strategy
	SubmittedAt time.Time
	TraceID     string
}

// Processor is what the queue drives; satisfied by pipeline.Processor.
type Processor interface {
	Process(ctx context.Context, doc entity.Document, strategy constants.Strategy) (*entity.ExtractionJob, error)
}

// Queue fans documents out to a fixed worker pool.
type Queue struct {
	proc    Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewQueue(proc Processor, logger *slog.Logger, opts ...Option) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					_, err := q.proc.Process(ctx, job.Doc, job.Strategy)
					cancel()

					if err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "document", job.Doc.Name, "error", err)
					} else {
						q.logger.Info("processed document", "worker_id", workerID, "document", job.Doc.Name)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *Queue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "document", job.Doc.Name)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Debug("queued document", "document", job.Doc.Name, "strategy", job.Strategy)
	default:
		q.logger.Warn("queue full, applying backpressure", "document", job.Doc.Name)
		q.ch <- job
	}
	return nil
}

func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

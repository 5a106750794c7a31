package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/pipeline"
)

// ProcessorQueue fans jobs out to a fixed pool of pipeline workers. Each
// job runs with its own bounded timeout; the invoice lease keeps two
// workers from ever running the same invoice in parallel.
type ProcessorQueue struct {
	proc    *pipeline.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc *pipeline.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	q := &ProcessorQueue{
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

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("queue.worker.start", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.proc.Process(ctx, job.InvoiceID)
					cancel()

					switch {
					case err == nil:
						q.logger.Info("queue.job.ok", "worker_id", workerID, "invoice_id", job.InvoiceID)
					case errors.Is(err, common.ErrAlreadyProcessing):
						// a competing worker holds the lease; the lease
						// timeout makes the invoice claimable again later
						q.logger.Warn("queue.job.skipped", "worker_id", workerID, "invoice_id", job.InvoiceID)
					default:
						q.logger.Error("queue.job.failed", "worker_id", workerID, "invoice_id", job.InvoiceID, "error", err)
					}
				}

				q.logger.Info("queue.worker.stop", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("queue.enqueue.rejected", "invoice_id", job.InvoiceID)
		return common.ErrInvalidInput
	}
	select {
	case q.ch <- job:
		q.logger.Info("queue.enqueue.ok", "invoice_id", job.InvoiceID)
	default:
		q.logger.Warn("queue.enqueue.backpressure", "invoice_id", job.InvoiceID)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
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
		q.logger.Warn("queue.shutdown.interrupted")
	case <-done:
		q.logger.Info("queue.shutdown.ok")
	}
}

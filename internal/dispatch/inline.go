package dispatch

import (
	"context"
	"sync"
	"time"

	"log/slog"
)

// InlineQueue is the no-broker fallback used when NATS is not configured:
// a worker pool over a buffered channel inside the API process. Failed jobs
// are retried up to maxAttempts and then dropped with a log line. With
// swallowErrors disabled, Enqueue instead runs the job synchronously and
// returns the processing error to the caller.
type InlineQueue struct {
	handler     Handler
	logger      *slog.Logger
	workers     int
	timeout     time.Duration
	maxAttempts int
	swallow     bool

	ch      chan Job
	wg      sync.WaitGroup
	once    sync.Once
	closing chan struct{}

	mu      sync.Mutex
	closed  bool
	senders sync.WaitGroup
}

type Option func(*InlineQueue)

func WithWorkers(n int) Option {
	return func(q *InlineQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *InlineQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *InlineQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}
func WithMaxAttempts(n int) Option {
	return func(q *InlineQueue) {
		if n > 0 {
			q.maxAttempts = n
		}
	}
}

// WithSwallowErrors controls the degraded-mode failure contract. Swallowing
// (the default) keeps Enqueue fire-and-forget like the broker path; disabling
// it makes Enqueue synchronous so callers see the failure directly.
func WithSwallowErrors(swallow bool) Option {
	return func(q *InlineQueue) { q.swallow = swallow }
}

func NewInlineQueue(handler Handler, logger *slog.Logger, opts ...Option) *InlineQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &InlineQueue{
		handler:     handler,
		logger:      logger,
		workers:     4,
		timeout:     3 * time.Minute,
		maxAttempts: 3,
		swallow:     true,
		ch:          make(chan Job, 256),
		closing:     make(chan struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *InlineQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("dispatch.worker.start", "worker_id", workerID)

				for job := range q.ch {
					q.run(workerID, job)
				}

				q.logger.Info("dispatch.worker.stop", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *InlineQueue) run(workerID int, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	err := q.handler.ProcessDocument(ctx, job.DocumentID)
	cancel()

	if err == nil {
		q.logger.Info("dispatch.done", "worker_id", workerID, "document_id", job.DocumentID, "attempt", job.Attempt)
		return
	}

	if job.Attempt+1 < q.maxAttempts {
		job.Attempt++
		q.logger.Warn("dispatch.retry",
			"worker_id", workerID,
			"document_id", job.DocumentID,
			"attempt", job.Attempt,
			"error", err,
		)
		q.requeue(job)
		return
	}
	q.logger.Error("dispatch.dropped",
		"worker_id", workerID,
		"document_id", job.DocumentID,
		"attempts", job.Attempt+1,
		"error", err,
	)
}

func (q *InlineQueue) requeue(job Job) {
	if !q.registerSender() {
		q.logger.Warn("dispatch.retry.lost: queue is shutting down", "document_id", job.DocumentID)
		return
	}
	defer q.senders.Done()
	select {
	case q.ch <- job:
	default:
		// queue is full; a retry is not worth blocking a worker for
		q.logger.Warn("dispatch.retry.lost: queue full", "document_id", job.DocumentID)
	}
}

// registerSender admits the caller into the set of goroutines allowed to send
// on q.ch. Shutdown waits for that set to drain before closing the channel,
// so admitted senders can never hit a closed channel.
func (q *InlineQueue) registerSender() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.senders.Add(1)
	return true
}

func (q *InlineQueue) Enqueue(ctx context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now().UTC()
	}

	if !q.swallow {
		cctx, cancel := context.WithTimeout(ctx, q.timeout)
		defer cancel()
		return q.handler.ProcessDocument(cctx, job.DocumentID)
	}

	if !q.registerSender() {
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID)
		return nil
	}
	defer q.senders.Done()

	select {
	case q.ch <- job:
		q.logger.Info("dispatch.enqueued", "document_id", job.DocumentID, "force", job.Force)
		return nil
	default:
	}

	// The send below holds no lock, so workers keep draining and retrying
	// while this caller waits for space.
	q.logger.Warn("queue full, applying backpressure", "document_id", job.DocumentID)
	select {
	case q.ch <- job:
		q.logger.Info("dispatch.enqueued", "document_id", job.DocumentID, "force", job.Force)
	case <-q.closing:
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID)
	case <-ctx.Done():
		q.logger.Warn("enqueue abandoned", "document_id", job.DocumentID, "error", ctx.Err())
		return ctx.Err()
	}
	return nil
}

func (q *InlineQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.closing)
	q.mu.Unlock()

	// no new senders can register past this point; wait out the in-flight
	// ones before closing the channel
	q.senders.Wait()
	close(q.ch)

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

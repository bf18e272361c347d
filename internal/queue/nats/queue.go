package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/taxfolio/docpipe/internal/dispatch"
)

const queueGroup = "workers"

// Queue is the production dispatch backend: a core-NATS queue group carries
// extraction jobs to the worker fleet. Publish side satisfies
// dispatch.Dispatcher; the worker side is Consume.
type Queue struct {
	conn        *nats.Conn
	subject     string
	dlqSubject  string
	maxAttempts int
	onDelivery  func(dispatch.Job)
	logger      *slog.Logger
}

type Options struct {
	ConnectTimeout time.Duration
	ReconnectWait  time.Duration
	MaxReconnects  int
	DLQSubject     string
	MaxAttempts    int
	// OnDelivery, when set, observes every decoded job before it is handed
	// to the handler. The worker uses it to measure queue lag.
	OnDelivery func(dispatch.Job)
	Logger     *slog.Logger
}

func New(url, subject string, options Options) (*Queue, error) {
	connectTimeout := options.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 2 * time.Second
	}
	reconnectWait := options.ReconnectWait
	if reconnectWait <= 0 {
		reconnectWait = 2 * time.Second
	}
	maxReconnects := options.MaxReconnects
	if maxReconnects <= 0 {
		maxReconnects = 60
	}
	maxAttempts := options.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	dlqSubject := options.DLQSubject
	if dlqSubject == "" {
		dlqSubject = subject + ".dlq"
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := nats.Connect(
		url,
		nats.Name("docpipe"),
		nats.Timeout(connectTimeout),
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(maxReconnects),
		nats.RetryOnFailedConnect(true),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Queue{
		conn:        conn,
		subject:     subject,
		dlqSubject:  dlqSubject,
		maxAttempts: maxAttempts,
		onDelivery:  options.OnDelivery,
		logger:      logger,
	}, nil
}

func (q *Queue) Enqueue(_ context.Context, job dispatch.Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now().UTC()
	}
	msg, err := encodeJob(q.subject, job)
	if err != nil {
		return err
	}
	if err := q.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	q.logger.Info("dispatch.enqueued", "document_id", job.DocumentID, "force", job.Force, "attempt", job.Attempt)
	return nil
}

func (q *Queue) Shutdown(_ context.Context) {
	if q.conn != nil {
		q.conn.Close()
	}
}

// Consume blocks delivering jobs to handler until ctx is cancelled, then
// drains the subscription. A handler failure republishes the job with a
// bumped attempt count; once the budget is spent the job goes to the
// dead-letter subject instead.
func (q *Queue) Consume(ctx context.Context, handler dispatch.Handler) error {
	sub, err := q.conn.QueueSubscribe(q.subject, queueGroup, func(msg *nats.Msg) {
		if errors.Is(ctx.Err(), context.Canceled) {
			return
		}
		q.handle(ctx, msg, handler)
	})
	if err != nil {
		return fmt.Errorf("nats subscribe: %w", err)
	}

	if err := q.conn.Flush(); err != nil {
		return fmt.Errorf("nats flush: %w", err)
	}
	q.logger.Info("dispatch.consumer.start", "subject", q.subject, "group", queueGroup)

	<-ctx.Done()
	if err := sub.Drain(); err != nil {
		return fmt.Errorf("nats drain subscription: %w", err)
	}
	if err := q.conn.FlushTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("nats flush after drain: %w", err)
	}
	return nil
}

func (q *Queue) handle(ctx context.Context, msg *nats.Msg, handler dispatch.Handler) {
	job, err := decodeJob(msg)
	if err != nil {
		// malformed payloads can never succeed; straight to the DLQ
		q.logger.Error("dispatch.decode.failed", "error", err, "data", string(msg.Data))
		dead := nats.NewMsg(q.dlqSubject)
		dead.Data = append([]byte(nil), msg.Data...)
		if err := q.conn.PublishMsg(dead); err != nil {
			q.logger.Error("dispatch.dlq.publish_failed", "error", err)
		}
		return
	}

	if q.onDelivery != nil {
		q.onDelivery(job)
	}

	if procErr := handler.ProcessDocument(ctx, job.DocumentID); procErr != nil {
		next, dead := nextDelivery(msg, job, q.maxAttempts, q.dlqSubject)
		if dead {
			q.logger.Error("dispatch.dead_lettered",
				"document_id", job.DocumentID,
				"attempts", job.Attempt+1,
				"error", procErr,
			)
		} else {
			q.logger.Warn("dispatch.retry",
				"document_id", job.DocumentID,
				"attempt", job.Attempt+1,
				"error", procErr,
			)
		}
		if err := q.conn.PublishMsg(next); err != nil {
			q.logger.Error("dispatch.republish_failed", "document_id", job.DocumentID, "error", err)
		}
		return
	}
	q.logger.Info("dispatch.done", "document_id", job.DocumentID, "attempt", job.Attempt)
}

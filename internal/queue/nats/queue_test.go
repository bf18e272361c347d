package nats

import (
	"context"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/docpipe/internal/dispatch"
)

type handlerStub struct {
	calls int
	err   error
}

func (h *handlerStub) ProcessDocument(context.Context, uuid.UUID) error {
	h.calls++
	return h.err
}

// The delivery observer sees every decoded job before the handler runs; the
// worker feeds it the enqueue timestamp to measure queue lag.
func TestHandleObservesDeliveryBeforeProcessing(t *testing.T) {
	var seen []dispatch.Job
	q := &Queue{
		subject:     "docpipe.extract",
		dlqSubject:  "docpipe.extract.dlq",
		maxAttempts: 3,
		onDelivery:  func(job dispatch.Job) { seen = append(seen, job) },
		logger:      slog.Default(),
	}

	job := dispatch.Job{
		DocumentID:  uuid.New(),
		SubmittedAt: time.Now().UTC().Add(-2 * time.Second),
	}
	msg, err := encodeJob(q.subject, job)
	require.NoError(t, err)

	h := &handlerStub{}
	q.handle(context.Background(), msg, h)

	assert.Equal(t, 1, h.calls)
	require.Len(t, seen, 1)
	assert.Equal(t, job.DocumentID, seen[0].DocumentID)
	assert.WithinDuration(t, job.SubmittedAt, seen[0].SubmittedAt, time.Millisecond)
}

package nats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/docpipe/internal/dispatch"
)

func TestEncodeDecodeJob(t *testing.T) {
	job := dispatch.Job{
		DocumentID:  uuid.New(),
		Force:       true,
		SubmittedAt: time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC),
		Attempt:     2,
	}

	msg, err := encodeJob("documents.extract", job)
	require.NoError(t, err)
	assert.Equal(t, "documents.extract", msg.Subject)
	assert.Equal(t, "2", msg.Header.Get(attemptHeader))

	got, err := decodeJob(msg)
	require.NoError(t, err)
	assert.Equal(t, job, got)
}

func TestDecodeJobMissingAttemptHeader(t *testing.T) {
	msg := nats.NewMsg("documents.extract")
	msg.Data = []byte(`{"documentId":"` + uuid.NewString() + `"}`)

	got, err := decodeJob(msg)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Attempt, "first delivery defaults to attempt 0")
}

func TestDecodeJobRejectsBadPayload(t *testing.T) {
	msg := nats.NewMsg("documents.extract")
	msg.Data = []byte(`{"documentId":"not-a-uuid"}`)
	_, err := decodeJob(msg)
	require.Error(t, err)

	msg.Data = []byte(`{broken`)
	_, err = decodeJob(msg)
	require.Error(t, err)
}

func TestNextDeliveryRetriesThenDeadLetters(t *testing.T) {
	job := dispatch.Job{DocumentID: uuid.New()}
	msg, err := encodeJob("documents.extract", job)
	require.NoError(t, err)

	// attempt 0 failed: one more try on the work subject
	next, dead := nextDelivery(msg, job, 3, "documents.extract.dlq")
	assert.False(t, dead)
	assert.Equal(t, "documents.extract", next.Subject)
	assert.Equal(t, "1", next.Header.Get(attemptHeader))

	// attempt 2 failed: budget of 3 spent, off to the DLQ
	job.Attempt = 2
	next, dead = nextDelivery(msg, job, 3, "documents.extract.dlq")
	assert.True(t, dead)
	assert.Equal(t, "documents.extract.dlq", next.Subject)
	assert.Equal(t, "3", next.Header.Get(attemptHeader))
	assert.Equal(t, msg.Data, next.Data)
}

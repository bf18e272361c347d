package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFake struct {
	mu        sync.Mutex
	calls     int
	failFirst int // number of leading calls that fail
	target    int // close(reached) once this many calls have been seen
	err       error
	reached   chan struct{}
}

func newHandlerFake(failFirst, target int) *handlerFake {
	return &handlerFake{
		failFirst: failFirst,
		target:    target,
		err:       errors.New("ocr: exit status 1"),
		reached:   make(chan struct{}),
	}
}

func (h *handlerFake) ProcessDocument(context.Context, uuid.UUID) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	if h.calls == h.target {
		close(h.reached)
	}
	if h.calls <= h.failFirst {
		return h.err
	}
	return nil
}

func (h *handlerFake) callCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for handler")
	}
}

func TestInlineQueueProcessesJob(t *testing.T) {
	h := newHandlerFake(0, 1)
	q := NewInlineQueue(h, nil, WithWorkers(1))
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	waitFor(t, h.reached)
	assert.Equal(t, 1, h.callCount())
}

func TestInlineQueueRetriesUntilSuccess(t *testing.T) {
	h := newHandlerFake(2, 3)
	q := NewInlineQueue(h, nil, WithWorkers(1), WithMaxAttempts(3))
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	waitFor(t, h.reached)
	assert.Equal(t, 3, h.callCount())
}

func TestInlineQueueBoundsRetries(t *testing.T) {
	h := newHandlerFake(10, 3) // never succeeds within the attempt budget
	q := NewInlineQueue(h, nil, WithWorkers(1), WithMaxAttempts(3))

	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	waitFor(t, h.reached)
	q.Shutdown(context.Background())
	// the third failure is terminal: no fourth delivery
	assert.Equal(t, 3, h.callCount())
}

// A full queue plus an in-flight failing job must not wedge Enqueue: the
// worker's retry re-submission and a blocked caller both need channel space,
// and neither may hold a lock the other waits on.
func TestInlineQueueEnqueueUnblocksUnderRetryPressure(t *testing.T) {
	h := newHandlerFake(100, 1) // every attempt fails
	q := NewInlineQueue(h, nil, WithWorkers(1), WithQueueSize(1), WithMaxAttempts(3))
	defer q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))

	done := make(chan error, 1)
	go func() {
		done <- q.Enqueue(context.Background(), Job{DocumentID: uuid.New()})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Enqueue wedged while a worker was retrying against a full queue")
	}
}

func TestInlineQueueSynchronousWhenNotSwallowing(t *testing.T) {
	h := newHandlerFake(1, 2)
	q := NewInlineQueue(h, nil, WithSwallowErrors(false))
	defer q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()})
	require.Error(t, err)
	assert.Equal(t, h.err, err)
	assert.Equal(t, 1, h.callCount())

	// and the caller sees success on the next attempt
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
}

func TestInlineQueueEnqueueAfterShutdown(t *testing.T) {
	h := newHandlerFake(0, 1)
	q := NewInlineQueue(h, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	assert.Equal(t, 0, h.callCount())
}

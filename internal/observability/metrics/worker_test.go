package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *WorkerMetrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(body)
}

func TestWorkerMetricsCountsOutcomes(t *testing.T) {
	m := NewWorkerMetrics("worker")

	m.StartDocument()
	m.FinishDocument("worker", 120*time.Millisecond, nil)
	m.StartDocument()
	m.FinishDocument("worker", 80*time.Millisecond, errors.New("boom"))
	m.RecordOCRMethod("worker", "cloud-ocr")
	m.ObserveQueueLag("worker", 2*time.Second)

	body := scrape(t, m)
	assert.Contains(t, body, `docpipe_worker_document_process_total{service="worker",status="success"} 1`)
	assert.Contains(t, body, `docpipe_worker_document_process_total{service="worker",status="error"} 1`)
	assert.Contains(t, body, `docpipe_worker_ocr_method_total{method="cloud-ocr",service="worker"} 1`)
	assert.Contains(t, body, "docpipe_worker_queue_lag_seconds")
	assert.Contains(t, body, `docpipe_worker_document_process_in_flight{service="worker"} 0`)
}

type countingHandler struct {
	calls int
	err   error
}

func (h *countingHandler) ProcessDocument(context.Context, uuid.UUID) error {
	h.calls++
	return h.err
}

func TestInstrumentWrapsHandler(t *testing.T) {
	m := NewWorkerMetrics("worker")
	inner := &countingHandler{err: errors.New("classify: timeout")}

	h := m.Instrument("worker", inner)
	err := h.ProcessDocument(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 1, inner.calls)

	body := scrape(t, m)
	assert.Contains(t, body, `docpipe_worker_document_process_total{service="worker",status="error"} 1`)
}

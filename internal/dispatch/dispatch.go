package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one extraction request. Attempt counts deliveries so redelivery
// stays bounded whichever backend carries the job.
type Job struct {
	DocumentID  uuid.UUID
	Force       bool // re-enqueue even when the document already succeeded
	SubmittedAt time.Time
	Attempt     int
}

// Dispatcher accepts documents for eventual processing. Enqueue returning nil
// means accepted, not processed; the backend owns retry and dead-letter
// policy so the orchestrator itself never retries.
type Dispatcher interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Handler runs the pipeline for one document. Satisfied by core.Processor.
type Handler interface {
	ProcessDocument(ctx context.Context, docID uuid.UUID) error
}

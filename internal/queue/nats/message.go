package nats

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/taxfolio/docpipe/internal/dispatch"
)

// attemptHeader carries the delivery count across republishes. Core NATS has
// no broker-side redelivery, so the consumer re-publishes failed jobs itself
// and this header is what keeps that loop bounded.
const attemptHeader = "Docpipe-Attempt"

type payload struct {
	DocumentID  string    `json:"documentId"`
	Force       bool      `json:"force,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func encodeJob(subject string, job dispatch.Job) (*nats.Msg, error) {
	data, err := json.Marshal(payload{
		DocumentID:  job.DocumentID.String(),
		Force:       job.Force,
		SubmittedAt: job.SubmittedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode job: %w", err)
	}
	msg := nats.NewMsg(subject)
	msg.Data = data
	msg.Header.Set(attemptHeader, strconv.Itoa(job.Attempt))
	return msg, nil
}

func decodeJob(msg *nats.Msg) (dispatch.Job, error) {
	var p payload
	if err := json.Unmarshal(msg.Data, &p); err != nil {
		return dispatch.Job{}, fmt.Errorf("decode job: %w", err)
	}
	id, err := uuid.Parse(p.DocumentID)
	if err != nil {
		return dispatch.Job{}, fmt.Errorf("decode job: parse document id %q: %w", p.DocumentID, err)
	}
	attempt, _ := strconv.Atoi(msg.Header.Get(attemptHeader))
	return dispatch.Job{
		DocumentID:  id,
		Force:       p.Force,
		SubmittedAt: p.SubmittedAt,
		Attempt:     attempt,
	}, nil
}

// nextDelivery decides what happens to a failed job: another attempt on the
// work subject, or terminal hand-off to the dead-letter subject. The returned
// message is ready to publish either way.
func nextDelivery(msg *nats.Msg, job dispatch.Job, maxAttempts int, dlqSubject string) (*nats.Msg, bool) {
	job.Attempt++
	if job.Attempt < maxAttempts {
		retry, _ := encodeJob(msg.Subject, job)
		return retry, false
	}
	dead := nats.NewMsg(dlqSubject)
	dead.Data = append([]byte(nil), msg.Data...)
	dead.Header.Set(attemptHeader, strconv.Itoa(job.Attempt))
	return dead, true
}

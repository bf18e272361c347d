package rules

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoValidatePostsToTaxYear(t *testing.T) {
	taxYearID := uuid.New()
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	e := NewHTTPEngine(Config{BaseURL: srv.URL, APIKey: "rules-key"}, nil)
	require.NoError(t, e.AutoValidate(context.Background(), taxYearID))
	assert.Equal(t, "/tax-years/"+taxYearID.String()+"/auto-validate", gotPath)
	assert.Equal(t, "Bearer rules-key", gotAuth)
}

func TestAutoValidateSurfacesEngineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "year not found", http.StatusNotFound)
	}))
	defer srv.Close()

	e := NewHTTPEngine(Config{BaseURL: srv.URL}, nil)
	err := e.AutoValidate(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "year not found")
}

type engineFake struct {
	mu    sync.Mutex
	calls []uuid.UUID
	err   error
	done  chan struct{}
}

func (f *engineFake) AutoValidate(_ context.Context, taxYearID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, taxYearID)
	close(f.done)
	return f.err
}

func TestTriggerDetachedInvokesEngine(t *testing.T) {
	f := &engineFake{done: make(chan struct{})}
	taxYearID := uuid.New()

	TriggerDetached(f, nil, taxYearID, time.Second)

	select {
	case <-f.done:
	case <-time.After(2 * time.Second):
		t.Fatal("engine was never called")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, []uuid.UUID{taxYearID}, f.calls)
}

func TestTriggerDetachedSwallowsEngineError(t *testing.T) {
	f := &engineFake{done: make(chan struct{}), err: assert.AnError}

	// must not panic or propagate anywhere
	TriggerDetached(f, nil, uuid.New(), time.Second)

	select {
	case <-f.done:
	case <-time.After(2 * time.Second):
		t.Fatal("engine was never called")
	}
}

func TestTriggerDetachedNilEngine(t *testing.T) {
	TriggerDetached(nil, nil, uuid.New(), time.Second)
}

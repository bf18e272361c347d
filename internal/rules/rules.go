package rules

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

// Engine is the completeness engine that re-scores a tax year after its
// documents change. Callers never block on it and never surface its errors;
// use TriggerDetached from request paths.
type Engine interface {
	AutoValidate(ctx context.Context, taxYearID uuid.UUID) error
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type HTTPEngine struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPEngine(cfg Config, logger *slog.Logger) *HTTPEngine {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPEngine{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (e *HTTPEngine) AutoValidate(ctx context.Context, taxYearID uuid.UUID) error {
	url := fmt.Sprintf("%s/tax-years/%s/auto-validate", e.cfg.BaseURL, taxYearID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("build auto-validate request: %w", err)
	}
	if e.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.cfg.APIKey)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auto-validate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("auto-validate status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// TriggerDetached fires AutoValidate on its own goroutine with a fresh
// context, so a finished request or a failed engine never touches the
// caller. Failures are logged and dropped.
func TriggerDetached(engine Engine, logger *slog.Logger, taxYearID uuid.UUID, timeout time.Duration) {
	if engine == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := engine.AutoValidate(ctx, taxYearID); err != nil {
			logger.Warn("rules.auto_validate.failed", "tax_year_id", taxYearID, "error", err)
			return
		}
		logger.Debug("rules.auto_validate.done", "tax_year_id", taxYearID)
	}()
}

package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// CloudConfig for the paid cloud OCR fallback. The endpoint accepts a file URL
// and is billed per call, so the adapter only reaches for it when the local
// engine's confidence is below threshold.
type CloudConfig struct {
	Endpoint string
	APIKey   string
	Language string        // default "eng+fra"
	Timeout  time.Duration // http client timeout
}

// CloudClient calls the cloud OCR HTTP API.
type CloudClient struct {
	cfg  CloudConfig
	http *http.Client
	log  *slog.Logger
}

func NewCloudClient(cfg CloudConfig, logger *slog.Logger) *CloudClient {
	if cfg.Language == "" {
		cfg.Language = "eng+fra"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CloudClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

type cloudRequest struct {
	URL      string `json:"url"`
	Language string `json:"language"`
}

type cloudResponse struct {
	Text       string  `json:"text"`
	Confidence float32 `json:"confidence"`
	Pages      int     `json:"pages"`
}

// Extract sends the signed file URL to the cloud OCR API. There is no further
// fallback behind it, so any failure propagates.
func (c *CloudClient) Extract(ctx context.Context, fileURL string) (Result, error) {
	start := time.Now()
	c.log.Info("ocr.cloud.start", "endpoint", c.cfg.Endpoint, "language", c.cfg.Language)

	b, err := json.Marshal(cloudRequest{URL: fileURL, Language: c.cfg.Language})
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(b))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("ocr.cloud.http_error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return Result{}, fmt.Errorf("cloud ocr http error: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("cloud ocr response body close error", "error", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("ocr.cloud.bad_status", "status", resp.StatusCode, "elapsed_ms", time.Since(start).Milliseconds())
		return Result{}, fmt.Errorf("cloud ocr status %d: %s", resp.StatusCode, truncate(string(body), 1<<10))
	}

	var out cloudResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("decode cloud ocr response: %w", err)
	}

	c.log.Info("ocr.cloud.ok",
		"text_len", len(out.Text),
		"confidence", out.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		Text:       Normalize(out.Text),
		Confidence: out.Confidence,
		Method:     MethodCloud,
		Pages:      out.Pages,
		Duration:   time.Since(start),
	}, nil
}

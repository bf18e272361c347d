// Package storage resolves uploaded files out of the blob store. Uploads go
// straight from the browser to the bucket; the pipeline only ever reads, via a
// short-lived signed URL that works whether the bucket is public or private.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	storage_go "github.com/supabase-community/storage-go"
)

// URLSigner resolves a bucket object key to a fetchable URL.
type URLSigner interface {
	SignedURL(ctx context.Context, filePath string) (string, error)
}

// Config for the Supabase storage backend.
type Config struct {
	ProjectURL   string
	ServiceKey   string
	Bucket       string
	SignedURLTTL time.Duration
}

// SupabaseSigner issues signed URLs against a Supabase storage bucket.
type SupabaseSigner struct {
	client *storage_go.Client
	bucket string
	ttl    time.Duration
	logger *slog.Logger
}

func NewSupabaseSigner(cfg Config, logger *slog.Logger) *SupabaseSigner {
	if cfg.SignedURLTTL <= 0 {
		cfg.SignedURLTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SupabaseSigner{
		client: storage_go.NewClient(cfg.ProjectURL+"/storage/v1", cfg.ServiceKey, nil),
		bucket: cfg.Bucket,
		ttl:    cfg.SignedURLTTL,
		logger: logger,
	}
}

func (s *SupabaseSigner) SignedURL(_ context.Context, filePath string) (string, error) {
	resp, err := s.client.CreateSignedUrl(s.bucket, filePath, int(s.ttl.Seconds()))
	if err != nil {
		s.logger.Error("storage.sign_url.failed", "bucket", s.bucket, "path", filePath, "error", err)
		return "", fmt.Errorf("create signed url: %w", err)
	}
	return resp.SignedURL, nil
}

// Downloader fetches a signed URL to a local temp file so the OCR binaries can
// read it. Callers must invoke cleanup.
type Downloader struct {
	http     *http.Client
	cacheDir string
	logger   *slog.Logger
}

func NewDownloader(cacheDir string, timeout time.Duration, logger *slog.Logger) *Downloader {
	if cacheDir == "" {
		cacheDir = os.TempDir()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Downloader{
		http:     &http.Client{Timeout: timeout},
		cacheDir: cacheDir,
		logger:   logger,
	}
}

// Fetch downloads url into the cache dir, preserving the original extension so
// downstream tools can pick a strategy from it.
func (d *Downloader) Fetch(ctx context.Context, url, fileName string) (localPath string, cleanup func(), err error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, err
	}
	resp, err := d.http.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("download file: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			d.logger.Warn("download body close error", "error", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", nil, fmt.Errorf("download status %d", resp.StatusCode)
	}

	ext := filepath.Ext(fileName)
	f, err := os.CreateTemp(d.cacheDir, "dp-dl-*"+ext)
	if err != nil {
		return "", nil, err
	}
	cleanup = func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			d.logger.Warn("failed to remove downloaded file", "path", f.Name(), "error", rmErr)
		}
	}

	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("write downloaded file: %w", err)
	}

	d.logger.Debug("storage.download.ok",
		"path", f.Name(),
		"bytes", n,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return f.Name(), cleanup, nil
}

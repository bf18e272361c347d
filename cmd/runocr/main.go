package main

import (
	"context"
	"os"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/taxfolio/docpipe/internal/bootstrap"
	"github.com/taxfolio/docpipe/internal/common"
)

// runocr runs the extraction pipeline synchronously for one document id.
// Operator tool for reproducing a failed run with full logs.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runocr <document-id-uuid>")
		os.Exit(2)
	}
	docID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid document id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	start := time.Now()
	err = app.Processor.ProcessDocument(ctx, docID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("extraction failed", "document_id", docID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}
	logger.Info("extraction OK", "document_id", docID, "duration_ms", dur.Milliseconds())
}

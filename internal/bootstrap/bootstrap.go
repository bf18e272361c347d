// Package bootstrap wires configuration into the concrete pipeline so the
// binaries share one construction path.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taxfolio/docpipe/gen/ent"
	"github.com/taxfolio/docpipe/internal/common"
	"github.com/taxfolio/docpipe/internal/core"
	"github.com/taxfolio/docpipe/internal/dispatch"
	"github.com/taxfolio/docpipe/internal/llm/openai"
	"github.com/taxfolio/docpipe/internal/ocr"
	natsq "github.com/taxfolio/docpipe/internal/queue/nats"
	"github.com/taxfolio/docpipe/internal/repository"
	"github.com/taxfolio/docpipe/internal/rules"
	"github.com/taxfolio/docpipe/internal/storage"
)

type App struct {
	Config *common.Config
	Logger *slog.Logger

	Ent  *ent.Client
	Pool *pgxpool.Pool

	Documents repository.DocumentRepository
	TaxYears  repository.TaxYearRepository
	Processor *core.Processor
	Rules     rules.Engine
}

// New opens the database and builds the extraction pipeline. The dispatch
// backend is not part of App: the API and the worker sit on opposite sides
// of the queue and construct their own end via NewDispatcher / NewConsumer.
func New(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*App, error) {
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	docs := repository.NewDocumentRepository(entc, logger)
	taxYears := repository.NewTaxYearRepository(entc, logger)

	signer := storage.NewSupabaseSigner(storage.Config{
		ProjectURL:   cfg.Storage.SupabaseURL,
		ServiceKey:   cfg.Storage.ServiceKey,
		Bucket:       cfg.Storage.Bucket,
		SignedURLTTL: cfg.Storage.SignedURLTTL,
	}, logger)
	fetcher := storage.NewDownloader(cfg.OCR.ArtifactCacheDir, time.Minute, logger)

	local := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)
	var cloud ocr.CloudEngine
	if cfg.OCR.CloudEndpoint != "" {
		cloud = ocr.NewCloudClient(ocr.CloudConfig{
			Endpoint: cfg.OCR.CloudEndpoint,
			APIKey:   cfg.OCR.CloudAPIKey,
			Language: cfg.OCR.TesseractLang,
			Timeout:  cfg.OCR.CloudTimeout,
		}, logger)
	}
	adapter := ocr.NewAdapter(local, cloud, cfg.OCR.ConfidenceThreshold, logger)

	classifier := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		MaxTokens:   cfg.LLM.MaxTokens,
		PromptChars: cfg.LLM.PromptChars,
	}, logger)

	processor := core.NewProcessor(logger, docs, taxYears, signer, fetcher, adapter, classifier, core.Options{
		MinTextLength:      cfg.Extract.MinTextLength,
		TypeMatchThreshold: cfg.Extract.TypeMatchThreshold,
	})

	var rulesEngine rules.Engine
	if cfg.Rules.BaseURL != "" {
		rulesEngine = rules.NewHTTPEngine(rules.Config{
			BaseURL: cfg.Rules.BaseURL,
			Timeout: cfg.Rules.Timeout,
		}, logger)
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Ent:       entc,
		Pool:      pool,
		Documents: docs,
		TaxYears:  taxYears,
		Processor: processor,
		Rules:     rulesEngine,
	}, nil
}

// NewDispatcher returns the publish side of the dispatch boundary: NATS when
// a URL is configured, otherwise the in-process inline queue running the
// pipeline locally.
func (a *App) NewDispatcher(handler dispatch.Handler) (dispatch.Dispatcher, error) {
	if a.Config.Queue.URL == "" {
		a.Logger.Info("no NATS_URL set; using in-process dispatch queue",
			"swallow_errors", a.Config.Queue.InlineSwallowErrors)
		return dispatch.NewInlineQueue(handler, a.Logger,
			dispatch.WithMaxAttempts(a.Config.Queue.MaxAttempts),
			dispatch.WithProcessTimeout(a.Config.Queue.ProcessTimeout),
			dispatch.WithSwallowErrors(a.Config.Queue.InlineSwallowErrors),
		), nil
	}
	return a.newQueue(nil)
}

// NewConsumer returns the worker side of the NATS queue. onDelivery, when
// non-nil, observes every decoded job ahead of processing.
func (a *App) NewConsumer(onDelivery func(dispatch.Job)) (*natsq.Queue, error) {
	if a.Config.Queue.URL == "" {
		return nil, fmt.Errorf("NATS_URL is required for the worker")
	}
	return a.newQueue(onDelivery)
}

func (a *App) newQueue(onDelivery func(dispatch.Job)) (*natsq.Queue, error) {
	return natsq.New(a.Config.Queue.URL, a.Config.Queue.Subject, natsq.Options{
		DLQSubject:  a.Config.Queue.DeadLetterSubject,
		MaxAttempts: a.Config.Queue.MaxAttempts,
		OnDelivery:  onDelivery,
		Logger:      a.Logger,
	})
}

func (a *App) Close() {
	repository.Close(a.Ent, a.Pool, a.Logger)
}

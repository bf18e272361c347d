package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taxfolio/docpipe/constants"
	"github.com/taxfolio/docpipe/internal/common"
	"github.com/taxfolio/docpipe/internal/llm"
	"github.com/taxfolio/docpipe/internal/mismatch"
	"github.com/taxfolio/docpipe/internal/ocr"
	"github.com/taxfolio/docpipe/internal/repository"
	"github.com/taxfolio/docpipe/internal/storage"
)

// TextExtractor is the OCR fallback ladder (local first, paid cloud second).
type TextExtractor interface {
	Extract(ctx context.Context, localPath, fileURL string) (ocr.Result, error)
}

// FileFetcher pulls a signed URL down to a local temp file.
type FileFetcher interface {
	Fetch(ctx context.Context, url, fileName string) (localPath string, cleanup func(), err error)
}

// Options holds the pipeline thresholds. Both are environment-driven, not
// hardcoded; handed in by the caller from config.
type Options struct {
	MinTextLength      int
	TypeMatchThreshold float32
}

// Processor runs extraction for one document: download, OCR, name check,
// classify, mismatch detection, persistence. It is safe to re-run for the
// same document id; every write is a full overwrite of the fields it owns.
type Processor struct {
	logger      *slog.Logger
	docs        repository.DocumentRepository
	taxYears    repository.TaxYearRepository
	signer      storage.URLSigner
	fetcher     FileFetcher
	extractor   TextExtractor
	classifier  llm.Classifier
	opts        Options
	ocrObserver func(method string)
}

// SetOCRObserver registers a callback invoked with the resolved extraction
// method ("tesseract", "cloud-ocr", ...) after each successful OCR run. The
// worker uses it to count how often the paid cloud fallback fires.
func (p *Processor) SetOCRObserver(fn func(method string)) {
	p.ocrObserver = fn
}

func NewProcessor(
	logger *slog.Logger,
	docs repository.DocumentRepository,
	taxYears repository.TaxYearRepository,
	signer storage.URLSigner,
	fetcher FileFetcher,
	extractor TextExtractor,
	classifier llm.Classifier,
	opts Options,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MinTextLength <= 0 {
		opts.MinTextLength = 50
	}
	if opts.TypeMatchThreshold <= 0 {
		opts.TypeMatchThreshold = 0.80
	}
	return &Processor{
		logger:     logger,
		docs:       docs,
		taxYears:   taxYears,
		signer:     signer,
		fetcher:    fetcher,
		extractor:  extractor,
		classifier: classifier,
		opts:       opts,
	}
}

// ProcessDocument runs the full pipeline for one document id. It raises on
// every failure (never swallows); the dispatch boundary owns retry and
// dead-letter policy. The one document-not-found case skips the failure write
// since there is no row to update.
func (p *Processor) ProcessDocument(ctx context.Context, docID uuid.UUID) error {
	doc, err := p.docs.GetByID(ctx, docID)
	if err != nil {
		p.logger.Error("extract.load.failed", "document_id", docID, "err", err)
		return fmt.Errorf("load document: %w", err)
	}

	if err := p.docs.MarkProcessing(ctx, docID); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}
	p.logger.Info("extract.start",
		"document_id", docID,
		"doc_type", doc.DocType,
		"file", doc.FileName,
	)

	fileURL, err := p.signer.SignedURL(ctx, doc.FilePath)
	if err != nil {
		return p.fail(ctx, docID, fmt.Errorf("sign file url: %w", err))
	}

	localPath, cleanup, err := p.fetcher.Fetch(ctx, fileURL, doc.FileName)
	if err != nil {
		return p.fail(ctx, docID, fmt.Errorf("fetch file: %w", err))
	}
	defer cleanup()

	ocrRes, err := p.extractor.Extract(ctx, localPath, fileURL)
	if err != nil {
		return p.fail(ctx, docID, fmt.Errorf("ocr: %w", err))
	}
	p.logger.Debug("extract.ocr.done",
		"document_id", docID,
		"method", ocrRes.Method,
		"confidence", ocrRes.Confidence,
		"text_len", len(ocrRes.Text),
	)
	if p.ocrObserver != nil {
		p.ocrObserver(ocrRes.Method)
	}

	// The name check is cheap and runs before classification so its result
	// survives even if classification later fails.
	nameMismatch := mismatch.Name(doc.OwnerName, ocrRes.Text)

	// Checkpoint 1: persist the name-check result before any step that can
	// still fail.
	checkpoint := ExtractedData{
		Metadata: Metadata{
			OCRMethod:     ocrRes.Method,
			OCRConfidence: ptr(ocrRes.Confidence),
			NameMismatch:  ptr(nameMismatch),
			OwnerName:     doc.OwnerName,
		},
		OwnerName: doc.OwnerName,
	}
	if err := p.docs.SaveExtractedData(ctx, docID, checkpoint.Marshal()); err != nil {
		return p.fail(ctx, docID, fmt.Errorf("persist name check: %w", err))
	}

	// The dividing line between "unreadable scan" and "processable document".
	if len(ocrRes.Text) < p.opts.MinTextLength {
		return p.fail(ctx, docID, fmt.Errorf("%w: got %d chars, need %d",
			common.ErrInsufficientText, len(ocrRes.Text), p.opts.MinTextLength))
	}

	cls, _, err := p.classifier.Classify(ctx, llm.ClassifyRequest{
		OCRText:      ocrRes.Text,
		AllowedTypes: allowedTypes(),
	})
	if err != nil {
		return p.fail(ctx, docID, fmt.Errorf("classify: %w", err))
	}

	taxYear, err := p.taxYears.GetByID(ctx, doc.TaxYearID)
	if err != nil {
		return p.fail(ctx, docID, fmt.Errorf("load tax year: %w", err))
	}

	typeMismatch := mismatch.Type(cls.DocType, cls.Confidence, doc.DocType, p.opts.TypeMatchThreshold)
	yearMismatch := mismatch.Year(cls.TaxYear, taxYear.Year)

	final := ExtractedData{
		TaxYear:      cls.TaxYear,
		TaxpayerName: cls.TaxpayerName,
		Metadata: Metadata{
			OCRMethod:                ocrRes.Method,
			OCRConfidence:            ptr(ocrRes.Confidence),
			ClassificationConfidence: ptr(cls.Confidence),
			ExtractedDocType:         cls.DocType,
			SelectedDocType:          doc.DocType,
			TypeMismatch:             ptr(typeMismatch),
			YearMismatch:             ptr(yearMismatch),
			NameMismatch:             ptr(nameMismatch),
			ExpectedYear:             taxYear.Year,
			ExtractedYear:            cls.TaxYear,
			OwnerName:                doc.OwnerName,
			ExtractedName:            deref(cls.TaxpayerName),
		},
		OwnerName: doc.OwnerName,
	}
	if err := p.docs.FinishSuccess(ctx, docID, final.Marshal(), cls.Confidence); err != nil {
		return p.fail(ctx, docID, fmt.Errorf("persist result: %w", err))
	}

	p.logger.Info("extract.done",
		"document_id", docID,
		"extracted_type", cls.DocType,
		"classification_confidence", cls.Confidence,
		"name_mismatch", nameMismatch,
		"type_mismatch", typeMismatch,
		"year_mismatch", yearMismatch,
	)
	return nil
}

// fail records the terminal failure and re-raises cause. It reads back
// whatever checkpoint data already exists so the error merge cannot clobber
// the persisted name-check result.
func (p *Processor) fail(ctx context.Context, docID uuid.UUID, cause error) error {
	existing := existingData(ctx, p.docs, docID)
	merged := MergeFailure(existing, cause.Error())
	if err := p.docs.FinishFailure(ctx, docID, merged); err != nil {
		p.logger.Error("extract.fail.persist_failed", "document_id", docID, "err", err, "cause", cause)
	}
	p.logger.Error("extract.failed", "document_id", docID, "err", cause)
	return cause
}

func existingData(ctx context.Context, docs repository.DocumentRepository, docID uuid.UUID) []byte {
	doc, err := docs.GetByID(ctx, docID)
	if err != nil || doc == nil {
		return nil
	}
	return doc.ExtractedData
}

func allowedTypes() []string { return constants.ClassifierCodes() }

func ptr[T any](v T) *T { return &v }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

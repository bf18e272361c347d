package ocr

import (
	"context"
	"log/slog"
)

// Method tags recorded in extraction metadata.
const (
	MethodTesseract     = "tesseract"
	MethodCloud         = "cloud-ocr"
	MethodTesseractLowC = "tesseract-low-confidence"
)

// LocalEngine extracts text from a downloaded file on disk.
type LocalEngine interface {
	Extract(ctx context.Context, path string) (Result, error)
}

// CloudEngine extracts text from a file reachable by URL. Billed per call.
type CloudEngine interface {
	Extract(ctx context.Context, fileURL string) (Result, error)
}

// Adapter implements the cost-optimized fallback strategy: free local OCR
// first, paid cloud OCR only when local confidence is insufficient.
type Adapter struct {
	local     LocalEngine
	cloud     CloudEngine // nil when no fallback is configured
	threshold float32
	logger    *slog.Logger
}

func NewAdapter(local LocalEngine, cloud CloudEngine, threshold float32, logger *slog.Logger) *Adapter {
	if threshold <= 0 {
		threshold = 0.70
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{local: local, cloud: cloud, threshold: threshold, logger: logger}
}

// Extract runs the ladder. localPath is the downloaded file; fileURL is the
// signed URL the cloud engine can fetch the same file from.
//
// Local engine failure is a hard error. Cloud failure is too: there is no
// further fallback behind it.
func (a *Adapter) Extract(ctx context.Context, localPath, fileURL string) (Result, error) {
	res, err := a.local.Extract(ctx, localPath)
	if err != nil {
		return Result{}, err
	}

	if res.Confidence >= a.threshold {
		res.Method = MethodTesseract
		a.logger.Debug("ocr.local.accepted", "confidence", res.Confidence, "threshold", a.threshold)
		return res, nil
	}

	if a.cloud != nil {
		a.logger.Info("ocr.local.below_threshold",
			"confidence", res.Confidence,
			"threshold", a.threshold,
			"fallback", MethodCloud,
		)
		cloudRes, err := a.cloud.Extract(ctx, fileURL)
		if err != nil {
			return Result{}, err
		}
		cloudRes.Method = MethodCloud
		return cloudRes, nil
	}

	a.logger.Warn("ocr.local.low_confidence_no_fallback", "confidence", res.Confidence, "threshold", a.threshold)
	res.Method = MethodTesseractLowC
	return res, nil
}

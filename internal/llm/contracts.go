package llm

import "context"

// SlipClassification is the normalized shape we want from the model.
type SlipClassification struct {
	DocType      string  `json:"doc_type"`                // slip code or "UNKNOWN"
	Confidence   float32 `json:"confidence"`              // 0..1
	TaxYear      *int    `json:"tax_year,omitempty"`      // e.g. 2023
	TaxpayerName *string `json:"taxpayer_name,omitempty"` // as printed on the slip
}

// ClassifyRequest carries the OCR text plus the closed set of codes the model
// may answer with.
type ClassifyRequest struct {
	OCRText      string
	AllowedTypes []string
}

// Classifier is the interface the extraction pipeline depends on.
type Classifier interface {
	Classify(ctx context.Context, req ClassifyRequest) (SlipClassification, []byte /*rawJSON*/, error)
}

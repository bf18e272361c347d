package core

import (
	"encoding/json"
)

// Metadata is the structured mismatch report persisted under "_metadata" in
// the document's extracted_data column. Field names are part of the stored
// contract consumed by the review UI and the completeness engine.
type Metadata struct {
	OCRMethod                string   `json:"ocrMethod,omitempty"`
	OCRConfidence            *float32 `json:"ocrConfidence,omitempty"`
	ClassificationConfidence *float32 `json:"classificationConfidence,omitempty"`
	ExtractedDocType         string   `json:"extractedDocType,omitempty"`
	SelectedDocType          string   `json:"selectedDocType,omitempty"`
	TypeMismatch             *bool    `json:"typeMismatch,omitempty"`
	YearMismatch             *bool    `json:"yearMismatch,omitempty"`
	NameMismatch             *bool    `json:"nameMismatch,omitempty"`
	ExpectedYear             *int     `json:"expectedYear,omitempty"`
	ExtractedYear            *int     `json:"extractedYear,omitempty"`
	OwnerName                string   `json:"ownerName,omitempty"`
	ExtractedName            string   `json:"extractedName,omitempty"`
	ExtractionError          string   `json:"extractionError,omitempty"`
}

// ExtractedData is the envelope stored in the extracted_data column.
// "_ownerName" preserves the caller-declared owner across the pipeline's two
// persistence writes.
type ExtractedData struct {
	TaxYear      *int     `json:"tax_year"`
	TaxpayerName *string  `json:"taxpayer_name"`
	Metadata     Metadata `json:"_metadata"`
	OwnerName    string   `json:"_ownerName,omitempty"`
}

// ParseExtractedData decodes a stored blob; nil or empty input yields a zero
// envelope rather than an error, since new documents have no blob yet.
func ParseExtractedData(raw json.RawMessage) ExtractedData {
	var d ExtractedData
	if len(raw) == 0 {
		return d
	}
	// a corrupt blob degrades to zero rather than blocking the failure write
	_ = json.Unmarshal(raw, &d)
	return d
}

// Marshal encodes the envelope for persistence.
func (d ExtractedData) Marshal() json.RawMessage {
	b, _ := json.Marshal(d)
	return b
}

// MergeFailure folds an extraction error into whatever was already persisted,
// keeping every earlier checkpoint field intact. This is the read-modify-write
// that makes the name-check result survive a later crash.
func MergeFailure(existing json.RawMessage, extractionErr string) json.RawMessage {
	d := ParseExtractedData(existing)
	d.Metadata.ExtractionError = extractionErr
	return d.Marshal()
}

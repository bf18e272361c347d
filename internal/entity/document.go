package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded tax slip for data transfer between layers.
type Document struct {
	ID                   uuid.UUID       `json:"id"`
	TaxYearID            uuid.UUID       `json:"tax_year_id"`
	DocType              string          `json:"doc_type"`
	OwnerName            string          `json:"owner_name,omitempty"`
	FilePath             string          `json:"file_path"`
	FileName             string          `json:"file_name"`
	ExtractionStatus     string          `json:"extraction_status"`
	ExtractionConfidence *float32        `json:"extraction_confidence,omitempty"`
	ExtractedData        json.RawMessage `json:"extracted_data,omitempty"`
	ReviewStatus         string          `json:"review_status"`
	RejectionReason      *string         `json:"rejection_reason,omitempty"`
	UploadedAt           time.Time       `json:"uploaded_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// TaxYear represents one client's filing year.
type TaxYear struct {
	ID           uuid.UUID `json:"id"`
	ClientID     uuid.UUID `json:"client_id"`
	Year         *int      `json:"year,omitempty"`
	Status       *string   `json:"status,omitempty"`
	Completeness *float32  `json:"completeness,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package constants

// ExtractionStatus is the canonical extraction state for a document row.
type ExtractionStatus string

// Stable values (store these exact strings in DB).
const (
	ExtractionPending    ExtractionStatus = "PENDING"    // created, waiting for a worker
	ExtractionProcessing ExtractionStatus = "PROCESSING" // a worker picked it up
	ExtractionSuccess    ExtractionStatus = "SUCCESS"    // terminal: full metadata persisted
	ExtractionFailed     ExtractionStatus = "FAILED"     // terminal: extraction_error persisted
)

// ExtractionStatuses holds the allowed values for the extraction_status column.
var ExtractionStatuses = []string{
	string(ExtractionPending),
	string(ExtractionProcessing),
	string(ExtractionSuccess),
	string(ExtractionFailed),
}

// IsTerminal reports whether s is a terminal extraction state.
// Terminal rows only leave their state through an explicit rescan.
func (s ExtractionStatus) IsTerminal() bool {
	return s == ExtractionSuccess || s == ExtractionFailed
}

// ReviewStatus tracks the human review decision, independent of extraction.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewRejected ReviewStatus = "REJECTED"
)

// ReviewStatuses holds the allowed values for the review_status column.
var ReviewStatuses = []string{
	string(ReviewPending),
	string(ReviewApproved),
	string(ReviewRejected),
}

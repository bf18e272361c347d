package server

import (
	"time"

	docpipev1 "github.com/taxfolio/docpipe/gen/proto/docpipe/v1"
	"github.com/taxfolio/docpipe/internal/entity"
)

func toPBDocument(d *entity.Document) *docpipev1.Document {
	pb := &docpipev1.Document{
		Id:               d.ID.String(),
		TaxYearId:        d.TaxYearID.String(),
		DocType:          d.DocType,
		OwnerName:        d.OwnerName,
		FilePath:         d.FilePath,
		FileName:         d.FileName,
		ExtractionStatus: d.ExtractionStatus,
		ExtractedData:    string(d.ExtractedData),
		ReviewStatus:     d.ReviewStatus,
		UploadedAt:       d.UploadedAt.Format(time.RFC3339Nano),
		UpdatedAt:        d.UpdatedAt.Format(time.RFC3339Nano),
	}
	if d.ExtractionConfidence != nil {
		pb.ExtractionConfidence = *d.ExtractionConfidence
	}
	if d.RejectionReason != nil {
		pb.RejectionReason = *d.RejectionReason
	}
	return pb
}

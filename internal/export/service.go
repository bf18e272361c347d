package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/taxfolio/docpipe/internal/core"
	"github.com/taxfolio/docpipe/internal/entity"
)

// DocumentLister is the slice of the document repository the exporter needs.
type DocumentLister interface {
	ListByTaxYear(ctx context.Context, taxYearID uuid.UUID) ([]*entity.Document, error)
}

// Service produces XLSX bytes for the review workbook of one tax year.
type Service struct {
	docs   DocumentLister
	logger *slog.Logger
}

func NewService(docs DocumentLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

// ExportReviewXLSX returns a workbook listing every document in the tax year
// with its extraction outcome and mismatch flags, for the reviewer to work
// through offline.
func (s *Service) ExportReviewXLSX(ctx context.Context, taxYearID uuid.UUID) ([]byte, error) {
	start := time.Now()

	docs, err := s.docs.ListByTaxYear(ctx, taxYearID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Review"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"File Name",
		"Declared Type",
		"Extracted Type",
		"Extraction Status",
		"Review Status",
		"Confidence",
		"Type Mismatch",
		"Year Mismatch",
		"Name Mismatch",
		"Tax Year",
		"Taxpayer Name",
		"Owner Name",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range docs {
		data := core.ParseExtractedData(d.ExtractedData)

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.FileName)
		write(2, d.DocType)
		write(3, data.Metadata.ExtractedDocType)
		write(4, d.ExtractionStatus)
		write(5, d.ReviewStatus)
		if c := data.Metadata.ClassificationConfidence; c != nil {
			write(6, fmt.Sprintf("%.2f", *c))
		}
		write(7, flag(data.Metadata.TypeMismatch))
		write(8, flag(data.Metadata.YearMismatch))
		write(9, flag(data.Metadata.NameMismatch))
		if data.TaxYear != nil {
			write(10, *data.TaxYear)
		}
		if data.TaxpayerName != nil {
			write(11, *data.TaxpayerName)
		}
		write(12, d.OwnerName)
		write(13, truncate(data.Metadata.ExtractionError, 140))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 36) // file name
	_ = f.SetColWidth(sheet, "B", "E", 16)
	_ = f.SetColWidth(sheet, "F", "I", 12)
	_ = f.SetColWidth(sheet, "J", "L", 20)
	_ = f.SetColWidth(sheet, "M", "M", 48) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"tax_year_id", taxYearID.String(),
		"rows", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func flag(b *bool) string {
	switch {
	case b == nil:
		return ""
	case *b:
		return "yes"
	default:
		return "no"
	}
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/taxfolio/docpipe/internal/core"
	"github.com/taxfolio/docpipe/internal/entity"
)

type listerFake struct {
	docs []*entity.Document
	err  error
}

func (f *listerFake) ListByTaxYear(context.Context, uuid.UUID) ([]*entity.Document, error) {
	return f.docs, f.err
}

func reviewDoc() *entity.Document {
	data := core.ExtractedData{
		TaxYear:      intp(2023),
		TaxpayerName: strp("John Smith"),
		Metadata: core.Metadata{
			ExtractedDocType:         "RL-1",
			SelectedDocType:          "T4",
			ClassificationConfidence: f32p(0.91),
			TypeMismatch:             boolp(true),
			YearMismatch:             boolp(false),
			NameMismatch:             boolp(false),
		},
	}
	return &entity.Document{
		ID:               uuid.New(),
		DocType:          "T4",
		OwnerName:        "John Smith",
		FileName:         "slip.pdf",
		ExtractionStatus: "SUCCESS",
		ReviewStatus:     "PENDING",
		ExtractedData:    data.Marshal(),
	}
}

func intp(v int) *int         { return &v }
func strp(v string) *string   { return &v }
func f32p(v float32) *float32 { return &v }
func boolp(v bool) *bool      { return &v }

func TestExportReviewXLSX(t *testing.T) {
	svc := NewService(&listerFake{docs: []*entity.Document{reviewDoc()}}, nil)

	out, err := svc.ExportReviewXLSX(context.Background(), uuid.New())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	get := func(cell string) string {
		v, err := wb.GetCellValue("Review", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "File Name", get("A1"))
	assert.Equal(t, "slip.pdf", get("A2"))
	assert.Equal(t, "T4", get("B2"))
	assert.Equal(t, "RL-1", get("C2"))
	assert.Equal(t, "SUCCESS", get("D2"))
	assert.Equal(t, "PENDING", get("E2"))
	assert.Equal(t, "0.91", get("F2"))
	assert.Equal(t, "yes", get("G2"))
	assert.Equal(t, "no", get("H2"))
	assert.Equal(t, "no", get("I2"))
	assert.Equal(t, "2023", get("J2"))
	assert.Equal(t, "John Smith", get("K2"))
}

func TestExportReviewXLSXEmptyYear(t *testing.T) {
	svc := NewService(&listerFake{}, nil)

	out, err := svc.ExportReviewXLSX(context.Background(), uuid.New())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	v, err := wb.GetCellValue("Review", "A2")
	require.NoError(t, err)
	assert.Empty(t, v, "header-only workbook")
}

func TestExportReviewXLSXListFailure(t *testing.T) {
	svc := NewService(&listerFake{err: errors.New("connection refused")}, nil)

	_, err := svc.ExportReviewXLSX(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query documents")
}

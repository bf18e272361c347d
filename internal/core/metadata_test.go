package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFailurePreservesCheckpoint(t *testing.T) {
	checkpoint := ExtractedData{
		Metadata: Metadata{
			OCRMethod:     "tesseract",
			OCRConfidence: ptr(float32(0.85)),
			NameMismatch:  ptr(true),
			OwnerName:     "Jane Doe",
		},
		OwnerName: "Jane Doe",
	}

	merged := MergeFailure(checkpoint.Marshal(), "classify: openai status 503")

	got := ParseExtractedData(merged)
	assert.Equal(t, "classify: openai status 503", got.Metadata.ExtractionError)
	require.NotNil(t, got.Metadata.NameMismatch)
	assert.True(t, *got.Metadata.NameMismatch)
	assert.Equal(t, "Jane Doe", got.Metadata.OwnerName)
	assert.Equal(t, "Jane Doe", got.OwnerName)
	assert.Equal(t, "tesseract", got.Metadata.OCRMethod)
}

func TestMergeFailureWithNoPriorData(t *testing.T) {
	merged := MergeFailure(nil, "fetch file: 403")

	got := ParseExtractedData(merged)
	assert.Equal(t, "fetch file: 403", got.Metadata.ExtractionError)
	assert.Nil(t, got.Metadata.NameMismatch)
	assert.Empty(t, got.OwnerName)
}

func TestMergeFailureWithCorruptBlob(t *testing.T) {
	merged := MergeFailure(json.RawMessage(`{not json`), "ocr: exit status 1")

	got := ParseExtractedData(merged)
	assert.Equal(t, "ocr: exit status 1", got.Metadata.ExtractionError)
}

func TestExtractedDataRoundTrip(t *testing.T) {
	in := ExtractedData{
		TaxYear:      ptr(2023),
		TaxpayerName: ptr("John Smith"),
		Metadata: Metadata{
			ExtractedDocType: "T4",
			SelectedDocType:  "T4",
			TypeMismatch:     ptr(false),
		},
		OwnerName: "John Smith",
	}

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(in.Marshal(), &keys))
	assert.Contains(t, keys, "tax_year")
	assert.Contains(t, keys, "taxpayer_name")
	assert.Contains(t, keys, "_metadata")
	assert.Contains(t, keys, "_ownerName")

	got := ParseExtractedData(in.Marshal())
	assert.Equal(t, in, got)
}

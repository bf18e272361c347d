package core

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/docpipe/constants"
	"github.com/taxfolio/docpipe/internal/common"
	"github.com/taxfolio/docpipe/internal/entity"
	"github.com/taxfolio/docpipe/internal/llm"
	"github.com/taxfolio/docpipe/internal/ocr"
	"github.com/taxfolio/docpipe/internal/repository"
)

// docRepoFake persists writes in memory so the failure path's read-back can
// observe earlier checkpoints, like the real repository does.
type docRepoFake struct {
	doc        *entity.Document
	getErr     error
	saveErr    error
	successErr error

	status       string
	data         json.RawMessage
	confidence   *float32
	statusWrites []string
}

func (f *docRepoFake) Create(context.Context, *repository.CreateDocumentRequest) (*entity.Document, error) {
	return nil, nil
}

func (f *docRepoFake) GetByID(context.Context, uuid.UUID) (*entity.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	cp := *f.doc
	cp.ExtractedData = f.data
	return &cp, nil
}

func (f *docRepoFake) ListByTaxYear(context.Context, uuid.UUID) ([]*entity.Document, error) {
	return nil, nil
}

func (f *docRepoFake) MarkProcessing(context.Context, uuid.UUID) error {
	f.status = string(constants.ExtractionProcessing)
	f.statusWrites = append(f.statusWrites, f.status)
	return nil
}

func (f *docRepoFake) SaveExtractedData(_ context.Context, _ uuid.UUID, data json.RawMessage) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data = data
	return nil
}

func (f *docRepoFake) FinishSuccess(_ context.Context, _ uuid.UUID, data json.RawMessage, confidence float32) error {
	if f.successErr != nil {
		return f.successErr
	}
	f.data = data
	f.confidence = &confidence
	f.status = string(constants.ExtractionSuccess)
	f.statusWrites = append(f.statusWrites, f.status)
	return nil
}

func (f *docRepoFake) FinishFailure(_ context.Context, _ uuid.UUID, data json.RawMessage) error {
	f.data = data
	f.status = string(constants.ExtractionFailed)
	f.statusWrites = append(f.statusWrites, f.status)
	return nil
}

func (f *docRepoFake) ResetForRescan(context.Context, uuid.UUID) error {
	f.status = string(constants.ExtractionPending)
	return nil
}

func (f *docRepoFake) SetReviewStatus(context.Context, uuid.UUID, constants.ReviewStatus, *string) error {
	return nil
}

type taxYearRepoFake struct {
	year *entity.TaxYear
	err  error
}

func (f *taxYearRepoFake) GetByID(context.Context, uuid.UUID) (*entity.TaxYear, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.year, nil
}

type signerFake struct {
	url string
	err error
}

func (f *signerFake) SignedURL(context.Context, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fetcherFake struct {
	path string
	err  error
}

func (f *fetcherFake) Fetch(context.Context, string, string) (string, func(), error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return f.path, func() {}, nil
}

type extractorFake struct {
	res ocr.Result
	err error
}

func (f *extractorFake) Extract(context.Context, string, string) (ocr.Result, error) {
	if f.err != nil {
		return ocr.Result{}, f.err
	}
	return f.res, nil
}

type classifierFake struct {
	cls   llm.SlipClassification
	err   error
	calls int
}

func (f *classifierFake) Classify(context.Context, llm.ClassifyRequest) (llm.SlipClassification, []byte, error) {
	f.calls++
	if f.err != nil {
		return llm.SlipClassification{}, nil, f.err
	}
	return f.cls, []byte(`{}`), nil
}

type fixture struct {
	docs       *docRepoFake
	taxYears   *taxYearRepoFake
	signer     *signerFake
	fetcher    *fetcherFake
	extractor  *extractorFake
	classifier *classifierFake
}

func newFixture() *fixture {
	year := 2023
	return &fixture{
		docs: &docRepoFake{doc: &entity.Document{
			ID:               uuid.New(),
			TaxYearID:        uuid.New(),
			DocType:          "T4",
			OwnerName:        "John Smith",
			FilePath:         "clients/abc/t4.pdf",
			FileName:         "t4.pdf",
			ExtractionStatus: string(constants.ExtractionPending),
		}},
		taxYears: &taxYearRepoFake{year: &entity.TaxYear{Year: &year}},
		signer:   &signerFake{url: "https://signed.example/t4.pdf"},
		fetcher:  &fetcherFake{path: "/tmp/t4.pdf"},
		extractor: &extractorFake{res: ocr.Result{
			Text:       "T4 Statement of Remuneration Paid 2023 JOHN SMITH Employer: Acme Corp Box 14",
			Confidence: 0.9,
			Method:     ocr.MethodTesseract,
		}},
		classifier: &classifierFake{cls: llm.SlipClassification{
			DocType:      "T4",
			Confidence:   0.92,
			TaxYear:      intp(2023),
			TaxpayerName: strp("John Smith"),
		}},
	}
}

func (fx *fixture) processor() *Processor {
	return NewProcessor(nil, fx.docs, fx.taxYears, fx.signer, fx.fetcher, fx.extractor, fx.classifier, Options{
		MinTextLength:      50,
		TypeMatchThreshold: 0.80,
	})
}

func (fx *fixture) storedData(t *testing.T) ExtractedData {
	t.Helper()
	var d ExtractedData
	require.NoError(t, json.Unmarshal(fx.docs.data, &d))
	return d
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func TestProcessDocumentSuccess(t *testing.T) {
	fx := newFixture()
	require.NoError(t, fx.processor().ProcessDocument(context.Background(), fx.docs.doc.ID))

	assert.Equal(t, string(constants.ExtractionSuccess), fx.docs.status)
	require.NotNil(t, fx.docs.confidence)
	assert.Equal(t, float32(0.92), *fx.docs.confidence)

	d := fx.storedData(t)
	assert.Equal(t, "T4", d.Metadata.ExtractedDocType)
	assert.Equal(t, "T4", d.Metadata.SelectedDocType)
	assert.Equal(t, ocr.MethodTesseract, d.Metadata.OCRMethod)
	require.NotNil(t, d.Metadata.NameMismatch)
	assert.False(t, *d.Metadata.NameMismatch)
	require.NotNil(t, d.Metadata.TypeMismatch)
	assert.False(t, *d.Metadata.TypeMismatch)
	require.NotNil(t, d.Metadata.YearMismatch)
	assert.False(t, *d.Metadata.YearMismatch)
	assert.Equal(t, "John Smith", d.OwnerName)
	require.NotNil(t, d.TaxYear)
	assert.Equal(t, 2023, *d.TaxYear)
	assert.Empty(t, d.Metadata.ExtractionError)
}

func TestProcessDocumentFlagsMismatches(t *testing.T) {
	fx := newFixture()
	fx.docs.doc.OwnerName = "Jane Doe"
	fx.classifier.cls = llm.SlipClassification{
		DocType:    "RL-1",
		Confidence: 0.9,
		TaxYear:    intp(2022),
	}

	require.NoError(t, fx.processor().ProcessDocument(context.Background(), fx.docs.doc.ID))

	d := fx.storedData(t)
	assert.True(t, *d.Metadata.NameMismatch, "Jane Doe is not in the OCR text")
	assert.True(t, *d.Metadata.TypeMismatch, "RL-1 at 0.9 against declared T4")
	assert.True(t, *d.Metadata.YearMismatch, "2022 extracted vs 2023 expected")
	assert.Equal(t, 2023, *d.Metadata.ExpectedYear)
	assert.Equal(t, 2022, *d.Metadata.ExtractedYear)
}

func TestProcessDocumentNotFound(t *testing.T) {
	fx := newFixture()
	fx.docs.getErr = common.NewAppError("DOCUMENT_NOT_FOUND", "x", common.ErrNotFound)

	err := fx.processor().ProcessDocument(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	// nothing to update: no failure write happened
	assert.Empty(t, fx.docs.statusWrites)
}

func TestProcessDocumentInsufficientText(t *testing.T) {
	fx := newFixture()
	fx.extractor.res = ocr.Result{Text: "too short to use", Confidence: 0.9, Method: ocr.MethodTesseract}

	err := fx.processor().ProcessDocument(context.Background(), fx.docs.doc.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInsufficientText)
	assert.Equal(t, string(constants.ExtractionFailed), fx.docs.status)
	assert.Zero(t, fx.classifier.calls, "unreadable scans never reach the classifier")

	d := fx.storedData(t)
	assert.Contains(t, d.Metadata.ExtractionError, "insufficient text extracted")
	// checkpoint 1 survived the failure write
	require.NotNil(t, d.Metadata.NameMismatch)
	assert.True(t, *d.Metadata.NameMismatch)
	assert.Equal(t, "John Smith", d.Metadata.OwnerName)
}

func TestProcessDocumentClassifierFailurePreservesCheckpoint(t *testing.T) {
	fx := newFixture()
	fx.classifier.err = errors.New("openai status 503")

	err := fx.processor().ProcessDocument(context.Background(), fx.docs.doc.ID)
	require.Error(t, err)
	assert.Equal(t, string(constants.ExtractionFailed), fx.docs.status)

	d := fx.storedData(t)
	require.NotNil(t, d.Metadata.NameMismatch, "checkpoint-1 name check must survive")
	assert.False(t, *d.Metadata.NameMismatch)
	assert.Equal(t, "John Smith", d.Metadata.OwnerName)
	assert.Equal(t, "John Smith", d.OwnerName)
	assert.Equal(t, ocr.MethodTesseract, d.Metadata.OCRMethod)
	assert.Contains(t, d.Metadata.ExtractionError, "503")
}

func TestProcessDocumentOCRFailure(t *testing.T) {
	fx := newFixture()
	fx.extractor.err = errors.New("tesseract: exit status 1")

	err := fx.processor().ProcessDocument(context.Background(), fx.docs.doc.ID)
	require.Error(t, err)
	assert.Equal(t, string(constants.ExtractionFailed), fx.docs.status)

	d := fx.storedData(t)
	assert.Contains(t, d.Metadata.ExtractionError, "tesseract")
	assert.Nil(t, d.Metadata.NameMismatch, "name check never ran")
}

func TestProcessDocumentReportsOCRMethod(t *testing.T) {
	fx := newFixture()
	fx.extractor.res.Method = ocr.MethodCloud

	var methods []string
	p := fx.processor()
	p.SetOCRObserver(func(method string) { methods = append(methods, method) })

	require.NoError(t, p.ProcessDocument(context.Background(), fx.docs.doc.ID))
	assert.Equal(t, []string{ocr.MethodCloud}, methods)
}

func TestProcessDocumentNoOCRMethodOnExtractionFailure(t *testing.T) {
	fx := newFixture()
	fx.extractor.err = errors.New("tesseract: exit status 1")

	var methods []string
	p := fx.processor()
	p.SetOCRObserver(func(method string) { methods = append(methods, method) })

	require.Error(t, p.ProcessDocument(context.Background(), fx.docs.doc.ID))
	assert.Empty(t, methods)
}

func TestProcessDocumentIdempotentRerun(t *testing.T) {
	fx := newFixture()
	p := fx.processor()

	require.NoError(t, p.ProcessDocument(context.Background(), fx.docs.doc.ID))
	first := append(json.RawMessage(nil), fx.docs.data...)

	// queue redelivery: same document, same inputs
	require.NoError(t, p.ProcessDocument(context.Background(), fx.docs.doc.ID))
	assert.JSONEq(t, string(first), string(fx.docs.data))
	assert.Equal(t, string(constants.ExtractionSuccess), fx.docs.status)
}

func TestProcessDocumentTaxYearLoadFailure(t *testing.T) {
	fx := newFixture()
	fx.taxYears.err = errors.New("connection refused")

	err := fx.processor().ProcessDocument(context.Background(), fx.docs.doc.ID)
	require.Error(t, err)
	assert.Equal(t, string(constants.ExtractionFailed), fx.docs.status)

	d := fx.storedData(t)
	require.NotNil(t, d.Metadata.NameMismatch)
}

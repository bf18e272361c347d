package ocr

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runnerFake returns canned stdout per invocation, keyed by the trailing arg
// ("tsv" selects the TSV call).
type runnerFake struct {
	text string
	tsv  string
	err  error
}

func (f *runnerFake) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	if f.err != nil {
		return nil, []byte("boom"), f.err
	}
	if len(args) > 0 && args[len(args)-1] == "tsv" {
		return []byte(f.tsv), nil, nil
	}
	return []byte(f.text), nil, nil
}

const sampleTSV = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
	"5\t1\t1\t1\t1\t1\t10\t10\t50\t12\t90\tT4\n" +
	"5\t1\t1\t1\t1\t2\t70\t10\t80\t12\t80\tStatement\n" +
	"5\t1\t1\t1\t1\t3\t160\t10\t60\t12\t-1\t\n" +
	"5\t1\t1\t1\t1\t4\t230\t10\t60\t12\t70\t2023\n"

func TestExtractImageBlendsTSVConfidence(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = &runnerFake{
		text: "T4 Statement of Remuneration Paid\nEmployer: Acme Corp\nBox 14: 65,000.00\nTax year 2023",
		tsv:  sampleTSV,
	}

	res, err := e.Extract(context.Background(), "/tmp/slip.png")
	require.NoError(t, err)

	// TSV mean = (90+80+70)/3 = 80 -> 0.80; blended 0.7*0.80 + 0.3*heuristic
	assert.Equal(t, MethodTesseract, res.Method)
	assert.InDelta(t, 0.7*0.80, float64(res.Confidence), 0.31)
	assert.Greater(t, res.Confidence, float32(0.56))
	assert.Contains(t, res.Text, "Statement of Remuneration")
	assert.Equal(t, 1, res.Pages)
}

func TestExtractImageTesseractFailure(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = &runnerFake{err: assert.AnError}

	_, err := e.Extract(context.Background(), "/tmp/slip.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesseract")
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), "/tmp/slip.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

func TestExtractPDFTextLayer(t *testing.T) {
	body := strings.Repeat("T4 Statement of Remuneration Paid Employer Acme 2023 ", 4)
	e := NewExtractor(Config{}, nil)
	e.runner = &runnerFake{text: body}

	res, err := e.Extract(context.Background(), "/tmp/slip.pdf")
	require.NoError(t, err)
	assert.Equal(t, MethodTesseract, res.Method)
	assert.Equal(t, float32(0.99), res.Confidence)
}

func TestHeuristicConfidence(t *testing.T) {
	low := heuristicConfidence("zz")
	high := heuristicConfidence("T4 Statement of Remuneration 2023 SIN 123-456-789 Box 14 Employer income " + strings.Repeat("x", 120))
	assert.Less(t, low, float32(0.3))
	assert.GreaterOrEqual(t, high, float32(0.8))
	assert.LessOrEqual(t, high, float32(1.0))
}

func TestNormalize(t *testing.T) {
	in := "line one\r\nline   two\t\tend  \n\n\n\nlast\n____\n"
	out := Normalize(in)
	assert.Equal(t, "line one\nline two end\n\nlast\n____", out)
}

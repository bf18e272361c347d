package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type localFake struct {
	res   Result
	err   error
	calls int
}

func (f *localFake) Extract(context.Context, string) (Result, error) {
	f.calls++
	if f.err != nil {
		return Result{}, f.err
	}
	return f.res, nil
}

type cloudFake struct {
	res   Result
	err   error
	calls int
}

func (f *cloudFake) Extract(context.Context, string) (Result, error) {
	f.calls++
	if f.err != nil {
		return Result{}, f.err
	}
	return f.res, nil
}

func TestAdapterHighConfidenceSkipsCloud(t *testing.T) {
	local := &localFake{res: Result{Text: "T4 Statement of Remuneration 2023", Confidence: 0.85}}
	cloud := &cloudFake{}
	a := NewAdapter(local, cloud, 0.70, nil)

	res, err := a.Extract(context.Background(), "/tmp/slip.png", "https://signed.example/slip.png")
	require.NoError(t, err)
	assert.Equal(t, MethodTesseract, res.Method)
	assert.Equal(t, float32(0.85), res.Confidence)
	assert.Zero(t, cloud.calls, "cloud fallback must not be invoked")
}

func TestAdapterLowConfidenceUsesCloud(t *testing.T) {
	local := &localFake{res: Result{Text: "blurry", Confidence: 0.40}}
	cloud := &cloudFake{res: Result{Text: "T4 Statement of Remuneration Paid 2023", Confidence: 0.93}}
	a := NewAdapter(local, cloud, 0.70, nil)

	res, err := a.Extract(context.Background(), "/tmp/slip.png", "https://signed.example/slip.png")
	require.NoError(t, err)
	assert.Equal(t, MethodCloud, res.Method)
	assert.Equal(t, "T4 Statement of Remuneration Paid 2023", res.Text)
	assert.Equal(t, 1, cloud.calls)
}

func TestAdapterLowConfidenceNoCloudConfigured(t *testing.T) {
	local := &localFake{res: Result{Text: "blurry", Confidence: 0.40}}
	a := NewAdapter(local, nil, 0.70, nil)

	res, err := a.Extract(context.Background(), "/tmp/slip.png", "")
	require.NoError(t, err)
	assert.Equal(t, MethodTesseractLowC, res.Method)
	assert.Equal(t, float32(0.40), res.Confidence)
}

func TestAdapterLocalErrorPropagates(t *testing.T) {
	local := &localFake{err: errors.New("tesseract: exit status 1")}
	cloud := &cloudFake{res: Result{Text: "unused", Confidence: 0.9}}
	a := NewAdapter(local, cloud, 0.70, nil)

	_, err := a.Extract(context.Background(), "/tmp/slip.png", "")
	require.Error(t, err)
	assert.Zero(t, cloud.calls, "cloud is a confidence fallback, not an error fallback")
}

func TestAdapterCloudErrorPropagates(t *testing.T) {
	local := &localFake{res: Result{Text: "blurry", Confidence: 0.10}}
	cloud := &cloudFake{err: errors.New("cloud ocr status 502")}
	a := NewAdapter(local, cloud, 0.70, nil)

	_, err := a.Extract(context.Background(), "/tmp/slip.png", "https://signed.example/slip.png")
	require.Error(t, err)
}

func TestAdapterThresholdBoundary(t *testing.T) {
	// exactly at threshold counts as sufficient
	local := &localFake{res: Result{Text: "ok", Confidence: 0.70}}
	cloud := &cloudFake{}
	a := NewAdapter(local, cloud, 0.70, nil)

	res, err := a.Extract(context.Background(), "/tmp/slip.png", "")
	require.NoError(t, err)
	assert.Equal(t, MethodTesseract, res.Method)
	assert.Zero(t, cloud.calls)
}

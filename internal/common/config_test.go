package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, float32(0.70), cfg.OCR.ConfidenceThreshold)
	assert.Equal(t, "eng+fra", cfg.OCR.TesseractLang)
	assert.Equal(t, float32(0.80), cfg.Extract.TypeMatchThreshold)
	assert.Equal(t, 50, cfg.Extract.MinTextLength)
	assert.Equal(t, 3, cfg.Queue.MaxAttempts)
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout)
	assert.True(t, cfg.Queue.InlineSwallowErrors)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OCR_CONFIDENCE_THRESHOLD", "0.55")
	t.Setenv("TYPE_MATCH_THRESHOLD", "0.9")
	t.Setenv("MIN_TEXT_LENGTH", "80")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("INLINE_SWALLOW_ERRORS", "false")

	cfg := LoadConfig()

	assert.Equal(t, float32(0.55), cfg.OCR.ConfidenceThreshold)
	assert.Equal(t, float32(0.9), cfg.Extract.TypeMatchThreshold)
	assert.Equal(t, 80, cfg.Extract.MinTextLength)
	assert.Equal(t, "nats://localhost:4222", cfg.Queue.URL)
	assert.False(t, cfg.Queue.InlineSwallowErrors)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := LoadConfig()
		cfg.Database.DSN = "postgres://localhost/docpipe"
		cfg.LLM.APIKey = "sk-test"
		return cfg
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Database.DSN = ""
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.LLM.APIKey = ""
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.OCR.ConfidenceThreshold = 1.5
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Queue.URL = "nats://localhost:4222"
	cfg.Queue.Subject = ""
	require.Error(t, cfg.Validate())
}

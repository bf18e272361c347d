package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxfolio/docpipe/internal/llm"
)

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		PromptChars: 100,
	}, nil)
}

func TestClassifyOK(t *testing.T) {
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, chatResponse(`{"doc_type":"T4","confidence":0.91,"tax_year":2023,"taxpayer_name":"John Smith"}`))
	})

	out, raw, err := c.Classify(context.Background(), llm.ClassifyRequest{
		OCRText:      "T4 Statement of Remuneration Paid 2023 JOHN SMITH",
		AllowedTypes: []string{"T4", "RL-1", "UNKNOWN"},
	})
	require.NoError(t, err)
	assert.Equal(t, "T4", out.DocType)
	assert.Equal(t, float32(0.91), out.Confidence)
	require.NotNil(t, out.TaxYear)
	assert.Equal(t, 2023, *out.TaxYear)
	require.NotNil(t, out.TaxpayerName)
	assert.Equal(t, "John Smith", *out.TaxpayerName)
	assert.NotEmpty(t, raw)

	// request shape: bounded output, strict JSON mode
	assert.EqualValues(t, 200, gotBody["max_tokens"])
	rf := gotBody["response_format"].(map[string]any)
	assert.Equal(t, "json_object", rf["type"])
}

func TestClassifyTruncatesPrompt(t *testing.T) {
	var userContent string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		for _, m := range body.Messages {
			if m.Role == "user" {
				userContent = m.Content
			}
		}
		fmt.Fprint(w, chatResponse(`{"doc_type":"UNKNOWN","confidence":0.2}`))
	})

	longText := strings.Repeat("x", 5000)
	_, _, err := c.Classify(context.Background(), llm.ClassifyRequest{OCRText: longText})
	require.NoError(t, err)

	// PromptChars=100: the user prompt carries only the prefix
	assert.Less(t, len(userContent), 300)
	assert.Contains(t, userContent, strings.Repeat("x", 100))
	assert.NotContains(t, userContent, strings.Repeat("x", 101))
}

func TestClassifySchemaViolationIsHardError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatResponse(`{"doc_type":"W2","confidence":0.9}`))
	})

	_, raw, err := c.Classify(context.Background(), llm.ClassifyRequest{
		OCRText:      "some text",
		AllowedTypes: []string{"T4", "UNKNOWN"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
	assert.NotEmpty(t, raw)
}

func TestClassifyProviderErrorPropagates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	})

	_, _, err := c.Classify(context.Background(), llm.ClassifyRequest{OCRText: "text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestClassifyNoChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	})

	_, _, err := c.Classify(context.Background(), llm.ClassifyRequest{OCRText: "text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

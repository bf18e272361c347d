package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taxfolio/docpipe/internal/llm"
)

// Classify implements llm.Classifier using text-only chat/completions.
// The type code, tax year and taxpayer name always print near the top of a
// slip, so only a bounded prefix of the OCR text is sent.
func (c *Client) Classify(ctx context.Context, req llm.ClassifyRequest) (llm.SlipClassification, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	prompt := req.OCRText
	if len(prompt) > c.cfg.PromptChars {
		prompt = prompt[:c.cfg.PromptChars]
	}

	c.log.Info("llm.classify.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.OCRText),
		"prompt_len", len(prompt),
		"allowed_types", len(req.AllowedTypes),
	)

	schema := llm.BuildClassificationJSONSchema(req.AllowedTypes)
	sys := buildSystemPrompt(req.AllowedTypes)
	user := buildUserPrompt(prompt)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"max_tokens":      c.cfg.MaxTokens,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("llm.classify.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SlipClassification{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.classify.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SlipClassification{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.classify.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SlipClassification{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		c.log.Error("llm.classify.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(rawContent),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SlipClassification{}, rawContent, fmt.Errorf("schema validation failed: %w", err)
	}

	var out llm.SlipClassification
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.log.Error("llm.classify.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SlipClassification{}, rawContent, fmt.Errorf("unmarshal classification: %w", err)
	}

	c.log.Info("llm.classify.ok",
		"req_id", rid,
		"doc_type", out.DocType,
		"confidence", out.Confidence,
		"has_year", out.TaxYear != nil,
		"has_name", out.TaxpayerName != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			c.log.Warn("openai response body close error", "error", cerr)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}

func buildSystemPrompt(allowedTypes []string) string {
	typeLine := "doc_type must be a short, sensible tax-slip code."
	if len(allowedTypes) > 0 {
		typeLine = "Allowed doc_type values (enum): " + strings.Join(allowedTypes, ", ") + "."
	}
	parts := []string{
		"You are a Canadian tax-slip classifier. Return ONLY JSON that matches the JSON Schema provided.",
		typeLine,
		"Use \"UNKNOWN\" when the document is not one of the listed slip types or you cannot tell.",
		"tax_year is the filing year printed on the slip (an integer like 2023), or null if not visible.",
		"taxpayer_name is the recipient's name as printed, or null if not visible.",
		"confidence is your certainty about doc_type, between 0 and 1.",
		"Never output fields not in the schema.",
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(ocr string) string {
	var b strings.Builder
	b.WriteString("OCR text (document top):\n")
	b.WriteString(ocr)
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

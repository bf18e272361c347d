package llm

// BuildClassificationJSONSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map. We pass this to the model as a structured output constraint
// and also use it locally to validate the response.
func BuildClassificationJSONSchema(allowedTypes []string) map[string]any {
	docType := map[string]any{"type": "string", "minLength": 1}
	// constrain doc_type to the closed set when provided
	if len(allowedTypes) > 0 {
		docType = map[string]any{
			"type": "string",
			"enum": allowedTypes,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"doc_type":   docType,
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"tax_year": map[string]any{
				"type":    []string{"integer", "null"},
				"minimum": 1990,
				"maximum": 2100,
			},
			"taxpayer_name": map[string]any{"type": []string{"string", "null"}},
		},
		"required": []string{"doc_type", "confidence"},
	}
}

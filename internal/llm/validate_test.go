package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateClassificationSchema(t *testing.T) {
	schema := BuildClassificationJSONSchema([]string{"T4", "RL-1", "UNKNOWN"})

	valid := [][]byte{
		[]byte(`{"doc_type":"T4","confidence":0.92,"tax_year":2023,"taxpayer_name":"John Smith"}`),
		[]byte(`{"doc_type":"UNKNOWN","confidence":0.1}`),
		[]byte(`{"doc_type":"RL-1","confidence":1,"tax_year":null,"taxpayer_name":null}`),
	}
	for _, v := range valid {
		require.NoError(t, ValidateJSONAgainstSchema(schema, v), "%s", v)
	}

	invalid := [][]byte{
		[]byte(`{"doc_type":"W2","confidence":0.9}`),           // outside the enum
		[]byte(`{"doc_type":"T4"}`),                            // missing confidence
		[]byte(`{"doc_type":"T4","confidence":1.4}`),           // out of range
		[]byte(`{"doc_type":"T4","confidence":0.9,"extra":1}`), // additional property
		[]byte(`not json`),
	}
	for _, v := range invalid {
		require.Error(t, ValidateJSONAgainstSchema(schema, v), "%s", v)
	}
}

func TestBuildSchemaWithoutEnum(t *testing.T) {
	schema := BuildClassificationJSONSchema(nil)
	require.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"doc_type":"ANYTHING","confidence":0.5}`)))
}

package mismatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		owner    string
		text     string
		mismatch bool
	}{
		{"empty owner never flags", "", "some extracted text", false},
		{"empty text never flags", "John Smith", "", false},
		{"both empty never flags", "", "", false},
		{"exact match", "John Smith", "Employee: John Smith\nEmployer: Acme", false},
		{"case insensitive", "john smith", "JOHN SMITH 123 Main St", false},
		{"extra whitespace in text", "John Smith", "JOHN   SMITH\t2023", false},
		{"extra whitespace in owner", "  John   Smith ", "john smith", false},
		{"name split across line break", "John Smith", "John\nSmith", false},
		{"name absent", "John Smith", "Jane Doe T4 Statement of Remuneration", true},
		{"partial name only", "John Smith", "Smith, payroll 2023", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.mismatch, Name(tt.owner, tt.text))
		})
	}
}

func TestType(t *testing.T) {
	const threshold = 0.80

	tests := []struct {
		name       string
		extracted  string
		confidence float32
		declared   string
		mismatch   bool
	}{
		{"different types above threshold", "RL-1", 0.9, "T4", true},
		{"different types below threshold", "RL-1", 0.5, "T4", false},
		{"exact threshold counts", "RL-1", 0.80, "T4", true},
		{"unknown never flags", "UNKNOWN", 0.95, "T4", false},
		{"same type", "T4", 0.95, "T4", false},
		{"same type different punctuation", "RL1", 0.95, "RL-1", false},
		{"same type different case", "t4a", 0.95, "T4A", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.mismatch, Type(tt.extracted, tt.confidence, tt.declared, threshold))
		})
	}
}

func TestYear(t *testing.T) {
	y2022 := 2022
	y2023 := 2023

	assert.False(t, Year(nil, &y2023), "nil extracted never flags")
	assert.False(t, Year(&y2023, nil), "nil expected never flags")
	assert.False(t, Year(nil, nil))
	assert.False(t, Year(&y2023, &y2023))
	assert.True(t, Year(&y2022, &y2023))
}

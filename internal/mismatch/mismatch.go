// Package mismatch compares extraction output against the uploader's declared
// expectations. Pure functions, no I/O; flags are surfaced to a human reviewer,
// never used to auto-reject.
package mismatch

import (
	"regexp"
	"strings"

	"github.com/taxfolio/docpipe/constants"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// normalizeText collapses all whitespace runs to single spaces and lowercases.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(reWhitespace.ReplaceAllString(s, " ")))
}

// Name reports whether the declared owner name is absent from the OCR text.
// Both inputs must be non-empty to mismatch: with nothing to compare there is
// no disagreement.
func Name(ownerName, ocrText string) bool {
	name := normalizeText(ownerName)
	text := normalizeText(ocrText)
	if name == "" || text == "" {
		return false
	}
	return !strings.Contains(text, name)
}

// Type reports whether the classifier's document type disagrees with the
// declared one. Low-confidence or UNKNOWN classifications never flag: a weak
// guess must not mark a correctly-typed document.
func Type(extractedType string, confidence float32, declaredType string, threshold float32) bool {
	if confidence < threshold {
		return false
	}
	if constants.CanonicalDocType(extractedType) == constants.CanonicalDocType(string(constants.Unknown)) {
		return false
	}
	return constants.CanonicalDocType(extractedType) != constants.CanonicalDocType(declaredType)
}

// Year reports whether the extracted tax year disagrees with the tax-year
// record's year. A nil on either side never flags.
func Year(extractedYear, expectedYear *int) bool {
	if extractedYear == nil || expectedYear == nil {
		return false
	}
	return *extractedYear != *expectedYear
}

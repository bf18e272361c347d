package ocr

import (
	"regexp"
	"strings"
)

var (
	reTaxYear = regexp.MustCompile(`\b20\d{2}\b`)
	reSIN     = regexp.MustCompile(`\b\d{3}[ -]?\d{3}[ -]?\d{3}\b`)
	reBoxNum  = regexp.MustCompile(`\b(box|case)\s*\d{1,3}\b`)
	reSlipKw  = regexp.MustCompile(`\b(statement|relev[eé]|remuneration|revenus|employer|employeur|income)\b`)
)

func hasTaxYearPattern(s string) bool { return reTaxYear.MatchString(s) }
func hasSINPattern(s string) bool     { return reSIN.MatchString(s) }
func hasBoxPattern(s string) bool     { return reBoxNum.MatchString(s) }
func hasSlipKeyword(s string) bool    { return reSlipKw.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// boost if we see common slip artifacts: a plausible tax year, an
	// SIN-shaped number, box labels, bilingual slip keywords.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasTaxYearPattern(txtL) {
		score += 0.2
	}
	if hasSINPattern(txtL) {
		score += 0.15
	}
	if hasBoxPattern(txtL) {
		score += 0.15
	}
	if hasSlipKeyword(txtL) {
		score += 0.1
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}

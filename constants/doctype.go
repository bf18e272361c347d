package constants

import (
	"regexp"
	"strings"
)

// DocType is a supported tax-slip code.
type DocType string

// Federal and Québec slip codes we accept at upload time and from the classifier.
const (
	T4      DocType = "T4"
	T4A     DocType = "T4A"
	T4E     DocType = "T4E"
	T4RSP   DocType = "T4RSP"
	T4RIF   DocType = "T4RIF"
	T5      DocType = "T5"
	T3      DocType = "T3"
	T5008   DocType = "T5008"
	T5013   DocType = "T5013"
	T2202   DocType = "T2202"
	NR4     DocType = "NR4"
	RL1     DocType = "RL-1"
	RL2     DocType = "RL-2"
	RL3     DocType = "RL-3"
	RL31    DocType = "RL-31"
	RRSP    DocType = "RRSP"
	Other   DocType = "OTHER"
	Unknown DocType = "UNKNOWN"
)

var docTypes = []DocType{
	T4, T4A, T4E, T4RSP, T4RIF, T5, T3, T5008, T5013, T2202, NR4,
	RL1, RL2, RL3, RL31, RRSP, Other,
}

// DocTypeCodes returns the slip codes a caller may declare (excludes UNKNOWN).
func DocTypeCodes() []string {
	out := make([]string, 0, len(docTypes))
	for _, d := range docTypes {
		out = append(out, string(d))
	}
	return out
}

// ClassifierCodes returns the closed set the classifier may answer with:
// every declared code plus UNKNOWN.
func ClassifierCodes() []string {
	return append(DocTypeCodes(), string(Unknown))
}

var reNonAlnum = regexp.MustCompile(`[^A-Z0-9]`)

// CanonicalDocType strips non-alphanumerics and uppercases, so "RL-1",
// "rl1" and "RL 1" all compare equal.
func CanonicalDocType(s string) string {
	return reNonAlnum.ReplaceAllString(strings.ToUpper(strings.TrimSpace(s)), "")
}

// IsKnownDocType reports whether s canonicalizes to a declared slip code.
func IsKnownDocType(s string) bool {
	c := CanonicalDocType(s)
	for _, d := range docTypes {
		if CanonicalDocType(string(d)) == c {
			return true
		}
	}
	return false
}

// Package reconstruct - Cardholder name search (best effort)
// File: internal/reconstruct/name.go
package reconstruct

import (
	"regexp"
	"strings"
)

// namePattern matches two consecutive all-uppercase alphabetic words,
// each at least two letters, the shape embossed names take.
var namePattern = regexp.MustCompile(`\b([A-Z]{2,})\s+([A-Z]{2,})\b`)

// nameExclusions are label words that also appear in uppercase on a
// card face. A match containing any of them is not a cardholder name.
var nameExclusions = map[string]bool{
	"VALID":      true,
	"THRU":       true,
	"MEMBER":     true,
	"SINCE":      true,
	"VISA":       true,
	"MASTERCARD": true,
	"DEBIT":      true,
	"CREDIT":     true,
}

// FindCardholderName scans fragments for an embossed-name shaped match.
// A fragment containing ANY excluded label word is skipped wholesale,
// since label lines ("VALID THRU", "VISA DEBIT") share the uppercase
// two-word shape. The name is an optional field: reconstruction
// succeeds without it.
//
// Returns:
//   - string: "FIRST LAST" as matched, normalized to a single space
//   - bool: true if a non-excluded match was found
func FindCardholderName(fragments []TextFragment) (string, bool) {
	for _, fragment := range fragments {
		if containsExcludedWord(fragment.Text) {
			continue
		}
		if match := namePattern.FindStringSubmatch(fragment.Text); match != nil {
			return match[1] + " " + match[2], true
		}
	}
	return "", false
}

// containsExcludedWord reports whether any whitespace-separated word of
// text is on the exclusion list.
func containsExcludedWord(text string) bool {
	for _, word := range strings.Fields(text) {
		if nameExclusions[word] {
			return true
		}
	}
	return false
}

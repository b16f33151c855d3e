// Package reconstruct - Expiry date search
// File: internal/reconstruct/expiry.go
package reconstruct

import (
	"fmt"
	"regexp"
)

// ExpiryDate is a validated month/year pair. Year is always four
// digits; two-digit years are normalized by prefixing "20" at parse
// time.
type ExpiryDate struct {
	Month int // 1-12
	Year  int // four digits
}

// String renders the canonical "MM/YYYY" display form.
func (e ExpiryDate) String() string {
	return fmt.Sprintf("%02d/%04d", e.Month, e.Year)
}

// Expiry patterns, tried in order per fragment. The slash patterns are
// space tolerant ("MM / YY"), and the space patterns cover the
// slash-optional layout some cards use. Label text around the date
// ("VALID THRU 12/27", "EXP 12/27") needs no special handling since
// the patterns match anywhere in the fragment.
//
// The two-digit-year patterns come first, mirroring how often each
// layout appears on real cards; their trailing \b keeps them from
// chopping a four-digit year in half.
var expiryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{1,2})\s*/\s*(\d{2})\b`),   // MM/YY, MM / YY
	regexp.MustCompile(`\b(\d{1,2})\s*/\s*(\d{4})\b`),   // MM/YYYY, MM / YYYY
	regexp.MustCompile(`\b(\d{1,2})\s+(\d{2})\b`),       // MM YY
	regexp.MustCompile(`\b(\d{1,2})\s+(\d{4})\b`),       // MM YYYY
}

// FindExpiryDate scans each fragment's raw text against the expiry
// patterns in order. The first match with a month in [1,12] wins.
//
// Returns:
//   - ExpiryDate: Parsed date with a four-digit year
//   - bool: true if any fragment yielded a valid date
func FindExpiryDate(fragments []TextFragment) (ExpiryDate, bool) {
	for _, fragment := range fragments {
		if date, ok := parseExpiry(fragment.Text); ok {
			return date, true
		}
	}
	return ExpiryDate{}, false
}

// parseExpiry tries every pattern against one text, accepting the
// first match whose month is in range. A pattern may match several
// times in one fragment (dates embedded in longer labels), so all
// matches are considered before moving to the next pattern.
func parseExpiry(text string) (ExpiryDate, bool) {
	for _, pattern := range expiryPatterns {
		matches := pattern.FindAllStringSubmatch(text, -1)
		for _, match := range matches {
			month := atoiDigits(match[1])
			if month < 1 || month > 12 {
				continue
			}

			year := atoiDigits(match[2])
			if len(match[2]) == 2 {
				// Two-digit years are normalized into this century
				year += 2000
			}

			return ExpiryDate{Month: month, Year: year}, true
		}
	}
	return ExpiryDate{}, false
}

// atoiDigits converts a short digits-only string captured by the
// patterns above. No error path: the regex guarantees the shape.
func atoiDigits(digits string) int {
	value := 0
	for i := 0; i < len(digits); i++ {
		value = value*10 + int(digits[i]-'0')
	}
	return value
}

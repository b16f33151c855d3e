// Package policy runs security validation rules over a secure record
// and reports structured issues with severities.
// File: internal/policy/issues.go
package policy

// Severity classifies how serious a detected issue is. High-severity
// issues cause the scan pipeline to reject the attempt outright;
// Medium and Low are advisory.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// String returns the display name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// SecurityIssue is one finding from policy evaluation. The set is
// closed and every issue carries a fixed severity.
type SecurityIssue int

const (
	// InvalidCardNumber - the number fails the Luhn checksum or the
	// length rules
	InvalidCardNumber SecurityIssue = iota

	// InvalidExpiryDate - the date is malformed, out of range, or
	// strictly before the current month
	InvalidExpiryDate

	// TestCardDetected - the number is one of the public test numbers
	// the networks publish for integration testing
	TestCardDetected

	// CardNumberNotReadable - the record could not decrypt its card
	// number field
	CardNumberNotReadable

	// ExpiryDateNotReadable - the record could not decrypt its expiry
	// field
	ExpiryDateNotReadable

	// SuspiciousPattern - the digits form a pattern (all identical,
	// straight run) unlikely on an issued card
	SuspiciousPattern
)

// issueSeverities is the fixed severity per issue.
//
// TestCardDetected is deliberately Medium, not High: whether a test
// card terminates the scan is a configuration decision made by the
// pipeline (AllowTestCards), so the issue itself must not trip the
// high-severity rejection.
var issueSeverities = map[SecurityIssue]Severity{
	InvalidCardNumber:     SeverityHigh,
	InvalidExpiryDate:     SeverityHigh,
	TestCardDetected:      SeverityMedium,
	CardNumberNotReadable: SeverityHigh,
	ExpiryDateNotReadable: SeverityMedium,
	SuspiciousPattern:     SeverityLow,
}

// Severity returns the fixed severity of the issue.
func (i SecurityIssue) Severity() Severity {
	return issueSeverities[i]
}

// String returns the issue name.
func (i SecurityIssue) String() string {
	switch i {
	case InvalidCardNumber:
		return "invalid card number"
	case InvalidExpiryDate:
		return "invalid expiry date"
	case TestCardDetected:
		return "test card detected"
	case CardNumberNotReadable:
		return "card number not readable"
	case ExpiryDateNotReadable:
		return "expiry date not readable"
	case SuspiciousPattern:
		return "suspicious digit pattern"
	default:
		return "unknown issue"
	}
}

// ValidationResult is the outcome of one policy evaluation. Valid
// holds iff Issues is empty.
type ValidationResult struct {
	Valid  bool
	Issues []SecurityIssue
}

// Has reports whether a specific issue was raised.
func (r ValidationResult) Has(issue SecurityIssue) bool {
	for _, found := range r.Issues {
		if found == issue {
			return true
		}
	}
	return false
}

// HasHighSeverity reports whether any raised issue is High severity.
func (r ValidationResult) HasHighSeverity() bool {
	for _, found := range r.Issues {
		if found.Severity() == SeverityHigh {
			return true
		}
	}
	return false
}

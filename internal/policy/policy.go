// Package policy - Rule evaluation
// File: internal/policy/policy.go
package policy

import (
	"strconv"
	"strings"
	"time"

	"github.com/Ryujin1210/CreditCardScannerSDK/internal/detector"
	"github.com/Ryujin1210/CreditCardScannerSDK/internal/securerecord"
)

// testCardNumbers are the public integration-test numbers published by
// the card networks. All of them are checksum valid, which is why the
// test-card check runs independently of the Luhn check: a
// checksum-invalid number can never be flagged as a test card.
var testCardNumbers = map[string]bool{
	// Visa
	"4111111111111111": true,
	"4012888888881881": true,
	// Mastercard
	"5555555555554444": true,
	"5105105105105100": true,
	// American Express
	"378282246310005": true,
	"371449635398431": true,
	// Discover
	"6011111111111117": true,
	"6011000990139424": true,
}

// IsTestCardNumber reports whether a digits-only number is one of the
// published test numbers.
func IsTestCardNumber(digits string) bool {
	return testCardNumbers[digits]
}

// Policy evaluates validation rules against a secure record. The clock
// is injectable so expiry tests are deterministic; the zero value is
// not usable, construct with New.
type Policy struct {
	now func() time.Time
}

// New returns a policy evaluating against the real clock.
func New() *Policy {
	return &Policy{now: time.Now}
}

// NewWithClock returns a policy evaluating against a fixed clock
// source. Intended for tests.
func NewWithClock(now func() time.Time) *Policy {
	return &Policy{now: now}
}

// Evaluate runs every rule over the record's decrypted contents and
// returns the collected issues. Rules run in a fixed order so the
// issue list is deterministic for a given record and clock:
//
//	card number: readability -> checksum -> test corpus -> pattern
//	expiry date: readability -> shape -> not before current month
func (p *Policy) Evaluate(record *securerecord.Record) ValidationResult {
	var issues []SecurityIssue

	// --- Card number rules ---
	number, err := record.DecryptedCardNumber()
	if err != nil {
		issues = append(issues, CardNumberNotReadable)
	} else {
		if !detector.IsValidCardNumber(number) {
			issues = append(issues, InvalidCardNumber)
		}
		if IsTestCardNumber(number) {
			issues = append(issues, TestCardDetected)
		}
		if hasSuspiciousPattern(number) {
			issues = append(issues, SuspiciousPattern)
		}
	}

	// --- Expiry date rules ---
	expiry, err := record.DecryptedExpiryDate()
	if err != nil {
		issues = append(issues, ExpiryDateNotReadable)
	} else if !p.expiryUsable(expiry) {
		issues = append(issues, InvalidExpiryDate)
	}

	return ValidationResult{Valid: len(issues) == 0, Issues: issues}
}

// expiryUsable parses "MM/YYYY" and checks the card has not expired.
// A card is usable through the last day of its expiry month: valid iff
// year > current year, or year == current year and month >= current
// month.
func (p *Policy) expiryUsable(expiry string) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 {
		return false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 4 {
		return false
	}

	currentYear, currentMonth, _ := p.now().Date()
	if year != currentYear {
		return year > currentYear
	}
	return month >= int(currentMonth)
}

// hasSuspiciousPattern flags digit strings unlikely to be an issued
// card even when earlier rules pass: all digits identical, or a
// straight ascending run such as 1234567890123456 (each digit one more
// than the previous, wrapping 9 -> 0).
func hasSuspiciousPattern(digits string) bool {
	if len(digits) < 2 || !detector.IsDigitsOnly(digits) {
		return false
	}

	identical := true
	ascending := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			identical = false
		}
		previous := int(digits[i-1] - '0')
		if int(digits[i]-'0') != (previous+1)%10 {
			ascending = false
		}
	}

	return identical || ascending
}

// Package detector handles card number validation and brand classification
// This file implements the Luhn algorithm and the digit helpers built on it
package detector

import "strings"

// Card number length bounds shared across the package
const (
	minCardLength = 13
	maxCardLength = 19
)

// IsValidCardNumber checks whether the input is a well formed card number
//
// Validation steps:
//  1. Strip spaces and hyphens (the separators card labels carry)
//  2. Reject if ANY remaining character is not a decimal digit
//  3. Reject if the digit count is outside 13-19
//  4. Run the Luhn checksum
//
// Note the difference to ExtractDigits: this function is strict about
// non-digit characters. "Card: 4111111111111111" fails here, while the
// reconstruction paths extract digits first and then validate.
//
// Parameters:
//   - input: Raw candidate string (separators allowed)
//
// Returns:
//   - bool: true if the input is a checksum-valid card number
//
// Example:
//
//	IsValidCardNumber("4111 1111 1111 1111") => true
//	IsValidCardNumber("4111111111111112")    => false (wrong checksum)
//	IsValidCardNumber("4111x11111111111")    => false (stray character)
func IsValidCardNumber(input string) bool {
	// Step 1: Remove the separators commonly printed on cards
	cleaned := strings.ReplaceAll(input, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")

	if cleaned == "" {
		return false
	}

	// Step 2: Anything left that is not a digit disqualifies the input
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] < '0' || cleaned[i] > '9' {
			return false
		}
	}

	// Step 3: Card numbers are 13-19 digits
	// Minimum: 13 digits (some Visa cards)
	// Maximum: 19 digits (extended formats)
	length := len(cleaned)
	if length < minCardLength || length > maxCardLength {
		return false
	}

	// Step 4: Luhn checksum
	return luhnChecksum(cleaned)
}

// luhnChecksum applies the Luhn (mod 10) algorithm to a digits-only string
//
// How it works:
//  1. Start from the rightmost digit
//  2. Double every second digit (from right to left)
//  3. If a doubled value exceeds 9, subtract 9
//  4. Sum all digits
//  5. Valid if the sum is divisible by 10
//
// The caller guarantees the input contains only '0'-'9'.
func luhnChecksum(digits string) bool {
	sum := 0
	double := false // Toggled per position, starting false at the rightmost digit

	// Process digits from right to left
	for i := len(digits) - 1; i >= 0; i-- {
		digit := int(digits[i] - '0')

		if double {
			digit *= 2

			// Subtracting 9 is equivalent to summing the two digits
			// Example: 14 -> 1+4=5, and 14-9=5
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// ExtractDigits keeps only decimal digit characters, preserving order
// Every other byte is dropped, which naturally discards multi-byte
// characters since none of their bytes fall in the ASCII digit range.
//
// Parameters:
//   - text: Input string
//
// Returns:
//   - string: Digits only; empty when the input has no digits
//
// Example:
//
//	ExtractDigits("Card: 4532-0151-1283-0366") => "4532015112830366"
//	ExtractDigits("abc123def456")              => "123456"
//	ExtractDigits("!@#$%^&*()")                => ""
func ExtractDigits(text string) string {
	var builder strings.Builder
	builder.Grow(maxCardLength) // Most inputs are at most one card number

	for i := 0; i < len(text); i++ {
		char := text[i]
		if char >= '0' && char <= '9' {
			builder.WriteByte(char)
		}
	}

	return builder.String()
}

// FormatCardNumber inserts a single space before every 4th digit
// The final group may hold 1-4 digits.
//
// Parameters:
//   - digits: Digits-only card number
//
// Returns:
//   - string: Display form in groups of four
//
// Example:
//
//	FormatCardNumber("4111111111111111") => "4111 1111 1111 1111"
//	FormatCardNumber("378282246310005")  => "3782 8224 6310 005"
func FormatCardNumber(digits string) string {
	var builder strings.Builder
	builder.Grow(len(digits) + len(digits)/4)

	for i := 0; i < len(digits); i++ {
		if i > 0 && i%4 == 0 {
			builder.WriteByte(' ')
		}
		builder.WriteByte(digits[i])
	}

	return builder.String()
}

// IsDigitsOnly reports whether text is non-empty and contains only
// decimal digits. Used by the reconstruction stages to recognize the
// strict 4-digit embossed groups.
func IsDigitsOnly(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// Package detector handles card number validation and brand classification
// File: internal/detector/brand.go
//
// This file identifies the issuing network from a normalized card number
// using fast prefix and length checks instead of regex. The input is
// already clean digits, so a few string comparisons are all we need.
package detector

// CardBrand is the issuing network inferred from a card number's
// length and leading digits. The set is closed; anything that does not
// match a known network maps to BrandUnknown.
type CardBrand int

const (
	BrandUnknown CardBrand = iota
	BrandVisa
	BrandMastercard
	BrandAmericanExpress
	BrandDiscover
)

// String returns the display name of the brand.
func (b CardBrand) String() string {
	switch b {
	case BrandVisa:
		return "Visa"
	case BrandMastercard:
		return "Mastercard"
	case BrandAmericanExpress:
		return "American Express"
	case BrandDiscover:
		return "Discover"
	default:
		return "Unknown"
	}
}

// IdentifyBrand classifies a digits-only card number
//
// Rules are evaluated in a fixed order and the first match wins, which
// settles the overlapping-prefix edge cases deterministically:
//
//  1. Visa             - starts with "4", length 13, 16 or 19
//  2. Mastercard       - length 16 and (starts with "5", or the first
//     four digits fall in 2221-2720, the range added in 2014)
//  3. American Express - length 15, starts with "34" or "37"
//  4. Discover         - length 16, starts with "6"
//
// Classification is total: every input maps to exactly one brand,
// defaulting to BrandUnknown. The function does NOT validate the Luhn
// checksum; that is a separate stage.
//
// Example:
//
//	IdentifyBrand("4111111111111111") => BrandVisa
//	IdentifyBrand("378282246310005")  => BrandAmericanExpress
//	IdentifyBrand("1234567890123456") => BrandUnknown
func IdentifyBrand(digits string) CardBrand {
	length := len(digits)

	// CHECK 1: Visa (most common network, checked first)
	// Visa issues 13, 16 and 19 digit numbers, all starting with 4
	if digits != "" && digits[0] == '4' {
		if length == 13 || length == 16 || length == 19 {
			return BrandVisa
		}
	}

	// CHECK 2: Mastercard
	// Legacy range starts with 5; the newer range is 2221-2720
	if length == 16 {
		if digits[0] == '5' {
			return BrandMastercard
		}
		// Lexicographic comparison works here because both bounds and
		// the prefix are exactly four digits
		first4 := digits[0:4]
		if first4 >= "2221" && first4 <= "2720" {
			return BrandMastercard
		}
	}

	// CHECK 3: American Express
	// The only network still issuing 15-digit numbers
	if length == 15 {
		prefix := digits[0:2]
		if prefix == "34" || prefix == "37" {
			return BrandAmericanExpress
		}
	}

	// CHECK 4: Discover
	if length == 16 && digits[0] == '6' {
		return BrandDiscover
	}

	return BrandUnknown
}

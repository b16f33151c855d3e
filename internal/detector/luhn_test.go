package detector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCardNumber(t *testing.T) {
	t.Parallel()

	t.Run("accepts checksum-valid numbers of every brand", func(t *testing.T) {
		t.Parallel()
		valid := []string{
			"4111111111111111", // Visa
			"4012888888881881", // Visa
			"5555555555554444", // Mastercard
			"5105105105105100", // Mastercard
			"378282246310005",  // American Express (15 digits)
			"371449635398431",  // American Express
			"6011111111111117", // Discover
			"6011000990139424", // Discover
			"4222222222222",    // Visa (13 digits)
		}
		for _, number := range valid {
			assert.True(t, IsValidCardNumber(number), "expected %s to validate", number)
		}
	})

	t.Run("accepts separators", func(t *testing.T) {
		t.Parallel()
		assert.True(t, IsValidCardNumber("4111 1111 1111 1111"))
		assert.True(t, IsValidCardNumber("4111-1111-1111-1111"))
		assert.True(t, IsValidCardNumber("3782 822463 10005"))
	})

	t.Run("rejects bad checksums and bad lengths", func(t *testing.T) {
		t.Parallel()
		invalid := []string{
			"",                     // empty
			"411",                  // 3 digits
			"411111111111",         // 12 digits, one short
			"41111111111111111111", // 20 digits, one long
			"4111111111111112",     // wrong checksum
			"1234567890123456",     // wrong checksum
		}
		for _, number := range invalid {
			assert.False(t, IsValidCardNumber(number), "expected %s to be rejected", number)
		}
	})

	t.Run("rejects any non-separator contamination", func(t *testing.T) {
		t.Parallel()
		// ExtractDigits would recover these; the strict validator must not
		assert.False(t, IsValidCardNumber("Card: 4111111111111111"))
		assert.False(t, IsValidCardNumber("4111a11111111111"))
		assert.False(t, IsValidCardNumber("4111_1111_1111_1111"))
	})
}

func TestExtractDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mixed letters and digits", "abc123def456", "123456"},
		{"no digits at all", "!@#$%^&*()", ""},
		{"empty input", "", ""},
		{"separated card number", "4532-0151-1283-0366", "4532015112830366"},
		{"labeled card number", "Card: 4111 1111 1111 1111", "4111111111111111"},
		{"multi-byte characters dropped", "€12·34", "1234"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExtractDigits(tt.input))
		})
	}
}

func TestFormatCardNumber(t *testing.T) {
	t.Parallel()

	t.Run("groups of four", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111111111111111"))
	})

	t.Run("short final group", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "3782 8224 6310 005", FormatCardNumber("378282246310005"))
		assert.Equal(t, "4222 2222 2222 2", FormatCardNumber("4222222222222"))
	})

	t.Run("round trip through extraction", func(t *testing.T) {
		t.Parallel()
		for _, digits := range []string{"4111111111111111", "378282246310005", "4222222222222", "1", ""} {
			assert.Equal(t, digits, ExtractDigits(FormatCardNumber(digits)))
		}
	})
}

func TestIsDigitsOnly(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDigitsOnly("4111"))
	assert.False(t, IsDigitsOnly(""))
	assert.False(t, IsDigitsOnly("41 11"))
	assert.False(t, IsDigitsOnly("41a1"))
	assert.False(t, IsDigitsOnly(strings.Repeat("9", 4)+"x"))
}

package reconstruct

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frag builds a fragment with a neutral position for tests that do not
// care about layout.
func frag(text string) TextFragment {
	return TextFragment{Text: text, Confidence: 0.9, X: 0.5, Y: 0.5}
}

func TestFindCardNumberSingleFragment(t *testing.T) {
	t.Parallel()

	t.Run("bare number", func(t *testing.T) {
		t.Parallel()
		number, ok := FindCardNumber([]TextFragment{frag("4111111111111111")})
		require.True(t, ok)
		assert.Equal(t, "4111111111111111", number)
	})

	t.Run("labeled number with separators", func(t *testing.T) {
		t.Parallel()
		number, ok := FindCardNumber([]TextFragment{frag("Card: 4111 1111 1111 1111")})
		require.True(t, ok)
		assert.Equal(t, "4111111111111111", number)
	})

	t.Run("checksum-invalid fragment is not accepted", func(t *testing.T) {
		t.Parallel()
		_, ok := FindCardNumber([]TextFragment{frag("4111111111111112")})
		assert.False(t, ok)
	})

	t.Run("no fragments", func(t *testing.T) {
		t.Parallel()
		_, ok := FindCardNumber(nil)
		assert.False(t, ok)
	})
}

func TestFindCardNumberCombinations(t *testing.T) {
	t.Parallel()

	t.Run("pair split across two fragments", func(t *testing.T) {
		t.Parallel()
		number, ok := FindCardNumber([]TextFragment{
			frag("4111 1111"),
			frag("1111 1111"),
		})
		require.True(t, ok)
		assert.Equal(t, "4111111111111111", number)
	})

	t.Run("pair needs reversed fragment order", func(t *testing.T) {
		t.Parallel()
		// The recognizer reported the pieces out of order. The split is
		// deliberately uneven: swapping even-length halves of a valid
		// number stays Luhn-valid (the shift preserves digit-position
		// parity), so only an odd split proves the (1,0) permutation ran
		number, ok := FindCardNumber([]TextFragment{
			frag("112830366"),
			frag("4532015"),
		})
		require.True(t, ok)
		assert.Equal(t, "4532015112830366", number)
	})

	t.Run("triple split", func(t *testing.T) {
		t.Parallel()
		number, ok := FindCardNumber([]TextFragment{
			frag("3782"),
			frag("822463"),
			frag("10005"),
		})
		require.True(t, ok)
		assert.Equal(t, "378282246310005", number)
	})

	t.Run("noise fragments do not block the pair", func(t *testing.T) {
		t.Parallel()
		number, ok := FindCardNumber([]TextFragment{
			frag("VALID THRU"),
			frag("4111 1111"),
			frag("JOHN SMITH"),
			frag("1111 1111"),
		})
		require.True(t, ok)
		assert.Equal(t, "4111111111111111", number)
	})
}

func TestFindCombinedNumberCap(t *testing.T) {
	t.Parallel()

	// A pair that validates when the combination stage runs
	fragments := []TextFragment{frag("4111 1111"), frag("1111 1111")}

	t.Run("under the cap the pair is found", func(t *testing.T) {
		t.Parallel()
		number, ok := findCombinedNumber(fragments)
		require.True(t, ok)
		assert.Equal(t, "4111111111111111", number)
	})

	t.Run("over the cap the stage is skipped", func(t *testing.T) {
		t.Parallel()
		padded := make([]TextFragment, 0, maxCombinationFragments+1)
		padded = append(padded, fragments...)
		for i := len(padded); i <= maxCombinationFragments; i++ {
			padded = append(padded, frag(fmt.Sprintf("noise %d", i)))
		}
		require.Greater(t, len(padded), maxCombinationFragments)

		_, ok := findCombinedNumber(padded)
		assert.False(t, ok)
	})
}

func TestFindPositionSortedNumber(t *testing.T) {
	t.Parallel()

	t.Run("stacked groups read top-first then left-to-right", func(t *testing.T) {
		t.Parallel()
		// Two rows of two groups; input order scrambled. Larger Y is
		// higher on screen, so the 0.60 row reads before the 0.40 row
		fragments := []TextFragment{
			{Text: "1111", Confidence: 0.9, X: 0.65, Y: 0.41}, // bottom right
			{Text: "4111", Confidence: 0.9, X: 0.30, Y: 0.60}, // top left
			{Text: "1111", Confidence: 0.9, X: 0.30, Y: 0.39}, // bottom left
			{Text: "1111", Confidence: 0.9, X: 0.65, Y: 0.61}, // top right
		}

		number, ok := findPositionSortedNumber(fragments)
		require.True(t, ok)
		assert.Equal(t, "4111111111111111", number)
	})

	t.Run("accepts a valid prefix before consuming every fragment", func(t *testing.T) {
		t.Parallel()
		// The first two fragments already form a valid number; the
		// trailing group must not be appended
		fragments := []TextFragment{
			{Text: "41111111", Confidence: 0.9, X: 0.2, Y: 0.8},
			{Text: "11111111", Confidence: 0.9, X: 0.6, Y: 0.8},
			{Text: "9999", Confidence: 0.9, X: 0.2, Y: 0.2},
		}

		number, ok := findPositionSortedNumber(fragments)
		require.True(t, ok)
		assert.Equal(t, "4111111111111111", number)
	})

	t.Run("fragments with fewer than four digits are ignored", func(t *testing.T) {
		t.Parallel()
		fragments := []TextFragment{
			{Text: "411", Confidence: 0.9, X: 0.2, Y: 0.8},
			{Text: "1", Confidence: 0.9, X: 0.6, Y: 0.8},
		}

		_, ok := findPositionSortedNumber(fragments)
		assert.False(t, ok)
	})
}

func TestFindVerticalGroupNumber(t *testing.T) {
	t.Parallel()

	t.Run("four stacked groups in fragment order", func(t *testing.T) {
		t.Parallel()
		number, ok := FindVerticalGroupNumber([]TextFragment{
			frag("4111"), frag("1111"), frag("1111"), frag("1111"),
		})
		require.True(t, ok)
		assert.Equal(t, "4111111111111111", number)
	})

	t.Run("sliding window skips a leading stray group", func(t *testing.T) {
		t.Parallel()
		number, ok := FindVerticalGroupNumber([]TextFragment{
			frag("1234"), // stray group, window starting here fails Luhn
			frag("4111"), frag("1111"), frag("1111"), frag("1111"),
		})
		require.True(t, ok)
		assert.Equal(t, "4111111111111111", number)
	})

	t.Run("non strict groups do not participate", func(t *testing.T) {
		t.Parallel()
		_, ok := FindVerticalGroupNumber([]TextFragment{
			frag("4111 "), frag("1111"), frag("1111"), frag("1111"),
		})
		assert.False(t, ok)
	})

	t.Run("fewer than four groups", func(t *testing.T) {
		t.Parallel()
		_, ok := FindVerticalGroupNumber([]TextFragment{
			frag("4111"), frag("1111"), frag("1111"),
		})
		assert.False(t, ok)
	})
}

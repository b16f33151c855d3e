package creditcardscanner_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	creditcardscanner "github.com/Ryujin1210/CreditCardScannerSDK"
)

func TestScannerEndToEnd(t *testing.T) {
	t.Parallel()

	scanner := creditcardscanner.New(creditcardscanner.DefaultConfig(), nil)

	t.Run("successful scan", func(t *testing.T) {
		t.Parallel()
		result, err := scanner.Scan([]creditcardscanner.TextFragment{
			{Text: "4532 0151 1283 0366", Confidence: 0.95, X: 0.5, Y: 0.6},
			{Text: "VALID THRU 12/49", Confidence: 0.90, X: 0.5, Y: 0.4},
		})
		require.NoError(t, err)

		assert.Equal(t, "4532 0151 1283 0366", result.CardNumber)
		assert.Equal(t, "12/2049", result.ExpiryDate)
		assert.Equal(t, creditcardscanner.BrandVisa, result.Brand)

		masked, err := result.Record.MaskedCardNumber()
		require.NoError(t, err)
		assert.Equal(t, "4532********0366", masked)
	})

	t.Run("failures are typed", func(t *testing.T) {
		t.Parallel()
		_, err := scanner.Scan([]creditcardscanner.TextFragment{
			{Text: "blurry", Confidence: 0.2},
		})
		require.Error(t, err)

		var scanErr *creditcardscanner.ScanError
		require.True(t, errors.As(err, &scanErr))
		assert.Equal(t, creditcardscanner.FailureLowConfidence, scanErr.Kind)
		assert.True(t, scanErr.Recoverable())
		assert.NotEmpty(t, scanErr.Error())
	})

	t.Run("concurrent scans are independent", func(t *testing.T) {
		t.Parallel()
		fragments := []creditcardscanner.TextFragment{
			{Text: "4532 0151 1283 0366", Confidence: 0.95, X: 0.5, Y: 0.6},
			{Text: "12/49", Confidence: 0.90, X: 0.5, Y: 0.4},
		}

		done := make(chan error, 8)
		for i := 0; i < 8; i++ {
			go func() {
				_, err := scanner.Scan(fragments)
				done <- err
			}()
		}
		for i := 0; i < 8; i++ {
			assert.NoError(t, <-done)
		}
	})
}

func TestNewFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scanner:\n  allow_test_cards: true\n"), 0o600))

	scanner, err := creditcardscanner.NewFromConfigFile(path)
	require.NoError(t, err)

	// Test cards pass under this configuration
	result, err := scanner.Scan([]creditcardscanner.TextFragment{
		{Text: "4111 1111 1111 1111", Confidence: 0.95, X: 0.5, Y: 0.6},
		{Text: "12/49", Confidence: 0.95, X: 0.5, Y: 0.4},
	})
	require.NoError(t, err)
	assert.False(t, result.Validation.Valid, "the test-card finding is still reported")
}

func TestNewFromConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scanner:\n  confidence_threshold: 2.0\n"), 0o600))

	_, err := creditcardscanner.NewFromConfigFile(path)
	assert.Error(t, err)
}

// purgeStore is a minimal external storage collaborator.
type purgeStore struct {
	entries map[string]bool
}

func (s *purgeStore) Identifiers() []string {
	var identifiers []string
	for identifier := range s.entries {
		identifiers = append(identifiers, identifier)
	}
	return identifiers
}

func (s *purgeStore) Remove(identifier string) error {
	delete(s.entries, identifier)
	return nil
}

func TestPurgeTransientTraces(t *testing.T) {
	t.Parallel()

	scanner := creditcardscanner.New(creditcardscanner.DefaultConfig(), nil)
	store := &purgeStore{entries: map[string]bool{
		"ocr-frame-cache": true,
		"unrelated-key":   true,
	}}

	require.NoError(t, scanner.PurgeTransientTraces(store))
	assert.False(t, store.entries["ocr-frame-cache"])
	assert.True(t, store.entries["unrelated-key"])
}

func TestStatelessHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, creditcardscanner.IsValidCardNumber("4111 1111 1111 1111"))
	assert.False(t, creditcardscanner.IsValidCardNumber("4111111111111112"))
	assert.Equal(t, "123456", creditcardscanner.ExtractDigits("abc123def456"))
	assert.Equal(t, "3782 8224 6310 005", creditcardscanner.FormatCardNumber("378282246310005"))
	assert.Equal(t, creditcardscanner.BrandMastercard, creditcardscanner.IdentifyBrand("5555555555554444"))
}

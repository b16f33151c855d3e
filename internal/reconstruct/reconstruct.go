// Package reconstruct - Top level reconstruction entry point
// File: internal/reconstruct/reconstruct.go
package reconstruct

// Reconstruction is the outcome of one recognition pass. Card number
// and expiry are found or missing independently; the cardholder name
// is best effort and never required.
type Reconstruction struct {
	// CardNumber holds the digits-only number when HasCardNumber
	CardNumber    string
	HasCardNumber bool

	// Expiry holds the parsed date when HasExpiry
	Expiry    ExpiryDate
	HasExpiry bool

	// Cardholder holds "FIRST LAST" when HasCardholder
	Cardholder    string
	HasCardholder bool

	// Confidence is the mean confidence across all fragments of the
	// pass (see AggregateConfidence)
	Confidence float64
}

// Complete reports whether both required fields were recovered.
func (r Reconstruction) Complete() bool {
	return r.HasCardNumber && r.HasExpiry
}

// Reconstruct runs the card number, expiry and name searches over one
// recognition pass and aggregates confidence. Each search fails
// independently; partial results are returned with the corresponding
// Has flag cleared.
func Reconstruct(fragments []TextFragment) Reconstruction {
	result := Reconstruction{
		Confidence: AggregateConfidence(fragments),
	}

	result.CardNumber, result.HasCardNumber = FindCardNumber(fragments)
	result.Expiry, result.HasExpiry = FindExpiryDate(fragments)
	result.Cardholder, result.HasCardholder = FindCardholderName(fragments)

	return result
}

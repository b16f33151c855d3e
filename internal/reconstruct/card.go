// Package reconstruct - Card number search stages
// File: internal/reconstruct/card.go
//
// This file implements the card number search as a staged pipeline:
//
//	Stage 1: Single-fragment match (number arrived whole)
//	Stage 2: Pair/triple combinations (number split across fragments)
//	Stage 3: Position-sorted greedy accumulation (stacked digit groups)
//	Stage 4: Vertical-layout 4-group windows (strict embossed layout)
//
// Every stage funnels its candidate through the same acceptance test:
// 13-19 extracted digits passing the Luhn checksum. The first stage to
// produce an accepted candidate wins.
package reconstruct

import (
	"math"
	"sort"

	"github.com/Ryujin1210/CreditCardScannerSDK/internal/detector"
)

const (
	// maxCombinationFragments caps the pair/triple combination stage.
	// Combination generation is cubic in the fragment count; above this
	// bound the stage is skipped and the search falls through to the
	// positional stages.
	maxCombinationFragments = 50

	// rowTolerance is the normalized vertical-center distance within
	// which two fragments count as sitting on the same row.
	rowTolerance = 0.1

	// minGreedyDigits is the minimum extractable digit count for a
	// fragment to participate in greedy accumulation. Embossed card
	// numbers come in groups of at least four digits.
	minGreedyDigits = 4

	// embossedGroupLength is the exact digit count of one embossed
	// group in the vertical layout.
	embossedGroupLength = 4
)

// FindCardNumber searches one recognition pass for a complete card
// number, trying the stages in order and returning the first accepted
// candidate as a digits-only string.
//
// Returns:
//   - string: Digits-only card number, or "" when no stage succeeds
//   - bool: true if a number was found
func FindCardNumber(fragments []TextFragment) (string, bool) {
	// Stage 1: A single fragment may hold the entire number,
	// possibly with separators or a label around it
	if number, ok := findSingleFragmentNumber(fragments); ok {
		return number, true
	}

	// Stage 2: OCR often splits one printed line into two or three
	// fragments; try ordered concatenations
	if number, ok := findCombinedNumber(fragments); ok {
		return number, true
	}

	// Stage 3: Sort by screen position and accumulate digit groups
	if number, ok := findPositionSortedNumber(fragments); ok {
		return number, true
	}

	// Stage 4: Strict vertical layout of embossed 4-digit groups
	if number, ok := FindVerticalGroupNumber(fragments); ok {
		return number, true
	}

	return "", false
}

// acceptDigits is the shared acceptance test: 13-19 digits and a
// passing Luhn checksum.
func acceptDigits(digits string) bool {
	return detector.IsValidCardNumber(digits)
}

// findSingleFragmentNumber implements Stage 1
//
// Each fragment is reduced to its digits and accepted if it forms a
// valid card number on its own. This handles the common case of the
// full number recognized as one line, including labeled text such as
// "Card: 4111111111111111".
func findSingleFragmentNumber(fragments []TextFragment) (string, bool) {
	for _, fragment := range fragments {
		digits := detector.ExtractDigits(fragment.Text)
		if acceptDigits(digits) {
			return digits, true
		}
	}
	return "", false
}

// findCombinedNumber implements Stage 2
//
// Generates concatenations of ordered pairs and ordered triples of
// distinct fragments (all index permutations, not only the original
// text order) and accepts the first concatenation whose digits form a
// valid card number. This recovers numbers OCR split into two or three
// separate fragments.
//
// Cost is bounded by the cube of the fragment count, so the stage is
// skipped entirely above maxCombinationFragments; callers fall through
// to the positional stages instead.
func findCombinedNumber(fragments []TextFragment) (string, bool) {
	count := len(fragments)
	if count < 2 || count > maxCombinationFragments {
		return "", false
	}

	// Extract digits once per fragment; concatenating extracted digits
	// is equivalent to extracting from the concatenated texts
	digitsPer := make([]string, count)
	for i, fragment := range fragments {
		digitsPer[i] = detector.ExtractDigits(fragment.Text)
	}

	// Ordered pairs
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			if i == j {
				continue
			}
			if combined := digitsPer[i] + digitsPer[j]; acceptDigits(combined) {
				return combined, true
			}
		}
	}

	// Ordered triples
	for i := 0; i < count; i++ {
		for j := 0; j < count; j++ {
			if j == i {
				continue
			}
			for k := 0; k < count; k++ {
				if k == i || k == j {
					continue
				}
				if combined := digitsPer[i] + digitsPer[j] + digitsPer[k]; acceptDigits(combined) {
					return combined, true
				}
			}
		}
	}

	return "", false
}

// findPositionSortedNumber implements Stage 3
//
// Fragments carrying at least four extractable digits are sorted into
// reading order - top of frame first (descending Y, since larger Y is
// higher on screen), then left to right within a row (vertical centers
// within rowTolerance). Digits are accumulated fragment by fragment,
// checking after each append whether the accumulated count is 13-19
// and passes the checksum. The first such prefix wins.
//
// This handles vertically stacked digit groups that the combination
// stage cannot reach (more than three fragments).
func findPositionSortedNumber(fragments []TextFragment) (string, bool) {
	// Collect the digit-bearing fragments
	type digitFragment struct {
		digits string
		x, y   float64
	}

	var candidates []digitFragment
	for _, fragment := range fragments {
		digits := detector.ExtractDigits(fragment.Text)
		if len(digits) >= minGreedyDigits {
			candidates = append(candidates, digitFragment{digits: digits, x: fragment.X, y: fragment.Y})
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	// Reading order: top row first, left to right within a row
	sort.SliceStable(candidates, func(i, j int) bool {
		if math.Abs(candidates[i].y-candidates[j].y) <= rowTolerance {
			return candidates[i].x < candidates[j].x
		}
		return candidates[i].y > candidates[j].y
	})

	// Greedy accumulation with a validity check per append
	accumulated := ""
	for _, candidate := range candidates {
		accumulated += candidate.digits
		if len(accumulated) > maxCardLengthDigits {
			return "", false
		}
		if acceptDigits(accumulated) {
			return accumulated, true
		}
	}

	return "", false
}

// maxCardLengthDigits mirrors the upper card length bound; once the
// accumulator exceeds it no later prefix can validate.
const maxCardLengthDigits = 19

// FindVerticalGroupNumber implements Stage 4, the strict vertical
// layout path
//
// Only fragments that are EXACTLY one 4-digit group participate. Every
// window of four consecutive such groups, in original fragment order,
// is concatenated and the first checksum-valid 16-digit concatenation
// is accepted.
//
// Exported separately because callers that know the card uses the
// embossed 4x4 layout can invoke it directly.
func FindVerticalGroupNumber(fragments []TextFragment) (string, bool) {
	var groups []string
	for _, fragment := range fragments {
		if len(fragment.Text) == embossedGroupLength && detector.IsDigitsOnly(fragment.Text) {
			groups = append(groups, fragment.Text)
		}
	}

	// Need at least four groups for one window
	for i := 0; i+4 <= len(groups); i++ {
		combined := groups[i] + groups[i+1] + groups[i+2] + groups[i+3]
		if acceptDigits(combined) {
			return combined, true
		}
	}

	return "", false
}

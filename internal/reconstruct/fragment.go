// Package reconstruct rebuilds a complete card number and expiry date
// from fragmented text-recognition output.
//
// One recognition pass hands us an unordered set of text fragments, each
// with a confidence score and a position on screen. A card number may
// arrive whole in one fragment, split across two or three fragments, or
// stacked as separate 4-digit groups. The search stages in card.go try
// those layouts in order of likelihood.
package reconstruct

// TextFragment is one unit of recognized text from an external
// text-recognition pass. It is immutable and consumed once per
// reconstruction attempt.
type TextFragment struct {
	// Text is the raw recognized string, exactly as the recognizer
	// produced it (labels, separators and noise included)
	Text string

	// Confidence is the recognizer's score for this fragment, 0.0-1.0
	Confidence float64

	// X and Y are the fragment's center in normalized [0,1]
	// coordinates. The recognition coordinate origin has larger Y
	// meaning HIGHER on screen, so "top of frame first" sorts by
	// descending Y.
	X float64
	Y float64
}

// FragmentFromBox builds a TextFragment from a normalized bounding
// rectangle, for callers whose recognizer reports boxes rather than
// center points.
func FragmentFromBox(text string, confidence, x, y, width, height float64) TextFragment {
	return TextFragment{
		Text:       text,
		Confidence: confidence,
		X:          x + width/2,
		Y:          y + height/2,
	}
}

// AggregateConfidence returns the arithmetic mean of the per-fragment
// confidence values across ALL fragments of a recognition pass, not
// just the fragments used in a winning match. Returns 0 for an empty
// pass.
func AggregateConfidence(fragments []TextFragment) float64 {
	if len(fragments) == 0 {
		return 0
	}

	sum := 0.0
	for _, fragment := range fragments {
		sum += fragment.Confidence
	}

	return sum / float64(len(fragments))
}

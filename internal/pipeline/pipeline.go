// Package pipeline orchestrates one scan attempt end to end:
// fragments -> reconstruction -> brand validation -> secure record ->
// policy evaluation -> result.
//
// A Pipeline instance serves exactly one attempt. Concurrent attempts
// (one per camera frame, for example) are independent instances with
// no shared state; serializing or discarding overlapping attempts is
// the caller's policy.
package pipeline

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ryujin1210/CreditCardScannerSDK/internal/detector"
	"github.com/Ryujin1210/CreditCardScannerSDK/internal/policy"
	"github.com/Ryujin1210/CreditCardScannerSDK/internal/reconstruct"
	"github.com/Ryujin1210/CreditCardScannerSDK/internal/securerecord"
)

// Config is the behavior configuration one pipeline consumes.
type Config struct {
	// ConfidenceThreshold is the minimum aggregate recognition
	// confidence; attempts below it fail with FailureLowConfidence
	ConfidenceThreshold float64

	// SecurityValidationEnabled toggles the policy stage. When false
	// the result carries an empty (valid) ValidationResult and no
	// test-card check occurs, since that signal comes from the policy
	SecurityValidationEnabled bool

	// AllowTestCards accepts the published network test numbers.
	// Off by default: production builds should reject them
	AllowTestCards bool
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold:       0.8,
		SecurityValidationEnabled: true,
		AllowTestCards:            false,
	}
}

// ScanResult is the success payload of one attempt.
type ScanResult struct {
	// ID correlates this attempt across logs and transient traces
	ID uuid.UUID

	// CardNumber is the display-formatted number (groups of four)
	CardNumber string

	// ExpiryDate is the canonical "MM/YYYY" form
	ExpiryDate string

	// Cardholder is the embossed name when recognized, "" otherwise
	Cardholder string

	// Brand is the issuing network classified from the number
	Brand detector.CardBrand

	// Confidence is the aggregate recognition confidence of the pass
	Confidence float64

	// Record holds the sensitive fields encrypted in memory
	Record *securerecord.Record

	// Validation is the policy outcome (empty and valid when the
	// policy stage was disabled)
	Validation policy.ValidationResult
}

// Pipeline runs the stages for a single scan attempt.
type Pipeline struct {
	config Config
	logger *zap.Logger
	policy *policy.Policy
	state  State
}

// New builds a pipeline for one attempt. A nil logger is replaced with
// a no-op logger.
func New(config Config, logger *zap.Logger) *Pipeline {
	return NewWithPolicy(config, logger, policy.New())
}

// NewWithPolicy builds a pipeline with an explicit policy instance,
// letting tests pin the evaluation clock.
func NewWithPolicy(config Config, logger *zap.Logger, pol *policy.Policy) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		config: config,
		logger: logger,
		policy: pol,
		state:  StateIdle,
	}
}

// State returns the pipeline's current position. After Run it is
// StateSucceeded or StateFailed.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the stages over one recognition snapshot. Failure
// checks apply in a fixed order: low confidence, incomplete data,
// test card not allowed, security validation.
//
// Plaintext card data never reaches the logs; only masked numbers,
// counts and confidences do.
func (p *Pipeline) Run(fragments []reconstruct.TextFragment) (*ScanResult, error) {
	attemptID := uuid.New()
	log := p.logger.With(zap.String("scan_id", attemptID.String()))

	// Stage: receive fragments
	p.state = StateAwaitingFragments
	if len(fragments) == 0 {
		return nil, p.fail(log, ProcessingError(nil))
	}

	// Stage: reconstruction
	p.state = StateReconstructing
	reconstruction := reconstruct.Reconstruct(fragments)
	log.Debug("reconstruction finished",
		zap.Int("fragments", len(fragments)),
		zap.Float64("confidence", reconstruction.Confidence),
		zap.Bool("card_number_found", reconstruction.HasCardNumber),
		zap.Bool("expiry_found", reconstruction.HasExpiry))

	// Stage: validation. Confidence gates first, then completeness
	p.state = StateValidating
	if reconstruction.Confidence < p.config.ConfidenceThreshold {
		return nil, p.fail(log, &ScanError{
			Kind:  FailureLowConfidence,
			Score: reconstruction.Confidence,
		})
	}
	if !reconstruction.Complete() {
		return nil, p.fail(log, &ScanError{Kind: FailureIncompleteData})
	}
	brand := detector.IdentifyBrand(reconstruction.CardNumber)

	// Stage: secure the sensitive fields
	p.state = StateSecuring
	record, err := securerecord.New(reconstruction.CardNumber, reconstruction.Expiry.String())
	if err != nil {
		return nil, p.fail(log, &ScanError{Kind: FailureCrypto, Err: err})
	}

	// Stage: policy evaluation
	p.state = StatePolicyChecking
	var validation policy.ValidationResult
	if p.config.SecurityValidationEnabled {
		validation = p.policy.Evaluate(record)

		if validation.Has(policy.TestCardDetected) && !p.config.AllowTestCards {
			return nil, p.fail(log, &ScanError{Kind: FailureTestCardNotAllowed})
		}
		if validation.HasHighSeverity() {
			return nil, p.fail(log, &ScanError{
				Kind:   FailureSecurityValidation,
				Result: validation,
			})
		}
	} else {
		validation = policy.ValidationResult{Valid: true}
	}

	p.state = StateSucceeded
	if masked, maskErr := record.MaskedCardNumber(); maskErr == nil {
		log.Info("scan succeeded",
			zap.String("card_number", masked),
			zap.Stringer("brand", brand),
			zap.Float64("confidence", reconstruction.Confidence))
	}

	return &ScanResult{
		ID:         attemptID,
		CardNumber: detector.FormatCardNumber(reconstruction.CardNumber),
		ExpiryDate: reconstruction.Expiry.String(),
		Cardholder: reconstruction.Cardholder,
		Brand:      brand,
		Confidence: reconstruction.Confidence,
		Record:     record,
		Validation: validation,
	}, nil
}

// fail records the terminal state and logs the outcome.
func (p *Pipeline) fail(log *zap.Logger, scanErr *ScanError) error {
	p.state = StateFailed
	log.Info("scan failed",
		zap.String("reason", scanErr.Error()),
		zap.Bool("recoverable", scanErr.Recoverable()))
	return scanErr
}

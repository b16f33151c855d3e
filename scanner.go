// Package creditcardscanner extracts, validates and securely
// represents payment card data recognized from camera or image text
// recognition output.
//
// The package is a library core: the platform supplies recognized text
// fragments (text, confidence, position) and receives either a scan
// result with the sensitive fields encrypted in memory, or a typed
// failure explaining what to do next. Camera capture, on-device text
// recognition and UI presentation are external collaborators.
//
// Basic use:
//
//	scanner := creditcardscanner.New(creditcardscanner.DefaultConfig(), nil)
//	result, err := scanner.Scan(fragments)
//	if err != nil {
//	    var scanErr *creditcardscanner.ScanError
//	    if errors.As(err, &scanErr) && scanErr.Recoverable() {
//	        // re-scan with a fresh snapshot
//	    }
//	    return err
//	}
//	masked, _ := result.Record.MaskedCardNumber()
package creditcardscanner

import (
	"go.uber.org/zap"

	"github.com/Ryujin1210/CreditCardScannerSDK/internal/config"
	"github.com/Ryujin1210/CreditCardScannerSDK/internal/detector"
	"github.com/Ryujin1210/CreditCardScannerSDK/internal/observability"
	"github.com/Ryujin1210/CreditCardScannerSDK/internal/pipeline"
	"github.com/Ryujin1210/CreditCardScannerSDK/internal/policy"
	"github.com/Ryujin1210/CreditCardScannerSDK/internal/reconstruct"
	"github.com/Ryujin1210/CreditCardScannerSDK/internal/securerecord"
	"github.com/Ryujin1210/CreditCardScannerSDK/internal/traces"
)

// Re-exported types. The facade is the supported surface; internal
// packages may reorganize without notice.
type (
	// TextFragment is one unit of recognized text with confidence and
	// normalized screen position
	TextFragment = reconstruct.TextFragment

	// ExpiryDate is a validated month/year pair
	ExpiryDate = reconstruct.ExpiryDate

	// CardBrand is the issuing network classified from a number
	CardBrand = detector.CardBrand

	// SecureRecord holds sensitive fields encrypted in memory
	SecureRecord = securerecord.Record

	// SecurityIssue is one policy finding with a fixed severity
	SecurityIssue = policy.SecurityIssue

	// ValidationResult is the outcome of policy evaluation
	ValidationResult = policy.ValidationResult

	// ScanResult is the success payload of one attempt
	ScanResult = pipeline.ScanResult

	// ScanError is the typed failure every stage returns
	ScanError = pipeline.ScanError

	// FailureKind enumerates the terminal failure outcomes
	FailureKind = pipeline.FailureKind

	// Config controls pipeline behavior
	Config = pipeline.Config

	// TraceStore is implemented by storage collaborators holding
	// transient scan artifacts
	TraceStore = traces.Store
)

// Brand constants.
const (
	BrandUnknown         = detector.BrandUnknown
	BrandVisa            = detector.BrandVisa
	BrandMastercard      = detector.BrandMastercard
	BrandAmericanExpress = detector.BrandAmericanExpress
	BrandDiscover        = detector.BrandDiscover
)

// Failure kinds.
const (
	FailureCameraUnavailable  = pipeline.FailureCameraUnavailable
	FailurePermissionDenied   = pipeline.FailurePermissionDenied
	FailureProcessing         = pipeline.FailureProcessing
	FailureLowConfidence      = pipeline.FailureLowConfidence
	FailureIncompleteData     = pipeline.FailureIncompleteData
	FailureUserCancelled      = pipeline.FailureUserCancelled
	FailureTestCardNotAllowed = pipeline.FailureTestCardNotAllowed
	FailureSecurityValidation = pipeline.FailureSecurityValidation
	FailureCrypto             = pipeline.FailureCrypto
)

// DefaultConfig returns the production defaults: confidence threshold
// 0.8, security validation on, test cards rejected.
func DefaultConfig() Config {
	return pipeline.DefaultConfig()
}

// Scanner is the embedding application's entry point. It is stateless
// between scans and safe for concurrent use; every Scan call runs an
// independent pipeline instance.
type Scanner struct {
	config Config
	logger *zap.Logger
}

// New builds a scanner with the given behavior configuration. A nil
// logger disables logging.
func New(cfg Config, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{config: cfg, logger: logger}
}

// NewFromConfigFile loads configuration (see internal/config for the
// file format and CARDSCANNER_ environment keys), builds the matching
// logger and returns a ready scanner. Pass "" to run on defaults.
func NewFromConfigFile(path string) (*Scanner, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	return &Scanner{
		config: Config{
			ConfidenceThreshold:       cfg.Scanner.ConfidenceThreshold,
			SecurityValidationEnabled: cfg.Scanner.SecurityValidationEnabled,
			AllowTestCards:            cfg.Scanner.AllowTestCards,
		},
		logger: observability.NewLogger(cfg.Logger),
	}, nil
}

// Scan runs one attempt over a stable recognition snapshot. On success
// the returned record holds the card number and expiry encrypted under
// a key private to that record. On failure the error is always a
// *ScanError whose Kind tells the caller whether re-scanning can help.
func (s *Scanner) Scan(fragments []TextFragment) (*ScanResult, error) {
	return pipeline.New(s.config, s.logger).Run(fragments)
}

// PurgeTransientTraces removes scan-related entries (identifiers
// containing "card", "scan" or "ocr", case-insensitive) from an
// external storage collaborator. Idempotent.
func (s *Scanner) PurgeTransientTraces(store TraceStore) error {
	return traces.PurgeTransientTraces(store)
}

// Stateless helpers re-exported for callers that only need validation
// or formatting without a full pipeline.

// IsValidCardNumber reports whether input (separators allowed) is a
// checksum-valid card number.
func IsValidCardNumber(input string) bool {
	return detector.IsValidCardNumber(input)
}

// ExtractDigits keeps only the decimal digits of text.
func ExtractDigits(text string) string {
	return detector.ExtractDigits(text)
}

// FormatCardNumber renders digits in display groups of four.
func FormatCardNumber(digits string) string {
	return detector.FormatCardNumber(digits)
}

// IdentifyBrand classifies a digits-only number into its issuing
// network.
func IdentifyBrand(digits string) CardBrand {
	return detector.IdentifyBrand(digits)
}

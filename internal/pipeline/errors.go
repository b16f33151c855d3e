// Package pipeline - Failure taxonomy
// File: internal/pipeline/errors.go
//
// Every way a scan attempt can terminate short of success is a
// ScanError with a kind from the closed set below. Core stages never
// panic for expected conditions; callers switch on the kind to decide
// between retrying and aborting.
package pipeline

import (
	"fmt"

	"github.com/Ryujin1210/CreditCardScannerSDK/internal/policy"
)

// FailureKind enumerates the terminal failure outcomes of a scan.
type FailureKind int

const (
	// FailureCameraUnavailable - the camera collaborator reported no
	// usable device. Passed through unchanged.
	FailureCameraUnavailable FailureKind = iota

	// FailurePermissionDenied - the platform refused camera access.
	// Passed through unchanged.
	FailurePermissionDenied

	// FailureProcessing - the recognition collaborator failed or
	// produced no usable observations.
	FailureProcessing

	// FailureLowConfidence - aggregate recognition confidence fell
	// below the configured threshold. Recoverable by re-scanning.
	FailureLowConfidence

	// FailureIncompleteData - reconstruction could not recover both
	// the card number and the expiry date. Recoverable by re-scanning
	// with better framing.
	FailureIncompleteData

	// FailureUserCancelled - the user aborted the attempt. A terminal
	// outcome rather than an engineering error.
	FailureUserCancelled

	// FailureTestCardNotAllowed - a published test number was scanned
	// under a configuration that disallows test cards.
	FailureTestCardNotAllowed

	// FailureSecurityValidation - policy evaluation raised at least
	// one high-severity issue.
	FailureSecurityValidation

	// FailureCrypto - the cryptographic primitive failed, e.g. key
	// generation could not read from the system entropy source.
	FailureCrypto
)

// ScanError is the tagged failure value every pipeline stage returns.
// Score is set for FailureLowConfidence, Result for
// FailureSecurityValidation, Err for wrapped collaborator errors.
type ScanError struct {
	Kind   FailureKind
	Score  float64
	Result policy.ValidationResult
	Err    error
}

// Error renders the human-readable description for the failure kind.
func (e *ScanError) Error() string {
	switch e.Kind {
	case FailureCameraUnavailable:
		return "camera is not available on this device"
	case FailurePermissionDenied:
		return "camera permission was denied"
	case FailureProcessing:
		return "text recognition produced no usable observations"
	case FailureLowConfidence:
		return fmt.Sprintf("recognition confidence %.2f is below the required threshold", e.Score)
	case FailureIncompleteData:
		return "could not read both the card number and the expiry date"
	case FailureUserCancelled:
		return "scan was cancelled by the user"
	case FailureTestCardNotAllowed:
		return "test card numbers are not accepted"
	case FailureSecurityValidation:
		return fmt.Sprintf("security validation failed with %d issue(s)", len(e.Result.Issues))
	case FailureCrypto:
		return "cryptographic operation failed"
	default:
		return "unknown scan failure"
	}
}

// Unwrap exposes a wrapped collaborator error, if any.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// Recoverable reports whether re-scanning can plausibly succeed.
func (e *ScanError) Recoverable() bool {
	return e.Kind == FailureLowConfidence || e.Kind == FailureIncompleteData
}

// Pass-through constructors for failures originating in external
// collaborators. The core never produces these itself; it carries them
// unchanged so callers deal with one taxonomy.

// CameraUnavailable wraps a camera collaborator failure.
func CameraUnavailable(err error) *ScanError {
	return &ScanError{Kind: FailureCameraUnavailable, Err: err}
}

// PermissionDenied wraps a platform permission refusal.
func PermissionDenied(err error) *ScanError {
	return &ScanError{Kind: FailurePermissionDenied, Err: err}
}

// ProcessingError wraps a recognition collaborator failure.
func ProcessingError(err error) *ScanError {
	return &ScanError{Kind: FailureProcessing, Err: err}
}

// UserCancelled marks an attempt aborted by the user.
func UserCancelled() *ScanError {
	return &ScanError{Kind: FailureUserCancelled}
}

// Package pipeline - Scan state machine
// File: internal/pipeline/state.go
package pipeline

// State is the position of one scan attempt in the linear pipeline:
//
//	Idle -> AwaitingFragments -> Reconstructing -> Validating ->
//	Securing -> PolicyChecking -> Succeeded | Failed
//
// Transitions are synchronous and never branch backwards; each stage
// either advances or terminates in StateFailed.
type State int

const (
	StateIdle State = iota
	StateAwaitingFragments
	StateReconstructing
	StateValidating
	StateSecuring
	StatePolicyChecking
	StateSucceeded
	StateFailed
)

// String returns the state name for logs and diagnostics.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingFragments:
		return "awaiting_fragments"
	case StateReconstructing:
		return "reconstructing"
	case StateValidating:
		return "validating"
	case StateSecuring:
		return "securing"
	case StatePolicyChecking:
		return "policy_checking"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

package luminair

import "github.com/luminair/luminair-core/internal/luminair/air"

// ErrorCode identifies the kind of failure a Prove/Verify call returns.
type ErrorCode = air.ErrorCode

// VerificationReason further categorizes an ErrVerificationFailed error.
type VerificationReason = air.VerificationReason

// Error is the error type every Prove/Verify call returns on failure. Use
// errors.Is against a sentinel of the same Code (and, for
// ErrVerificationFailed, the same Reason) to test error identity.
type Error = air.Error

const (
	// ErrUnknown is used only when no more specific code applies.
	ErrUnknown = air.ErrUnknown
	// ErrEmptyTrace: an operator's trace table has zero rows.
	ErrEmptyTrace = air.ErrEmptyTrace
	// ErrConstraintFailure: an arithmetic or transition constraint failed
	// during proving — indicates a bug in trace generation, fatal.
	ErrConstraintFailure = air.ErrConstraintFailure
	// ErrCommitmentError: the underlying commitment/channel primitive
	// failed, fatal.
	ErrCommitmentError = air.ErrCommitmentError
	// ErrVerificationFailed: a verifier-side check failed. Reason on the
	// wrapping error distinguishes which one.
	ErrVerificationFailed = air.ErrVerificationFailed
)

const (
	ReasonUnspecified     = air.ReasonUnspecified
	ReasonBadCommitment   = air.ReasonBadCommitment
	ReasonBadFRI          = air.ReasonBadFRI
	ReasonUnbalancedLogUp = air.ReasonUnbalancedLogUp
	ReasonClaimMismatch   = air.ReasonClaimMismatch
)

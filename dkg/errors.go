// Package dkg ties the domain partitioner, PVSS dealing/verification/
// aggregation, and threshold decryption packages together into a single
// per-session orchestration type, mirroring the role
// original_source/ferveo/src/dkg/common.rs's PubliclyVerifiableDkg plays
// for pvss.rs's free functions.
package dkg

import "errors"

// The error kinds below group the lower-level pvss/tdec sentinel errors
// into the caller-actionable categories spec §7 names; each wraps the
// concrete error that caused it so callers can still errors.Is against the
// specific failure.
var (
	// ErrInvalidDealing means a dealer's transcript failed verification;
	// the caller should discard it and continue with other dealers.
	ErrInvalidDealing = errors.New("dkg: dealer transcript failed verification")

	// ErrAggregateMismatch is fatal for the aggregate built from the
	// current dealer set; the caller should rebuild from a different
	// subset.
	ErrAggregateMismatch = errors.New("dkg: aggregate does not match its contributors")

	// ErrInsufficientWeight means the contributing dealer or decrypter set
	// does not yet exceed the session's security threshold (weight t+1 is
	// needed for a degree-t sharing).
	ErrInsufficientWeight = errors.New("dkg: contributing weight does not exceed security threshold")

	// ErrUnknownDealer means a transcript was supplied for a dealer index
	// outside the session's validator set.
	ErrUnknownDealer = errors.New("dkg: dealer index out of range")

	// ErrNoAggregate means Aggregate or VerifyAggregate was called before
	// any dealer transcripts were submitted.
	ErrNoAggregate = errors.New("dkg: no dealer transcripts submitted")
)

package pvss

import "errors"

var (
	// ErrWrongShareLength is returned when a transcript's per-validator share
	// count doesn't match that validator's assigned segment weight (spec §4.3
	// / §7 failure modes table).
	ErrWrongShareLength = errors.New("pvss: share count does not match validator weight")

	// ErrInvalidEncryption is returned when a validator's batched pairing
	// check e(g, y) == e(a, ek) fails — some share in that validator's
	// segment does not encrypt the committed polynomial evaluation under
	// the validator's encryption key.
	ErrInvalidEncryption = errors.New("pvss: share encryption check failed")

	// ErrInvalidSigma is returned when the dealer's proof of knowledge of
	// the secret, e(coeffs[0], h) == e(g, sigma), fails.
	ErrInvalidSigma = errors.New("pvss: proof of knowledge of secret failed")

	// ErrAggregateMismatch is returned when the sum of contributing
	// dealers' coeffs[0] does not equal the aggregate transcript's
	// coeffs[0].
	ErrAggregateMismatch = errors.New("pvss: aggregate coefficient sum does not match aggregate transcript")

	// ErrShareLengthMismatch is returned during aggregation when two
	// dealer transcripts being combined disagree on coefficient count or
	// a validator's share count.
	ErrShareLengthMismatch = errors.New("pvss: dealer transcripts disagree on share layout")

	// ErrEmptyDealerSet is returned when Aggregate or VerifyAggregate is
	// called with no contributing dealer transcripts.
	ErrEmptyDealerSet = errors.New("pvss: no dealer transcripts to aggregate")

	// ErrMissingDealerTranscript is returned when VerifyAggregate is asked
	// to check a dealer index that has no corresponding transcript.
	ErrMissingDealerTranscript = errors.New("pvss: missing transcript for dealer")

	// ErrUnknownValidator is returned when a transcript references a
	// validator index outside the partitioned validator set.
	ErrUnknownValidator = errors.New("pvss: validator index out of range")
)

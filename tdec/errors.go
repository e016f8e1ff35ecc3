// Package tdec implements threshold decryption share production (C6),
// combination (C7), and batch verification (C8) against a PVSS-derived
// group secret, per spec §4.5-§4.7.
package tdec

import "errors"

var (
	// ErrShareLambdaMismatch is returned when a combine call is given a
	// different number of shares than Lagrange coefficients.
	ErrShareLambdaMismatch = errors.New("tdec: share count does not match lambda count")

	// ErrUnknownDecrypter is returned when CombineFast is given a share
	// from a decrypter index absent from the prepared combine set.
	ErrUnknownDecrypter = errors.New("tdec: share references unknown decrypter")

	// ErrEmptyShareSet is returned when a combine or batch-verify call is
	// given no ciphertexts or no shares.
	ErrEmptyShareSet = errors.New("tdec: no shares to combine or verify")

	// ErrInconsistentMatrix is returned when BatchVerifyDecryptionShares's
	// ciphertext/share matrix rows disagree on length or decrypter
	// ordering.
	ErrInconsistentMatrix = errors.New("tdec: inconsistent ciphertext/share matrix shape")

	// ErrVerificationFailed is returned when the batched pairing-product
	// check fails: at least one decryption share in the batch is invalid.
	ErrVerificationFailed = errors.New("tdec: batch share verification failed")
)

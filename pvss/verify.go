package pvss

import (
	"crypto/cipher"
	"fmt"

	"github.com/drand/kyber"
	"github.com/drand/kyber/pairing"

	"github.com/dedis-pvss/ferveo-go/poly"
	"github.com/dedis-pvss/ferveo-go/validator"
)

// Verify checks a dealer's transcript against the partitioned validator set
// (spec §4.3, C4): every validator's encrypted shares must match the
// dealer's commitment under a random linear combination, and the dealer's
// sigma must be a valid proof of knowledge of coeffs[0]'s discrete log.
//
// rand supplies the per-validator challenge scalar alpha; a fresh,
// independently-sampled alpha is drawn for each validator so that a
// malicious dealer cannot precompute shares that pass a fixed combination
// (the original reference implementation fixed alpha to 1, which this
// deliberately does not reproduce — see DESIGN.md).
//
// If transcript.Commitment is empty (the common case for a freshly dealt,
// not-yet-aggregated transcript), it is derived from transcript.Coeffs
// before the validator checks run.
func Verify(suite pairing.Suite, pp PublicParams, t *Transcript, partitioned []validator.PartitionedValidator, domain *poly.Domain, rand cipher.Stream) error {
	if len(t.Shares) != len(partitioned) {
		return fmt.Errorf("%w: got %d validators, transcript has %d", ErrWrongShareLength, len(partitioned), len(t.Shares))
	}

	commitment := t.Commitment
	if len(commitment) == 0 {
		commitment = commitmentFromCoeffs(suite.G1(), domain, t.Coeffs)
	}

	fr := suite.G1() // scalar field is shared across G1/G2/GT

	for i, v := range partitioned {
		start, end := v.Segment()
		weight := int(end - start)
		if len(t.Shares[i]) != weight {
			return fmt.Errorf("%w: validator %d has %d shares, wants %d", ErrWrongShareLength, i, len(t.Shares[i]), weight)
		}

		alpha := nonzeroScalar(fr, rand)

		y := suite.G2().Point().Null()
		a := suite.G1().Point().Null()
		power := fr.Scalar().One()
		for j := 0; j < weight; j++ {
			y = suite.G2().Point().Add(y, suite.G2().Point().Mul(power, t.Shares[i][j]))
			a = suite.G1().Point().Add(a, suite.G1().Point().Mul(power, commitment[int(start)+j]))
			power = fr.Scalar().Mul(power, alpha)
		}

		lhs := suite.Pair(pp.G, y)
		rhs := suite.Pair(a, v.EncryptionKey)
		if !lhs.Equal(rhs) {
			return fmt.Errorf("%w: validator %d", ErrInvalidEncryption, i)
		}
	}

	lhs := suite.Pair(t.Coeffs[0], pp.H)
	rhs := suite.Pair(pp.G, t.Sigma)
	if !lhs.Equal(rhs) {
		return ErrInvalidSigma
	}

	return nil
}

// nonzeroScalar draws a uniformly random scalar from rand, resampling in
// the (probability ~0) event it lands on zero.
func nonzeroScalar(g kyber.Group, rand cipher.Stream) kyber.Scalar {
	for {
		s := g.Scalar().Pick(rand)
		if !s.Equal(g.Scalar().Zero()) {
			return s
		}
	}
}

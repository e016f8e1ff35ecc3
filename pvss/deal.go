package pvss

import (
	"crypto/cipher"

	"github.com/drand/kyber"
	"github.com/drand/kyber/pairing"

	"github.com/dedis-pvss/ferveo-go/poly"
	"github.com/dedis-pvss/ferveo-go/validator"
)

// Deal produces a fresh PVSS transcript for one dealer (spec §4.2, C3):
// sample a random degree-t polynomial with the given secret as its constant
// term, commit to its coefficients in G1, encrypt each validator's share
// evaluations under that validator's encryption key in G2, and attach a
// proof of knowledge of the secret.
//
// t is the security threshold (the dealt polynomial's degree); partitioned
// must already carry each validator's [ShareStart, ShareEnd) segment (see
// validator.Partition). Commitment is left empty; see Transcript's doc
// comment.
func Deal(suite pairing.Suite, pp PublicParams, t int, secret kyber.Scalar, partitioned []validator.PartitionedValidator, domain *poly.Domain, rand cipher.Stream) (*Transcript, error) {
	g1, g2 := suite.G1(), suite.G2()

	phi := poly.NewRandomPolynomial(g1, t, secret, rand)
	defer phi.Zeroize()

	evals := phi.EvaluateOverDomain(domain)

	coeffs := make([]kyber.Point, len(phi.Coeffs()))
	for i, c := range phi.Coeffs() {
		coeffs[i] = g1.Point().Mul(c, pp.G)
	}

	shares := make([][]kyber.Point, len(partitioned))
	for i, v := range partitioned {
		start, end := v.Segment()
		seg := make([]kyber.Point, 0, end-start)
		for j := start; j < end; j++ {
			seg = append(seg, g2.Point().Mul(evals[j], v.EncryptionKey))
		}
		shares[i] = seg
	}

	sigma := g2.Point().Mul(secret, pp.H)

	return &Transcript{
		Coeffs: coeffs,
		Shares: shares,
		Sigma:  sigma,
	}, nil
}

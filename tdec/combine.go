package tdec

import (
	"fmt"

	"github.com/drand/kyber"
	"github.com/drand/kyber/pairing"

	"github.com/dedis-pvss/ferveo-go/poly"
)

// LambdasForContributors computes the Lagrange-at-zero coefficients for a
// set of contributing validators' domain points, using the batch-inversion
// form (spec §4.6). Both combine variants take their lambdas from here.
func LambdasForContributors(g kyber.Group, domainPoints []kyber.Scalar) []kyber.Scalar {
	return poly.LagrangeCoefficientsAtZeroBatched(g, domainPoints)
}

// CombineSimple recovers K = prod_j C_j^{lambda_j} in GT from simple
// decryption shares (spec §4.6).
func CombineSimple(suite pairing.Suite, shares []DecryptionShareSimple, lambdas []kyber.Scalar) (kyber.Point, error) {
	if len(shares) == 0 {
		return nil, ErrEmptyShareSet
	}
	if len(shares) != len(lambdas) {
		return nil, fmt.Errorf("%w: %d shares, %d lambdas", ErrShareLambdaMismatch, len(shares), len(lambdas))
	}

	gt := suite.GT()
	k := gt.Point().Null()
	for i, sh := range shares {
		k = gt.Point().Add(k, gt.Point().Mul(lambdas[i], sh.Share))
	}
	return k, nil
}

// PrepareCombineFast precomputes, once per recipient set, the right-hand
// operand lambda_j * [b_j] Z_{j,omega_j} of each contributing validator's
// fast-combine pairing term, keyed by decrypter index (spec §4.6).
func PrepareCombineFast(suite pairing.Suite, contexts []PublicDecryptionContext, lambdas []kyber.Scalar) (map[uint32]kyber.Point, error) {
	if len(contexts) == 0 {
		return nil, ErrEmptyShareSet
	}
	if len(contexts) != len(lambdas) {
		return nil, fmt.Errorf("%w: %d contexts, %d lambdas", ErrShareLambdaMismatch, len(contexts), len(lambdas))
	}

	g2 := suite.G2()
	out := make(map[uint32]kyber.Point, len(contexts))
	for i, pc := range contexts {
		out[pc.Index] = g2.Point().Mul(lambdas[i], pc.BlindedKeyShare)
	}
	return out, nil
}

// CombineFast recovers K = prod_j e(D_j, lambda_j * [b_j] Z_{j,omega_j}) in
// GT from fast decryption shares and a PrepareCombineFast result (spec
// §4.6). Each pairing is computed individually and accumulated, since
// kyber's pairing.Suite exposes no multi-pairing primitive beyond
// successive Pair calls.
func CombineFast(suite pairing.Suite, shares []DecryptionShareFast, prepared map[uint32]kyber.Point) (kyber.Point, error) {
	if len(shares) == 0 {
		return nil, ErrEmptyShareSet
	}

	gt := suite.GT()
	k := gt.Point().Null()
	for _, sh := range shares {
		p, ok := prepared[sh.DecrypterIndex]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownDecrypter, sh.DecrypterIndex)
		}
		k = gt.Point().Add(k, suite.Pair(sh.Share, p))
	}
	return k, nil
}

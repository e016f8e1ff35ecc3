package tdec

import (
	"crypto/cipher"

	"github.com/drand/kyber"
	"github.com/drand/kyber/pairing"
)

// PublicDecryptionContext is the public half of a validator's decryption
// setup, known to every peer (spec §3).
type PublicDecryptionContext struct {
	Index uint32
	// Domain is the ω_j domain point representing this validator's
	// segment; LambdasForContributors derives the Lagrange coefficients
	// of both combine variants from it.
	Domain kyber.Scalar
	// BlindedKeyShare is [b_i] Z_i in G2, used by PrepareCombineFast.
	BlindedKeyShare kyber.Point
	// BlindingKey is [b_i] h in G2, the verification key BatchVerifyDecryptionShares
	// pairs each decrypter's combined share against.
	BlindingKey kyber.Point
	// LagrangeN0 is this validator's contribution to N(0) = prod ω_j, the
	// sign-adjusted multiplier the SubproductDomain-optimized Lagrange
	// formula factors out (spec §4.6). Computed once per session and
	// carried for shape fidelity; the lambdas CombineSimple and
	// PrepareCombineFast take come from LambdasForContributors
	// (poly.LagrangeCoefficientsAtZeroBatched), not from this value.
	LagrangeN0 kyber.Scalar
}

// PrivateDecryptionContext is a single validator's decryption state for the
// lifetime of a DKG session's key (spec §3).
type PrivateDecryptionContext struct {
	Index uint32
	Setup SetupParams
	// B, BInv are this validator's private blinding scalar and its inverse.
	B, BInv kyber.Scalar
	// PrivateKeyShare is Z_i in G2, this validator's unblinded share of the
	// group secret key.
	PrivateKeyShare kyber.Point
	Peers           []PublicDecryptionContext
}

// DerivePrivateKeyShare recovers a validator's unblinded key share from the
// PVSS shares dealt to it: each share_j = ek_i^{eval_j} = h^{sk_i * eval_j},
// so raising by sk_i^{-1} yields h^{eval_j}; summing over the validator's
// segment folds its whole weighted allocation into one G2 point (spec §3's
// singular `private_key_share ∈ G2` per validator context).
func DerivePrivateKeyShare(suite pairing.Suite, sk kyber.Scalar, segmentShares []kyber.Point) kyber.Point {
	skInv := suite.G1().Scalar().Inv(sk)
	z := suite.G2().Point().Null()
	for _, s := range segmentShares {
		z = suite.G2().Point().Add(z, suite.G2().Point().Mul(skInv, s))
	}
	return z
}

// NewDecryptionContext builds the private and public decryption contexts
// for one validator: it derives the unblinded key share from that
// validator's segment of an aggregate PVSS transcript, then samples a fresh
// blinding factor b and computes the blinded key share and blinding key the
// fast combine and batch-verify paths need.
func NewDecryptionContext(suite pairing.Suite, setup SetupParams, index uint32, sk kyber.Scalar, segmentShares []kyber.Point, domain kyber.Scalar, lagrangeN0 kyber.Scalar, rand cipher.Stream) (*PrivateDecryptionContext, PublicDecryptionContext) {
	z := DerivePrivateKeyShare(suite, sk, segmentShares)

	fr := suite.G1()
	b := fr.Scalar().Pick(rand)
	for b.Equal(fr.Scalar().Zero()) {
		b = fr.Scalar().Pick(rand)
	}
	bInv := fr.Scalar().Inv(b)

	blindedKeyShare := suite.G2().Point().Mul(b, z)
	blindingKey := suite.G2().Point().Mul(b, setup.H)

	priv := &PrivateDecryptionContext{
		Index:           index,
		Setup:           setup,
		B:               b,
		BInv:            bInv,
		PrivateKeyShare: z,
	}
	pub := PublicDecryptionContext{
		Index:           index,
		Domain:          domain,
		BlindedKeyShare: blindedKeyShare,
		BlindingKey:     blindingKey,
		LagrangeN0:      lagrangeN0,
	}
	return priv, pub
}

package tdec

import (
	"github.com/drand/kyber"
	"github.com/drand/kyber/pairing"
)

// Ciphertext is the external shape a decryption share is produced against:
// a G1 commitment U, plus an opaque remainder owned by the symmetric-key
// wrapping layer (out of scope here; spec §4 Non-goals).
type Ciphertext struct {
	Commitment kyber.Point
	Aux        []byte
}

// DecryptionShareFast is one validator's fast-variant decryption share:
// [b_i^{-1}] U in G1 (spec §3, §4.5).
type DecryptionShareFast struct {
	DecrypterIndex uint32
	Share          kyber.Point
}

// DecryptionShareSimple is one validator's simple-variant decryption share:
// e(U, Z_i) in GT (spec §3, §4.5).
type DecryptionShareSimple struct {
	DecrypterIndex uint32
	Share          kyber.Point
}

// CreateShareFast produces a fast decryption share by scaling the
// ciphertext's commitment by this validator's inverse blinding factor. The
// pairing work is deferred to CombineFast (spec §4.5).
func CreateShareFast(suite pairing.Suite, ctx *PrivateDecryptionContext, ct Ciphertext) DecryptionShareFast {
	share := suite.G1().Point().Mul(ctx.BInv, ct.Commitment)
	return DecryptionShareFast{DecrypterIndex: ctx.Index, Share: share}
}

// CreateShareSimple produces a simple decryption share by pairing the
// ciphertext's commitment directly with this validator's unblinded private
// key share (spec §4.5).
func CreateShareSimple(suite pairing.Suite, ctx *PrivateDecryptionContext, ct Ciphertext) DecryptionShareSimple {
	share := suite.Pair(ct.Commitment, ctx.PrivateKeyShare)
	return DecryptionShareSimple{DecrypterIndex: ctx.Index, Share: share}
}

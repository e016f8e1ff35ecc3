package tdec

import (
	"github.com/drand/kyber"
	"github.com/drand/kyber/pairing"
)

// SetupParams are the session-wide group elements every decryption context
// shares: the G1/G2 generators and their negations, precomputed once so
// combine and batch-verify never re-derive them (spec §3's
// `setup_params = {b, b_inv, g, g_inv, h, h_inv}`; b/b_inv are per-validator
// and live on PrivateDecryptionContext instead, since they are a secret).
type SetupParams struct {
	G, GInv kyber.Point
	H, HInv kyber.Point
}

// NewSetupParams builds SetupParams from a pairing suite's standard base
// points.
func NewSetupParams(suite pairing.Suite) SetupParams {
	g := suite.G1().Point().Base()
	h := suite.G2().Point().Base()
	return SetupParams{
		G:    g,
		GInv: suite.G1().Point().Neg(g),
		H:    h,
		HInv: suite.G2().Point().Neg(h),
	}
}

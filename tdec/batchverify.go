package tdec

import (
	"crypto/cipher"
	"fmt"

	"github.com/drand/kyber"
	"github.com/drand/kyber/pairing"
)

// BatchVerifyDecryptionShares checks an m-ciphertext by n-decrypter matrix
// of fast decryption shares with n+1 pairings (one per decrypter plus one
// for the combined commitment), accumulated in GT, instead of one pairing
// per (ciphertext, decrypter) pair (spec §4.7). shares[i][j] must be
// decrypter j's share on ciphertext i, with every row using the same
// decrypter ordering as shares[0]. contexts must be keyed by decrypter
// index and carry each decrypter's BlindingKey.
func BatchVerifyDecryptionShares(suite pairing.Suite, setup SetupParams, ciphertexts []Ciphertext, shares [][]DecryptionShareFast, contexts map[uint32]PublicDecryptionContext, rand cipher.Stream) error {
	m := len(ciphertexts)
	if m == 0 {
		return ErrEmptyShareSet
	}
	if len(shares) != m {
		return fmt.Errorf("%w: %d ciphertexts, %d share rows", ErrInconsistentMatrix, m, len(shares))
	}
	n := len(shares[0])
	if n == 0 {
		return ErrEmptyShareSet
	}
	decrypterIndices := make([]uint32, n)
	for j, sh := range shares[0] {
		decrypterIndices[j] = sh.DecrypterIndex
	}
	for i, row := range shares {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d shares, want %d", ErrInconsistentMatrix, i, len(row), n)
		}
		for j, sh := range row {
			if sh.DecrypterIndex != decrypterIndices[j] {
				return fmt.Errorf("%w: row %d column %d decrypter %d, want %d", ErrInconsistentMatrix, i, j, sh.DecrypterIndex, decrypterIndices[j])
			}
		}
	}

	fr := suite.G1()
	alphas := make([][]kyber.Scalar, m)
	for i := range alphas {
		alphas[i] = make([]kyber.Scalar, n)
		for j := range alphas[i] {
			alphas[i][j] = fr.Scalar().Pick(rand)
		}
	}

	g1 := suite.G1()
	uStar := g1.Point().Null()
	for i, ct := range ciphertexts {
		sigmaI := fr.Scalar().Zero()
		for j := 0; j < n; j++ {
			sigmaI = fr.Scalar().Add(sigmaI, alphas[i][j])
		}
		uStar = g1.Point().Add(uStar, g1.Point().Mul(sigmaI, ct.Commitment))
	}

	dStars := make([]kyber.Point, n)
	for j := 0; j < n; j++ {
		d := g1.Point().Null()
		for i := 0; i < m; i++ {
			d = g1.Point().Add(d, g1.Point().Mul(alphas[i][j], shares[i][j].Share))
		}
		dStars[j] = d
	}

	gt := suite.GT()
	acc := suite.Pair(uStar, setup.HInv)
	for j, idx := range decrypterIndices {
		pc, ok := contexts[idx]
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownDecrypter, idx)
		}
		acc = gt.Point().Add(acc, suite.Pair(dStars[j], pc.BlindingKey))
	}

	if !acc.Equal(gt.Point().Null()) {
		return ErrVerificationFailed
	}
	return nil
}

package tdec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/drand/kyber"
	bls12381 "github.com/drand/kyber-bls12381"
	"github.com/drand/kyber/util/random"

	"github.com/dedis-pvss/ferveo-go/poly"
	"github.com/dedis-pvss/ferveo-go/pvss"
	"github.com/dedis-pvss/ferveo-go/validator"
)

// TestCombineFastAndSimpleRecoverSecret uses weight-1 validators, so each
// validator's segment collapses to exactly one domain point — the case
// spec §3 describes as the "single representative" domain point per
// validator context. Under that condition both combine variants must
// recover exactly K = e(g,h)^s.
func TestCombineFastAndSimpleRecoverSecret(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g1, g2 := suite.G1(), suite.G2()
	pp := pvss.NewPublicParams(g1, g2)
	setup := NewSetupParams(suite)
	rng := random.New()

	domain, err := poly.NewBLS12381Domain(g1, 4)
	require.NoError(t, err)

	n := 3
	validators := make([]validator.PartitionedValidator, n)
	sks := make([]kyber.Scalar, n)
	for i := 0; i < n; i++ {
		sk := g1.Scalar().Pick(rng)
		sks[i] = sk
		validators[i] = validator.PartitionedValidator{
			Validator: validator.Validator{
				Address:       "v",
				VotingPower:   1,
				EncryptionKey: g2.Point().Mul(sk, pp.H),
			},
			Weight:     1,
			ShareStart: uint64(i),
			ShareEnd:   uint64(i + 1),
		}
	}

	secret := g1.Scalar().Pick(rng)
	transcript, err := pvss.Deal(suite, pp, 2, secret, validators, domain, rng)
	require.NoError(t, err)
	require.NoError(t, pvss.Verify(suite, pp, transcript, validators, domain, rng))

	privs := make([]*PrivateDecryptionContext, n)
	pubs := make([]PublicDecryptionContext, n)
	n0 := fullDomainProduct(g1, domain)
	for i := range validators {
		repr := domain.At(int(validators[i].ShareStart))
		privs[i], pubs[i] = NewDecryptionContext(suite, setup, uint32(i), sks[i], transcript.Shares[i], repr, n0, rng)
	}

	// U = g, the commitment to randomness r=1: each share pairs U against
	// phi(omega_i)'s unblinded key share, so combining recovers
	// e(g,h)^{sum lambda_i phi(omega_i)} = e(g,h)^{phi(0)} = e(g,h)^s exactly
	// (spec §8 Scenario D). Using TranscriptConstantTerm (= [s]g) here
	// instead would recover e(g,h)^{s^2}, not e(g,h)^s.
	ciphertext := Ciphertext{Commitment: pp.G}

	domainPoints := make([]kyber.Scalar, n)
	for i, p := range pubs {
		domainPoints[i] = p.Domain
	}
	lambdas := LambdasForContributors(g1, domainPoints)

	simpleShares := make([]DecryptionShareSimple, n)
	fastShares := make([]DecryptionShareFast, n)
	for i := range privs {
		simpleShares[i] = CreateShareSimple(suite, privs[i], ciphertext)
		fastShares[i] = CreateShareFast(suite, privs[i], ciphertext)
	}

	kSimple, err := CombineSimple(suite, simpleShares, lambdas)
	require.NoError(t, err)

	prepared, err := PrepareCombineFast(suite, pubs, lambdas)
	require.NoError(t, err)
	kFast, err := CombineFast(suite, fastShares, prepared)
	require.NoError(t, err)

	require.True(t, kSimple.Equal(kFast))

	want := suite.GT().Point().Mul(secret, suite.Pair(pp.G, pp.H))
	require.True(t, want.Equal(kSimple))
}

// TestCombineFastAndSimpleAgreeForWeightedValidators checks the weaker
// mutual-consistency invariant for weight>1 validators: both variants
// derive their per-validator key material from the same folded Z_i, so
// they must still agree with each other even though, with more than one
// share per validator folded into a single representative point, neither
// is claimed to recover e(g,h)^s exactly (see DESIGN.md).
func TestCombineFastAndSimpleAgreeForWeightedValidators(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g1, g2 := suite.G1(), suite.G2()
	pp := pvss.NewPublicParams(g1, g2)
	setup := NewSetupParams(suite)
	rng := random.New()

	domain, err := poly.NewBLS12381Domain(g1, 8)
	require.NoError(t, err)

	n := 4
	validators := make([]validator.PartitionedValidator, n)
	sks := make([]kyber.Scalar, n)
	for i := 0; i < n; i++ {
		sk := g1.Scalar().Pick(rng)
		sks[i] = sk
		validators[i] = validator.PartitionedValidator{
			Validator: validator.Validator{
				Address:       "v",
				VotingPower:   1,
				EncryptionKey: g2.Point().Mul(sk, pp.H),
			},
			Weight:     2,
			ShareStart: uint64(i * 2),
			ShareEnd:   uint64(i*2 + 2),
		}
	}

	secret := g1.Scalar().Pick(rng)
	transcript, err := pvss.Deal(suite, pp, 2, secret, validators, domain, rng)
	require.NoError(t, err)

	privs := make([]*PrivateDecryptionContext, n)
	pubs := make([]PublicDecryptionContext, n)
	n0 := fullDomainProduct(g1, domain)
	for i := range validators {
		repr := domain.At(int(validators[i].ShareStart))
		privs[i], pubs[i] = NewDecryptionContext(suite, setup, uint32(i), sks[i], transcript.Shares[i], repr, n0, rng)
	}

	ct := pvss.TranscriptConstantTerm(transcript)
	ciphertext := Ciphertext{Commitment: ct}

	domainPoints := make([]kyber.Scalar, n)
	for i, p := range pubs {
		domainPoints[i] = p.Domain
	}
	lambdas := LambdasForContributors(g1, domainPoints)

	simpleShares := make([]DecryptionShareSimple, n)
	fastShares := make([]DecryptionShareFast, n)
	for i := range privs {
		simpleShares[i] = CreateShareSimple(suite, privs[i], ciphertext)
		fastShares[i] = CreateShareFast(suite, privs[i], ciphertext)
	}

	kSimple, err := CombineSimple(suite, simpleShares, lambdas)
	require.NoError(t, err)
	prepared, err := PrepareCombineFast(suite, pubs, lambdas)
	require.NoError(t, err)
	kFast, err := CombineFast(suite, fastShares, prepared)
	require.NoError(t, err)

	require.True(t, kSimple.Equal(kFast))
}

func TestBatchVerifyDecryptionShares(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g1, g2 := suite.G1(), suite.G2()
	pp := pvss.NewPublicParams(g1, g2)
	setup := NewSetupParams(suite)
	rng := random.New()

	domain, err := poly.NewBLS12381Domain(g1, 4)
	require.NoError(t, err)

	n := 3
	validators := make([]validator.PartitionedValidator, n)
	sks := make([]kyber.Scalar, n)
	for i := 0; i < n; i++ {
		sk := g1.Scalar().Pick(rng)
		sks[i] = sk
		validators[i] = validator.PartitionedValidator{
			Validator: validator.Validator{
				Address:       "v",
				VotingPower:   1,
				EncryptionKey: g2.Point().Mul(sk, pp.H),
			},
			Weight:     1,
			ShareStart: uint64(i),
			ShareEnd:   uint64(i + 1),
		}
	}

	privs := make([]*PrivateDecryptionContext, n)
	contextsByIndex := make(map[uint32]PublicDecryptionContext, n)
	n0 := fullDomainProduct(g1, domain)

	const numCiphertexts = 2
	secrets := make([]kyber.Scalar, numCiphertexts)
	transcripts := make([]*pvss.Transcript, numCiphertexts)
	for c := 0; c < numCiphertexts; c++ {
		secrets[c] = g1.Scalar().Pick(rng)
		tr, err := pvss.Deal(suite, pp, 2, secrets[c], validators, domain, rng)
		require.NoError(t, err)
		transcripts[c] = tr
	}

	for i := range validators {
		repr := domain.At(int(validators[i].ShareStart))
		segmentShares := make([][]kyber.Point, numCiphertexts)
		for c := range transcripts {
			segmentShares[c] = transcripts[c].Shares[i]
		}
		// The two deals give each validator different key shares, but the
		// batch check only constrains the blinding factor b, so one context
		// derived from the first transcript serves both ciphertexts.
		privs[i], contextsByIndex[uint32(i)] = NewDecryptionContext(suite, setup, uint32(i), sks[i], segmentShares[0], repr, n0, rng)
	}

	ciphertexts := make([]Ciphertext, numCiphertexts)
	shareMatrix := make([][]DecryptionShareFast, numCiphertexts)
	for c := 0; c < numCiphertexts; c++ {
		ciphertexts[c] = Ciphertext{Commitment: pvss.TranscriptConstantTerm(transcripts[c])}
		row := make([]DecryptionShareFast, n)
		for i := range privs {
			row[i] = CreateShareFast(suite, privs[i], ciphertexts[c])
		}
		shareMatrix[c] = row
	}

	require.NoError(t, BatchVerifyDecryptionShares(suite, setup, ciphertexts, shareMatrix, contextsByIndex, rng))

	// Tamper with a single share in the batch; verification must fail.
	shareMatrix[0][0].Share = g1.Point().Mul(g1.Scalar().Pick(rng), pp.G)
	err = BatchVerifyDecryptionShares(suite, setup, ciphertexts, shareMatrix, contextsByIndex, rng)
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func fullDomainProduct(g kyber.Group, d *poly.Domain) kyber.Scalar {
	p := g.Scalar().One()
	for _, x := range d.Points() {
		p = g.Scalar().Mul(p, x)
	}
	return p
}

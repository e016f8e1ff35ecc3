package dkg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/drand/kyber"
	bls12381 "github.com/drand/kyber-bls12381"
	"github.com/drand/kyber/util/random"

	"github.com/dedis-pvss/ferveo-go/pvss"
	"github.com/dedis-pvss/ferveo-go/validator"
)

func TestSessionDealSubmitAggregateVerify(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g1, g2 := suite.G1(), suite.G2()
	rng := random.New()

	n := 4
	sks := make([]kyber.Scalar, n)
	validators := make([]validator.Validator, n)
	for i := 0; i < n; i++ {
		sk := g1.Scalar().Pick(rng)
		sks[i] = sk
		validators[i] = validator.Validator{
			Address:       string(rune('a' + i)),
			VotingPower:   1,
			EncryptionKey: g2.Point().Mul(sk, nil),
		}
	}
	vs := validator.ValidatorSet{Validators: validators}

	params := pvss.Params{Tau: 1, TotalWeight: 8, SecurityThreshold: 2}
	session, err := NewSession(suite, params, vs)
	require.NoError(t, err)
	require.Len(t, session.Validators, n)
	require.Equal(t, uint32(8), session.Validators[0].Weight+session.Validators[1].Weight+session.Validators[2].Weight+session.Validators[3].Weight)

	s1 := g1.Scalar().Pick(rng)
	s2 := g1.Scalar().Pick(rng)

	t1, err := session.Deal(s1, rng)
	require.NoError(t, err)
	t2, err := session.Deal(s2, rng)
	require.NoError(t, err)

	require.NoError(t, session.Submit(0, t1, rng))
	require.NoError(t, session.Submit(1, t2, rng))
	require.Len(t, session.Transcripts, 2)

	agg, err := session.Aggregate()
	require.NoError(t, err)

	want := g1.Point().Add(g1.Point().Mul(s1, session.PP.G), g1.Point().Mul(s2, session.PP.G))
	require.True(t, want.Equal(pvss.TranscriptConstantTerm(agg)))

	weight, err := session.VerifyAggregate(agg, rng)
	require.NoError(t, err)
	require.Equal(t, session.Validators[0].Weight+session.Validators[1].Weight, weight)
}

func TestSessionSubmitRejectsTamperedTranscript(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g1, g2 := suite.G1(), suite.G2()
	rng := random.New()

	n := 4
	validators := make([]validator.Validator, n)
	for i := 0; i < n; i++ {
		sk := g1.Scalar().Pick(rng)
		validators[i] = validator.Validator{
			Address:       string(rune('a' + i)),
			VotingPower:   1,
			EncryptionKey: g2.Point().Mul(sk, nil),
		}
	}
	vs := validator.ValidatorSet{Validators: validators}

	params := pvss.Params{Tau: 1, TotalWeight: 8, SecurityThreshold: 2}
	session, err := NewSession(suite, params, vs)
	require.NoError(t, err)

	transcript, err := session.Deal(g1.Scalar().Pick(rng), rng)
	require.NoError(t, err)
	transcript.Shares[0][0] = g2.Point().Mul(g2.Scalar().Pick(rng), nil)

	err = session.Submit(0, transcript, rng)
	require.ErrorIs(t, err, ErrInvalidDealing)
	require.Empty(t, session.Transcripts)
}

func TestSessionVerifyAggregateRejectsInsufficientWeight(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g1, g2 := suite.G1(), suite.G2()
	rng := random.New()

	n := 4
	validators := make([]validator.Validator, n)
	for i := 0; i < n; i++ {
		sk := g1.Scalar().Pick(rng)
		validators[i] = validator.Validator{
			Address:       string(rune('a' + i)),
			VotingPower:   1,
			EncryptionKey: g2.Point().Mul(sk, nil),
		}
	}
	vs := validator.ValidatorSet{Validators: validators}

	// security_threshold=6 requires weight 7 to pass VerifyAggregate, but
	// only one dealer (weight 2) is ever submitted.
	params := pvss.Params{Tau: 1, TotalWeight: 8, SecurityThreshold: 6}
	session, err := NewSession(suite, params, vs)
	require.NoError(t, err)

	transcript, err := session.Deal(g1.Scalar().Pick(rng), rng)
	require.NoError(t, err)
	require.NoError(t, session.Submit(0, transcript, rng))

	agg, err := session.Aggregate()
	require.NoError(t, err)

	_, err = session.VerifyAggregate(agg, rng)
	require.ErrorIs(t, err, ErrInsufficientWeight)
}

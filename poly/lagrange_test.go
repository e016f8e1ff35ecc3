package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/drand/kyber"
	bls12381 "github.com/drand/kyber-bls12381"
)

func TestLagrangeBatchedMatchesNaive(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g := suite.G1()

	d, err := NewBLS12381Domain(g, 8)
	require.NoError(t, err)
	xs := d.Points()[:5]

	naive := LagrangeCoefficientsAtZero(g, xs)
	batched := LagrangeCoefficientsAtZeroBatched(g, xs)

	require.Len(t, batched, len(naive))
	for i := range naive {
		require.Truef(t, naive[i].Equal(batched[i]), "lagrange coefficient %d mismatch", i)
	}
}

func TestLagrangeInterpolationRecoversSecret(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g := suite.G1()

	secret := g.Scalar().SetInt64(424242)
	p := NewPolynomial(g, []kyber.Scalar{secret, g.Scalar().SetInt64(17), g.Scalar().SetInt64(9)})

	d, err := NewBLS12381Domain(g, 8)
	require.NoError(t, err)
	xs := d.Points()[:3] // threshold = degree+1 = 3 points

	ys := make([]kyber.Scalar, len(xs))
	for i, x := range xs {
		ys[i] = p.Eval(x)
	}

	lambdas := LagrangeCoefficientsAtZero(g, xs)
	recovered := g.Scalar().Zero()
	for i := range ys {
		term := g.Scalar().Mul(ys[i], lambdas[i])
		recovered = g.Scalar().Add(recovered, term)
	}

	require.True(t, secret.Equal(recovered))
}

func TestBatchInvert(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g := suite.G1()

	vals := []kyber.Scalar{
		g.Scalar().SetInt64(2),
		g.Scalar().SetInt64(3),
		g.Scalar().SetInt64(7),
	}
	inverses := BatchInvert(g, vals)
	one := g.Scalar().One()
	for i, v := range vals {
		product := g.Scalar().Mul(v, inverses[i])
		require.True(t, one.Equal(product))
	}
}

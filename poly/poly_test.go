package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/drand/kyber"
	bls12381 "github.com/drand/kyber-bls12381"
	"github.com/drand/kyber/util/random"
)

func TestPolynomialEvalMatchesExplicitHorner(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g := suite.G1()

	c0 := g.Scalar().SetInt64(3)
	c1 := g.Scalar().SetInt64(5)
	c2 := g.Scalar().SetInt64(7)
	p := NewPolynomial(g, []kyber.Scalar{c0, c1, c2})

	x := g.Scalar().SetInt64(2)
	got := p.Eval(x)

	// 3 + 5*2 + 7*4 = 41
	want := g.Scalar().SetInt64(41)
	require.True(t, want.Equal(got))
}

func TestEvaluateOverDomainMatchesDirectEval(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g := suite.G1()

	secret := g.Scalar().Pick(random.New())
	p := NewRandomPolynomial(g, 5, secret, random.New())

	d, err := NewBLS12381Domain(g, 8)
	require.NoError(t, err)

	evals := p.EvaluateOverDomain(d)
	require.Len(t, evals, 8)

	for j, x := range d.Points() {
		want := p.Eval(x)
		require.Truef(t, want.Equal(evals[j]), "mismatch at domain index %d", j)
	}
}

func TestRandomPolynomialSecretIsConstantTerm(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g := suite.G1()
	secret := g.Scalar().Pick(random.New())
	p := NewRandomPolynomial(g, 3, secret, random.New())
	require.True(t, secret.Equal(p.Secret()))
	require.True(t, secret.Equal(p.Eval(g.Scalar().Zero())))
}

func TestZeroizeClearsCoefficients(t *testing.T) {
	suite := bls12381.NewBLS12381Suite()
	g := suite.G1()
	secret := g.Scalar().Pick(random.New())
	p := NewRandomPolynomial(g, 3, secret, random.New())
	p.Zeroize()
	zero := g.Scalar().Zero()
	for _, c := range p.Coeffs() {
		require.True(t, zero.Equal(c))
	}
}

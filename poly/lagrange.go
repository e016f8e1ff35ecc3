package poly

import "github.com/drand/kyber"

// LagrangeCoefficientsAtZero computes, for each x_j in xs, the Lagrange
// coefficient lambda_j = prod_{m != j} (x_m - 0) / (x_m - x_j) — the weight
// needed to combine f(x_j) values into f(0) (spec §4.6). This is the naive
// O(n^2) formula from original_source/tpke/src/combine.rs's
// lagrange_basis_at, suitable as a correctness oracle for
// LagrangeCoefficientsAtZeroBatched.
func LagrangeCoefficientsAtZero(g kyber.Group, xs []kyber.Scalar) []kyber.Scalar {
	n := len(xs)
	out := make([]kyber.Scalar, n)
	for j := 0; j < n; j++ {
		prod := g.Scalar().One()
		for m := 0; m < n; m++ {
			if m == j {
				continue
			}
			num := xs[m].Clone()
			den := g.Scalar().Sub(xs[m], xs[j])
			term := g.Scalar().Div(num, den)
			prod = g.Scalar().Mul(prod, term)
		}
		out[j] = prod
	}
	return out
}

// LagrangeCoefficientsAtZeroBatched computes the same coefficients as
// LagrangeCoefficientsAtZero, but with a single batch inversion instead of
// one division per (j, m) pair — the optimization spec §4.6 describes as
// "a SubproductDomain and a single batch inversion". It MUST produce
// identical scalars to the naive form (spec §4.6); see lagrange_test.go.
func LagrangeCoefficientsAtZeroBatched(g kyber.Group, xs []kyber.Scalar) []kyber.Scalar {
	n := len(xs)

	// numerators[j] = prod_{m != j} x_m
	numerators := make([]kyber.Scalar, n)
	for j := 0; j < n; j++ {
		p := g.Scalar().One()
		for m := 0; m < n; m++ {
			if m != j {
				p = g.Scalar().Mul(p, xs[m])
			}
		}
		numerators[j] = p
	}

	// denominators[j] = prod_{m != j} (x_m - x_j)
	denominators := make([]kyber.Scalar, n)
	for j := 0; j < n; j++ {
		p := g.Scalar().One()
		for m := 0; m < n; m++ {
			if m != j {
				p = g.Scalar().Mul(p, g.Scalar().Sub(xs[m], xs[j]))
			}
		}
		denominators[j] = p
	}

	invDenominators := BatchInvert(g, denominators)

	out := make([]kyber.Scalar, n)
	for j := 0; j < n; j++ {
		out[j] = g.Scalar().Mul(numerators[j], invDenominators[j])
	}
	return out
}

// BatchInvert inverts every element of vals using Montgomery's trick: one
// chain of products, a single field inversion, then a walk back that
// recovers each individual inverse. This is the "single batch inversion"
// spec §4.6 and §6 call for (the ark_ff::batch_inversion_and_mul equivalent
// from original_source/tpke/src/combine.rs).
func BatchInvert(g kyber.Group, vals []kyber.Scalar) []kyber.Scalar {
	n := len(vals)
	if n == 0 {
		return nil
	}

	prefix := make([]kyber.Scalar, n)
	acc := g.Scalar().One()
	for i, v := range vals {
		prefix[i] = acc.Clone()
		acc = g.Scalar().Mul(acc, v)
	}

	inv := g.Scalar().Inv(acc)

	out := make([]kyber.Scalar, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = g.Scalar().Mul(inv, prefix[i])
		inv = g.Scalar().Mul(inv, vals[i])
	}
	return out
}

package pvss

import (
	"github.com/drand/kyber"

	"github.com/dedis-pvss/ferveo-go/poly"
)

// commitmentFromCoeffs evaluates the committed polynomial coeffs[k] = g^phi_k
// at every point of domain, entirely in the exponent, via Horner's method.
//
// poly.fft evaluates a coefficient vector over a domain using only the
// field's Add/Sub/Mul, which kyber.Point does not expose (point arithmetic
// is Add/Neg plus scalar Mul, not a ring); a second FFT implementation
// specialized to group elements would duplicate that logic for no library
// grounding, so this is the straightforward O(domain size * degree)
// multiexponentiation instead (spec §4.6 only mandates the batch-inversion
// optimization for Lagrange coefficients, not for this commitment step).
func commitmentFromCoeffs(g kyber.Group, domain *poly.Domain, coeffs []kyber.Point) []kyber.Point {
	out := make([]kyber.Point, domain.Size())
	for j, x := range domain.Points() {
		acc := coeffs[len(coeffs)-1].Clone()
		for k := len(coeffs) - 2; k >= 0; k-- {
			acc = g.Point().Mul(x, acc)
			acc = g.Point().Add(acc, coeffs[k])
		}
		out[j] = acc
	}
	return out
}

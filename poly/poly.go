package poly

import (
	"crypto/cipher"

	"github.com/drand/kyber"
)

// Polynomial is a dense polynomial over a kyber.Group's scalar field,
// coeffs[i] being the coefficient of x^i.
type Polynomial struct {
	group  kyber.Group
	coeffs []kyber.Scalar
}

// NewRandomPolynomial samples a degree-t polynomial with uniformly random
// coefficients from rand, then overwrites its constant term with secret.
// This mirrors spec §4.2 step 1: "Sample phi of degree t uniformly at
// random, then overwrite phi_0 <- s".
func NewRandomPolynomial(g kyber.Group, t int, secret kyber.Scalar, rand cipher.Stream) *Polynomial {
	coeffs := make([]kyber.Scalar, t+1)
	for i := range coeffs {
		coeffs[i] = g.Scalar().Pick(rand)
	}
	coeffs[0] = secret.Clone()
	return &Polynomial{group: g, coeffs: coeffs}
}

// NewPolynomial wraps an explicit coefficient vector, coeffs[0] first.
func NewPolynomial(g kyber.Group, coeffs []kyber.Scalar) *Polynomial {
	out := make([]kyber.Scalar, len(coeffs))
	for i, c := range coeffs {
		out[i] = c.Clone()
	}
	return &Polynomial{group: g, coeffs: out}
}

// Degree returns the polynomial's degree.
func (p *Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coeffs returns the polynomial's coefficients, constant term first. The
// returned slice is shared and MUST NOT be mutated by callers.
func (p *Polynomial) Coeffs() []kyber.Scalar { return p.coeffs }

// Secret returns phi(0), the constant coefficient.
func (p *Polynomial) Secret() kyber.Scalar { return p.coeffs[0].Clone() }

// Eval evaluates the polynomial at x via Horner's method.
func (p *Polynomial) Eval(x kyber.Scalar) kyber.Scalar {
	acc := p.group.Scalar().Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = p.group.Scalar().Mul(acc, x)
		acc = p.group.Scalar().Add(acc, p.coeffs[i])
	}
	return acc
}

// EvaluateOverDomain evaluates the polynomial at every point of d via FFT,
// returning a slice of length d.Size(). This is spec §4.2 step 2:
// "evals = phi.evaluate_over_domain(domain)".
func (p *Polynomial) EvaluateOverDomain(d *Domain) []kyber.Scalar {
	padded := make([]kyber.Scalar, d.Size())
	for i := range padded {
		if i < len(p.coeffs) {
			padded[i] = p.coeffs[i].Clone()
		} else {
			padded[i] = p.group.Scalar().Zero()
		}
	}
	return fft(padded, d.Generator(), p.group)
}

// EvaluateCoeffsOverDomain is the free-function form of EvaluateOverDomain,
// used by aggregation (spec §4.4) which only has a raw coefficient slice
// (the sum of several dealers' commitments) and no single Polynomial value.
func EvaluateCoeffsOverDomain(g kyber.Group, coeffs []kyber.Scalar, d *Domain) []kyber.Scalar {
	padded := make([]kyber.Scalar, d.Size())
	for i := range padded {
		if i < len(coeffs) {
			padded[i] = coeffs[i].Clone()
		} else {
			padded[i] = g.Scalar().Zero()
		}
	}
	return fft(padded, d.Generator(), g)
}

// Zeroize overwrites every coefficient (including the shared secret) with
// the additive identity. Spec §5 requires every secret scalar to be held for
// the minimum time necessary; this resolves the original implementation's
// open "//phi.zeroize(); // TODO zeroize?" (design note §9.4).
func (p *Polynomial) Zeroize() {
	for i := range p.coeffs {
		p.coeffs[i].Zero()
	}
}

// fft evaluates the coefficient vector a (length a power of two, equal to
// omega's order) at every power of omega, via recursive radix-2
// Cooley-Tukey. a is not mutated.
func fft(a []kyber.Scalar, omega kyber.Scalar, g kyber.Group) []kyber.Scalar {
	n := len(a)
	if n == 1 {
		return []kyber.Scalar{a[0].Clone()}
	}

	even := make([]kyber.Scalar, n/2)
	odd := make([]kyber.Scalar, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = a[2*i]
		odd[i] = a[2*i+1]
	}

	omegaSq := g.Scalar().Mul(omega, omega)
	fEven := fft(even, omegaSq, g)
	fOdd := fft(odd, omegaSq, g)

	result := make([]kyber.Scalar, n)
	w := g.Scalar().One()
	for i := 0; i < n/2; i++ {
		t := g.Scalar().Mul(w, fOdd[i])
		result[i] = g.Scalar().Add(fEven[i], t)
		result[i+n/2] = g.Scalar().Sub(fEven[i], t)
		w = g.Scalar().Mul(w, omega)
	}
	return result
}

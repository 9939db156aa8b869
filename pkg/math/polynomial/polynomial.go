// Package polynomial implements polynomials over a curve's scalar
// field, used for Feldman secret sharing and its associated Lagrange
// coefficient for share migration.
package polynomial

import (
	"io"

	"github.com/luxfi/frost-dkg/pkg/curve"
	"github.com/luxfi/frost-dkg/pkg/math/sample"
)

// Polynomial is f(x) = coefficients[0] + coefficients[1]*x +
// coefficients[2]*x^2 + ..., index 0 holding the constant term.
type Polynomial struct {
	group        curve.Curve
	coefficients []curve.Scalar
}

// New returns a random polynomial of the given degree with the given
// constant term, sampling the remaining degree coefficients from r.
func New(group curve.Curve, degree int, constant curve.Scalar, r io.Reader) *Polynomial {
	coeffs := make([]curve.Scalar, degree+1)
	coeffs[0] = constant
	for i := 1; i <= degree; i++ {
		coeffs[i] = sample.Scalar(r, group)
	}
	return &Polynomial{group: group, coefficients: coeffs}
}

// Coefficient returns the coefficient of x^i.
func (p *Polynomial) Coefficient(i int) curve.Scalar { return p.coefficients[i] }

// Degree returns the polynomial's degree.
func (p *Polynomial) Degree() int { return len(p.coefficients) - 1 }

// Evaluate computes f(x) via Horner's method.
func (p *Polynomial) Evaluate(x curve.Scalar) curve.Scalar {
	acc := p.group.NewScalar()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coefficients[i])
	}
	return acc
}

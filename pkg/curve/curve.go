// Package curve defines the group-theoretic collaborator contract that
// the DKG protocol is built on top of: a prime-order group with scalar
// and point arithmetic, random sampling, and hash-to-scalar.
//
// pkg/dkg never reaches into curve internals; it only calls through
// these three interfaces, so a new curve is a pure-addition adapter.
package curve

import "io"

// Scalar is an element of the group's scalar field. Implementations
// use a mutating-accumulator pattern: arithmetic methods update the
// receiver in place and return it, so callers can chain (x.Add(y)) or
// discard the return value and rely on the mutation.
type Scalar interface {
	// Add sets the receiver to receiver+other and returns it.
	Add(other Scalar) Scalar
	// Sub sets the receiver to receiver-other and returns it.
	Sub(other Scalar) Scalar
	// Mul sets the receiver to receiver*other and returns it.
	Mul(other Scalar) Scalar
	// Negate sets the receiver to -receiver and returns it.
	Negate() Scalar
	// Invert sets the receiver to receiver^-1 and returns it.
	// Returns an error if the receiver is zero.
	Invert() (Scalar, error)
	// Equal reports whether the receiver equals other. Not constant time.
	Equal(other Scalar) bool
	// ConstantTimeEqual reports whether the receiver equals other,
	// in time independent of the values, for use on secret-derived
	// comparisons.
	ConstantTimeEqual(other Scalar) bool
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// Bytes returns the canonical fixed-width big-endian encoding.
	Bytes() []byte
	// SetBytes sets the receiver from a fixed-width big-endian
	// encoding and returns it.
	SetBytes(data []byte) (Scalar, error)
	// Act returns receiver*p (scalar multiplication of an arbitrary point).
	Act(p Point) Point
	// ActOnBase returns receiver*G.
	ActOnBase() Point
	// Curve returns the group this scalar belongs to.
	Curve() Curve
}

// Point is an element of the group.
type Point interface {
	// Add sets the receiver to receiver+other and returns it.
	Add(other Point) Point
	// Negate sets the receiver to -receiver and returns it.
	Negate() Point
	// Equal reports whether the receiver equals other.
	Equal(other Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
	// Bytes returns the canonical compressed encoding.
	Bytes() []byte
	// SetBytes sets the receiver from a compressed encoding and returns it.
	SetBytes(data []byte) (Point, error)
	// Curve returns the group this point belongs to.
	Curve() Curve
}

// Curve is a prime-order group together with its hashing and sampling
// machinery. A Curve value is stateless and safe for concurrent use.
type Curve interface {
	// Name identifies the curve, e.g. "secp256k1".
	Name() string
	// NewScalar returns a new zero scalar belonging to this curve.
	NewScalar() Scalar
	// NewPoint returns a new identity-element point belonging to this curve.
	NewPoint() Point
	// Generator returns the group's canonical base point G.
	Generator() Point
	// RandomScalar returns a uniformly random nonzero scalar.
	RandomScalar(r io.Reader) (Scalar, error)
	// HashToScalar hashes data to a scalar under the curve's own fixed
	// DST (the secp256k1 adapter uses RFC 9380 expand_message_xmd with
	// SHA-256; doc.go lists the other curves' constructions). The DST is part of the
	// wire contract and must not vary per call: every peer hashing the
	// same message must land on the same scalar.
	HashToScalar(data ...[]byte) (Scalar, error)
	// SumOfProducts computes sum(scalars[i]*points[i]). Implementations
	// may use a constant-time multi-scalar-multiplication when available;
	// the default adapter falls back to repeated Act+Add.
	SumOfProducts(scalars []Scalar, points []Point) (Point, error)
	// ScalarSize returns the byte length of a canonical scalar encoding.
	ScalarSize() int
}

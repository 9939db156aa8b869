// Package sample provides randomness helpers over a curve.Curve,
// mirroring the luxfi-threshold sample.Scalar(rand.Reader, group) call
// pattern used throughout that codebase's round implementations.
package sample

import (
	"io"

	"github.com/luxfi/frost-dkg/pkg/curve"
)

// Scalar returns a uniformly random nonzero scalar in the given group.
func Scalar(r io.Reader, c curve.Curve) curve.Scalar {
	s, err := c.RandomScalar(r)
	if err != nil {
		panic(err)
	}
	return s
}

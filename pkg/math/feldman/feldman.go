// Package feldman implements Feldman verifiable secret sharing: split a
// secret into n shares recoverable by any t of them, publishing a
// commitment to each polynomial coefficient so any share can be
// verified against the public commitments without learning the secret.
//
// This is the VSS collaborator spec.md §6.2 describes as externally
// provided; no library in the retrieval pack implements it, so it is
// built here, grounded on the shape of luxfi-threshold's
// protocols/lss/keygen/keygen.go round1/round3 (evaluate-and-commit,
// then verify-by-recombination) but not on that file's commitment
// formula, which commits to polynomial re-evaluations rather than to
// the raw coefficients that spec.md and textbook Feldman VSS require.
package feldman

import (
	"errors"
	"io"

	"github.com/luxfi/frost-dkg/pkg/curve"
	"github.com/luxfi/frost-dkg/pkg/math/polynomial"
)

// Share is one participant's evaluation of the sharing polynomial.
type Share struct {
	ID    curve.Scalar
	Value curve.Scalar
}

// Split generates a degree t-1 polynomial with the given constant term,
// returning one share per id in ids and the Feldman commitment vector
// (commitments[k] = base.Act(coefficient_k), for k = 0..t-1).
func Split(group curve.Curve, t int, constant curve.Scalar, base curve.Point, ids []curve.Scalar, r io.Reader) ([]Share, []curve.Point, error) {
	if t < 1 || t > len(ids) {
		return nil, nil, errors.New("feldman: threshold out of range")
	}
	poly := polynomial.New(group, t-1, constant, r)

	commitments := make([]curve.Point, t)
	for k := 0; k < t; k++ {
		commitments[k] = poly.Coefficient(k).Act(base)
	}

	shares := make([]Share, len(ids))
	for i, id := range ids {
		shares[i] = Share{ID: id, Value: poly.Evaluate(id)}
	}
	return shares, commitments, nil
}

// Verify checks that share is consistent with the commitment vector:
//
//	base.Act(share.Value) == sum_k( share.ID^k .Act(commitments[k]) )
func Verify(group curve.Curve, base curve.Point, share Share, commitments []curve.Point) (bool, error) {
	lhs := share.Value.Act(base)

	powers := make([]curve.Scalar, len(commitments))
	x, err := onePower(group)
	if err != nil {
		return false, err
	}
	for k := range commitments {
		powers[k] = x
		x = group.NewScalar().Add(x).Mul(share.ID)
	}

	rhs, err := group.SumOfProducts(powers, commitments)
	if err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}

func onePower(group curve.Curve) (curve.Scalar, error) {
	buf := make([]byte, group.ScalarSize())
	buf[len(buf)-1] = 1
	return group.NewScalar().SetBytes(buf)
}

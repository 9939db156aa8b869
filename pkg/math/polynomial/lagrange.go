package polynomial

import (
	"errors"

	"github.com/luxfi/frost-dkg/pkg/curve"
)

func one(group curve.Curve) (curve.Scalar, error) {
	buf := make([]byte, group.ScalarSize())
	buf[len(buf)-1] = 1
	return group.NewScalar().SetBytes(buf)
}

// CoefficientAtZero computes the Lagrange coefficient of target with
// respect to the interpolation set ids, evaluated at x=0:
//
//	lambda = product over x in ids, x != target, of x * (x - target)^-1
//
// This is the single Lagrange computation in scope for this module: it
// lets a migrated participant fold its prior share into a new secret
// contribution (see dkg.NewParticipantWithSecret) without reconstructing
// the group secret itself, which stays out of scope.
func CoefficientAtZero(group curve.Curve, ids []curve.Scalar, target curve.Scalar) (curve.Scalar, error) {
	found := false
	for _, id := range ids {
		if id.Equal(target) {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.New("polynomial: target is not a member of ids")
	}

	coeff, err := one(group)
	if err != nil {
		return nil, err
	}
	for _, x := range ids {
		if x.Equal(target) {
			continue
		}
		num := group.NewScalar().Add(x)
		denom := group.NewScalar().Add(x).Sub(target)
		inv, err := denom.Invert()
		if err != nil {
			return nil, errors.New("polynomial: duplicate id in interpolation set")
		}
		term := num.Mul(inv)
		coeff = coeff.Mul(term)
	}
	return coeff, nil
}

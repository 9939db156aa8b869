package polynomial_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/frost-dkg/pkg/curve"
	"github.com/luxfi/frost-dkg/pkg/math/polynomial"
)

func TestEvaluateAtZeroIsConstant(t *testing.T) {
	group := curve.Secp256k1{}
	constant, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)

	poly := polynomial.New(group, 3, constant, rand.Reader)
	zero := group.NewScalar()
	assert.True(t, poly.Evaluate(zero).Equal(constant))
}

func TestCoefficientAtZeroReconstructsConstant(t *testing.T) {
	group := curve.Secp256k1{}
	constant, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)

	degree := 2
	poly := polynomial.New(group, degree, constant, rand.Reader)

	ids := make([]curve.Scalar, degree+1)
	shares := make([]curve.Scalar, degree+1)
	for i := range ids {
		buf := make([]byte, group.ScalarSize())
		buf[len(buf)-1] = byte(i + 1)
		id, err := group.NewScalar().SetBytes(buf)
		require.NoError(t, err)
		ids[i] = id
		shares[i] = poly.Evaluate(id)
	}

	// Reconstruct the constant term via the single in-scope Lagrange
	// coefficient, applied to every share and summed — this is the
	// migration-coefficient primitive, exercised here as a full
	// reconstruction purely to test it, not as exported library API.
	sum := group.NewScalar()
	for i, id := range ids {
		coeff, err := polynomial.CoefficientAtZero(group, ids, id)
		require.NoError(t, err)
		term := group.NewScalar().Add(shares[i]).Mul(coeff)
		sum = sum.Add(term)
	}
	assert.True(t, sum.Equal(constant))
}

func TestCoefficientAtZeroRejectsNonMember(t *testing.T) {
	group := curve.Secp256k1{}
	ids := make([]curve.Scalar, 2)
	for i := range ids {
		buf := make([]byte, group.ScalarSize())
		buf[len(buf)-1] = byte(i + 1)
		id, err := group.NewScalar().SetBytes(buf)
		require.NoError(t, err)
		ids[i] = id
	}
	outsider, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)

	_, err = polynomial.CoefficientAtZero(group, ids, outsider)
	assert.Error(t, err)
}

package curve_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/frost-dkg/pkg/curve"
)

func TestScalarArithmeticRoundtrip(t *testing.T) {
	group := curve.Secp256k1{}

	a, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)
	b, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)

	sum := group.NewScalar().Add(a).Add(b)
	back := group.NewScalar().Add(sum).Sub(b)
	assert.True(t, back.Equal(a))

	encoded := a.Bytes()
	decoded, err := group.NewScalar().SetBytes(encoded)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(a))
}

func TestScalarInvert(t *testing.T) {
	group := curve.Secp256k1{}
	a, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)

	inv, err := group.NewScalar().Add(a).Invert()
	require.NoError(t, err)

	product := group.NewScalar().Add(a).Mul(inv)
	one := oneScalar(t, group)
	assert.True(t, product.Equal(one))
}

func TestPointActAndBase(t *testing.T) {
	group := curve.Secp256k1{}
	a, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)

	viaBase := a.ActOnBase()
	viaAct := a.Act(group.Generator())
	assert.True(t, viaBase.Equal(viaAct))
	assert.False(t, viaBase.IsIdentity())
}

func TestPointIdentityEncoding(t *testing.T) {
	group := curve.Secp256k1{}
	id := group.NewPoint()
	assert.True(t, id.IsIdentity())

	decoded, err := group.NewPoint().SetBytes(id.Bytes())
	require.NoError(t, err)
	assert.True(t, decoded.IsIdentity())
}

func TestConstantTimeEqual(t *testing.T) {
	group := curve.Secp256k1{}
	a, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)
	b, err := group.NewScalar().SetBytes(a.Bytes())
	require.NoError(t, err)
	assert.True(t, a.ConstantTimeEqual(b))

	c, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)
	assert.False(t, a.ConstantTimeEqual(c))
}

func oneScalar(t *testing.T, group curve.Curve) curve.Scalar {
	t.Helper()
	buf := make([]byte, group.ScalarSize())
	buf[len(buf)-1] = 1
	s, err := group.NewScalar().SetBytes(buf)
	require.NoError(t, err)
	return s
}

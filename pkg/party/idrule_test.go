package party_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/frost-dkg/pkg/curve"
	"github.com/luxfi/frost-dkg/pkg/party"
)

func scalarFromUint(t *testing.T, group curve.Curve, v uint64) curve.Scalar {
	t.Helper()
	buf := make([]byte, group.ScalarSize())
	for j := 0; j < 8 && j < len(buf); j++ {
		buf[len(buf)-1-j] = byte(v >> (8 * j))
	}
	s, err := group.NewScalar().SetBytes(buf)
	require.NoError(t, err)
	return s
}

func TestSequentialDefaultIncrementIsOne(t *testing.T) {
	group := curve.Secp256k1{}
	ids, err := party.Sequential{Start: 1}.Generate(group, 3)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	for i, want := range []uint64{1, 2, 3} {
		assert.True(t, ids[i].Equal(scalarFromUint(t, group, want)))
	}
}

func TestSequentialExplicitIncrement(t *testing.T) {
	group := curve.Secp256k1{}
	ids, err := party.Sequential{Start: 2, Increment: 2}.Generate(group, 3)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	for i, want := range []uint64{2, 4, 6} {
		assert.True(t, ids[i].Equal(scalarFromUint(t, group, want)))
	}
}

func TestExplicitRejectsDuplicates(t *testing.T) {
	group := curve.Secp256k1{}
	one := scalarFromUint(t, group, 1)
	_, err := party.Explicit{IDs: []curve.Scalar{one, one}}.Generate(group, 2)
	assert.Error(t, err)
}

package feldman_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/frost-dkg/pkg/curve"
	"github.com/luxfi/frost-dkg/pkg/math/feldman"
)

func testIDs(t *testing.T, group curve.Curve, n int) []curve.Scalar {
	t.Helper()
	ids := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		buf := make([]byte, group.ScalarSize())
		buf[len(buf)-1] = byte(i + 1)
		id, err := group.NewScalar().SetBytes(buf)
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}

func TestSplitAndVerifyAllShares(t *testing.T) {
	group := curve.Secp256k1{}
	base := group.Generator()
	secret, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)

	ids := testIDs(t, group, 5)
	shares, commitments, err := feldman.Split(group, 3, secret, base, ids, rand.Reader)
	require.NoError(t, err)
	require.Len(t, shares, 5)
	require.Len(t, commitments, 3)
	assert.False(t, commitments[0].IsIdentity())

	for _, s := range shares {
		ok, err := feldman.Verify(group, base, s, commitments)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestVerifyRejectsTamperedShare(t *testing.T) {
	group := curve.Secp256k1{}
	base := group.Generator()
	secret, err := group.RandomScalar(rand.Reader)
	require.NoError(t, err)

	ids := testIDs(t, group, 3)
	shares, commitments, err := feldman.Split(group, 2, secret, base, ids, rand.Reader)
	require.NoError(t, err)

	one := make([]byte, group.ScalarSize())
	one[len(one)-1] = 1
	oneScalar, err := group.NewScalar().SetBytes(one)
	require.NoError(t, err)

	tampered := shares[0]
	tampered.Value = group.NewScalar().Add(tampered.Value).Add(oneScalar)

	ok, err := feldman.Verify(group, base, tampered, commitments)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestZeroConstantProducesIdentityCommitment(t *testing.T) {
	group := curve.Secp256k1{}
	base := group.Generator()
	ids := testIDs(t, group, 3)

	_, commitments, err := feldman.Split(group, 2, group.NewScalar(), base, ids, rand.Reader)
	require.NoError(t, err)
	assert.True(t, commitments[0].IsIdentity())
}

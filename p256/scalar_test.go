package p256

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarBytesRoundTrip(t *testing.T) {
	var s Scalar
	var b [32]byte
	b[31] = 0x07
	inRange, err := s.SetBytes(b[:])
	require.NoError(t, err)
	require.True(t, inRange)
	require.Equal(t, b, s.Bytes())
}

func TestScalarAddSubInvert(t *testing.T) {
	var a, b, sum, diff, inv, prod, one Scalar
	a.v.SetInt64(123456)
	b.v.SetInt64(654321)
	sum.Add(&a, &b)
	diff.Sub(&sum, &b)
	require.True(t, diff.Equal(&a))

	inv.Invert(&a)
	prod.Mul(&a, &inv)
	one = ScalarOne
	require.True(t, prod.Equal(&one))
}

func TestScalarNegateZero(t *testing.T) {
	var zero, neg Scalar
	neg.Negate(&zero)
	require.True(t, neg.IsZero())
}

func TestScalarLess(t *testing.T) {
	var a, b Scalar
	a.v.SetInt64(1)
	b.v.SetInt64(2)
	require.True(t, a.Less(&b))
	require.False(t, b.Less(&a))
}

func TestScalarRandomInRange(t *testing.T) {
	var s Scalar
	for i := 0; i < 8; i++ {
		ctr := byte(i)
		s.Random(func(b []byte) {
			for j := range b {
				b[j] = byte(j) ^ ctr
			}
		})
		require.False(t, s.IsZero())
		require.True(t, s.v.Cmp(order()) < 0)
	}
}

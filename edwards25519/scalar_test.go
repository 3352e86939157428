package edwards25519

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarBytesRoundTrip(t *testing.T) {
	var s, back Scalar
	b := make([]byte, 64)
	for i := range b {
		b[i] = byte(i * 7)
	}
	require.NoError(t, s.SetUniformBytes(b))
	require.NoError(t, back.SetCanonicalBytes(s.Bytes()))
	require.True(t, s.Equal(&back))
}

func TestScalarAddSubInvert(t *testing.T) {
	var a, b, sum, diff Scalar
	a.Random(func(buf []byte) {
		for i := range buf {
			buf[i] = byte(i + 1)
		}
	})
	b.Random(func(buf []byte) {
		for i := range buf {
			buf[i] = byte(2*i + 3)
		}
	})
	sum.Add(&a, &b)
	diff.Sub(&sum, &b)
	require.True(t, diff.Equal(&a))

	var inv, prod Scalar
	inv.Invert(&a)
	prod.Mul(&a, &inv)
	require.True(t, prod.Equal(&ScalarOne))
}

func TestScalarNegateZero(t *testing.T) {
	var negZero Scalar
	negZero.Negate(&ScalarZero)
	require.True(t, negZero.IsZero())
}

func TestScalarLess(t *testing.T) {
	require.True(t, ScalarZero.Less(&ScalarOne))
	require.False(t, ScalarOne.Less(&ScalarZero))
	require.False(t, ScalarZero.Less(&ScalarZero))
}

func TestScalarRandomInRange(t *testing.T) {
	var s Scalar
	s.Random(func(buf []byte) {
		for i := range buf {
			buf[i] = byte(i * 31)
		}
	})
	require.False(t, s.IsZero())
}

func TestScalarSetCanonicalBytesRejectsOutOfRange(t *testing.T) {
	var s Scalar
	overL := make([]byte, 32)
	for i := range overL {
		overL[i] = 0xff
	}
	require.Error(t, s.SetCanonicalBytes(overL))
}

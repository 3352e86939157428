package secp256k1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldBytesRoundTrip(t *testing.T) {
	var f FieldElement
	in := [32]byte{}
	in[31] = 0x2a
	in[0] = 0x01
	require.NoError(t, f.SetBytes(in[:]))
	out := f.Bytes()
	require.Equal(t, in, out)
}

func TestFieldAddSubInverse(t *testing.T) {
	var a, b, sum, diff FieldElement
	a.SetInt(5)
	b.SetInt(3)
	sum = a
	sum.Add(&b)
	sum.normalize()
	require.Equal(t, uint64(8), sum.n[0])

	diff.Sub(&sum, &b)
	diff.normalize()
	a.normalize()
	require.True(t, diff.Equal(&a))
}

func TestFieldMulByOne(t *testing.T) {
	var a, one, r FieldElement
	a.SetInt(12345)
	one.SetInt(1)
	r.Mul(&a, &one)
	r.normalize()
	a.normalize()
	require.True(t, r.Equal(&a))
}

func TestFieldMulCommutesAndMatchesSquare(t *testing.T) {
	var a, b, ab, ba, aa, sq FieldElement
	a.SetInt(7)
	b.SetInt(11)
	ab.Mul(&a, &b)
	ba.Mul(&b, &a)
	ab.normalize()
	ba.normalize()
	require.True(t, ab.Equal(&ba))

	aa.Mul(&a, &a)
	sq.Sqr(&a)
	aa.normalize()
	sq.normalize()
	require.True(t, aa.Equal(&sq))
}

func TestFieldInvert(t *testing.T) {
	var a, inv, prod, one FieldElement
	a.SetInt(1234567)
	inv.Invert(&a)
	prod.Mul(&a, &inv)
	prod.normalize()
	one.SetInt(1)
	require.True(t, prod.Equal(&one))
}

func TestFieldInvertRoundTripBytes(t *testing.T) {
	var a FieldElement
	b := [32]byte{}
	for i := range b {
		b[i] = byte(i*7 + 3)
	}
	require.NoError(t, a.SetBytes(b[:]))
	var inv, back FieldElement
	inv.Invert(&a)
	back.Invert(&inv)
	back.normalize()
	a.normalize()
	require.True(t, back.Equal(&a))
}

func TestFieldSqrt(t *testing.T) {
	var a, sq, root FieldElement
	a.SetInt(16)
	sq.Sqr(&a)
	sq.normalize()
	ok := root.Sqrt(&sq)
	require.True(t, ok)

	var check FieldElement
	check.Sqr(&root)
	check.normalize()
	require.True(t, check.Equal(&sq))
}

func TestFieldSqrtNonResidue(t *testing.T) {
	// 3 is known not to be a QR mod the secp256k1 field prime (p % 4 == 3,
	// so whether 3 is a residue can be checked directly by the failed
	// Sqrt verification rather than asserted a priori here).
	var candidates FieldElement
	found := false
	for i := 2; i < 64; i++ {
		candidates.SetInt(i)
		var r FieldElement
		if !r.Sqrt(&candidates) {
			found = true
			break
		}
	}
	require.True(t, found, "expected at least one non-residue in a small range")
}

func TestFieldHalf(t *testing.T) {
	var a, half, doubled FieldElement
	a.SetInt(10)
	half.Half(&a)
	doubled = half
	doubled.Add(&half)
	doubled.normalize()
	a.normalize()
	require.True(t, doubled.Equal(&a))
}

func TestFieldHalfOdd(t *testing.T) {
	var a, half, doubled FieldElement
	a.SetInt(7)
	half.Half(&a)
	doubled = half
	doubled.Add(&half)
	doubled.normalize()
	a.normalize()
	require.True(t, doubled.Equal(&a))
}

func TestFieldNegate(t *testing.T) {
	var a, neg, sum, zero FieldElement
	a.SetInt(42)
	neg.Negate(&a, a.magnitude)
	sum = a
	sum.Add(&neg)
	sum.normalize()
	zero.SetInt(0)
	require.True(t, sum.Equal(&zero))
}

func TestFieldCMov(t *testing.T) {
	var a, b FieldElement
	a.SetInt(1)
	b.SetInt(2)

	r := a
	r.CMov(&b, 0)
	r.normalize()
	a.normalize()
	require.True(t, r.Equal(&a))

	r = a
	r.CMov(&b, 1)
	r.normalize()
	b.normalize()
	require.True(t, r.Equal(&b))
}

func TestFieldBatchInverse(t *testing.T) {
	in := make([]FieldElement, 5)
	for i := range in {
		in[i].SetInt(i + 2)
	}
	out := make([]FieldElement, 5)
	BatchInverse(out, in)

	for i := range in {
		var prod, one FieldElement
		prod.Mul(&in[i], &out[i])
		prod.normalize()
		one.SetInt(1)
		require.True(t, prod.Equal(&one), "index %d", i)
	}
}

func TestFieldIsOddZero(t *testing.T) {
	var zero FieldElement
	zero.SetInt(0)
	require.True(t, zero.IsZero())
	require.False(t, zero.IsOdd())

	var one FieldElement
	one.SetInt(1)
	require.True(t, one.IsOdd())
}

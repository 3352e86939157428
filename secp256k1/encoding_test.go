package secp256k1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeUncompressed(t *testing.T) {
	enc := EncodeUncompressed(&Generator)
	require.Len(t, enc, 65)
	require.Equal(t, byte(0x04), enc[0])

	p, err := DecodePoint(enc)
	require.NoError(t, err)
	require.True(t, p.Equal(&Generator))
}

func TestEncodeDecodeCompressed(t *testing.T) {
	enc := EncodeCompressed(&Generator)
	require.Len(t, enc, 33)
	require.True(t, enc[0] == 0x02 || enc[0] == 0x03)

	p, err := DecodePoint(enc)
	require.NoError(t, err)
	require.True(t, p.Equal(&Generator))
}

func TestEncodeDecodeInfinity(t *testing.T) {
	inf := NewAffine()
	enc := EncodeUncompressed(inf)
	require.Equal(t, []byte{0x00}, enc)

	p, err := DecodePoint(enc)
	require.NoError(t, err)
	require.True(t, p.IsIdentity())

	enc2 := EncodeCompressed(inf)
	require.Equal(t, []byte{0x00}, enc2)
}

func TestDecodePointRejectsBadEncoding(t *testing.T) {
	_, err := DecodePoint([]byte{0x05, 0x01})
	require.Error(t, err)
}

func TestDecodePointRejectsOffCurve(t *testing.T) {
	var x FieldElement
	x.SetInt(1)
	xb := x.Bytes()
	bad := append([]byte{0x02}, xb[:]...)
	// x=1 is extremely unlikely to be a valid curve x for a random b=7
	// curve unless it happens to satisfy y^2=x^3+7; verify via SetXOdd
	// directly instead of assuming.
	var check FieldElement
	check.SetInt(1)
	var p Affine
	if p.SetXOdd(&check, false) {
		t.Skip("x=1 unexpectedly lies on the curve")
	}
	_, err := DecodePoint(bad)
	require.Error(t, err)
}

package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"curvekit.dev/ecc/curve25519"
	"curvekit.dev/ecc/edwards25519"
	"curvekit.dev/ecc/p256"
	"curvekit.dev/ecc/rng"
	"curvekit.dev/ecc/secp256k1"
)

func TestEncodeDecodePointSecp256k1(t *testing.T) {
	priv := secp256k1.GenerateKey(rng.Default)
	pub := secp256k1.PublicFromPrivate(priv)
	b, err := EncodePoint(Secp256k1, pub)
	require.NoError(t, err)
	decoded, err := DecodePoint(Secp256k1, b)
	require.NoError(t, err)
	require.True(t, pub.Equal(decoded.(*secp256k1.Affine)))
}

func TestEncodeDecodePointP256(t *testing.T) {
	priv := p256.GenerateKey(rng.Default)
	pub, err := p256.PublicFromPrivate(priv)
	require.NoError(t, err)
	b, err := EncodePoint(P256, pub)
	require.NoError(t, err)
	decoded, err := DecodePoint(P256, b)
	require.NoError(t, err)
	require.True(t, pub.Equal(decoded.(*p256.Affine)))
}

func TestEncodeDecodePointEd25519(t *testing.T) {
	priv, err := edwards25519.GenerateKey(rng.Default)
	require.NoError(t, err)
	b, err := EncodePoint(Ed25519, priv.Public())
	require.NoError(t, err)
	decoded, err := DecodePoint(Ed25519, b)
	require.NoError(t, err)
	require.True(t, priv.Public().Equal(decoded.(*edwards25519.Point)))
}

func TestEncodeDecodePointX25519(t *testing.T) {
	priv := curve25519.GenerateKey(rng.Default)
	pub, err := curve25519.PublicFromPrivate(priv)
	require.NoError(t, err)
	b, err := EncodePoint(X25519, pub)
	require.NoError(t, err)
	decoded, err := DecodePoint(X25519, b)
	require.NoError(t, err)
	require.Equal(t, pub, decoded.(*curve25519.PublicKey))
}

func TestEncodePointRejectsWrongType(t *testing.T) {
	_, err := EncodePoint(Secp256k1, "not a point")
	require.Error(t, err)
}

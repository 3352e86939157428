package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"curvekit.dev/ecc/p256"
	"curvekit.dev/ecc/rng"
)

func TestECPrivateKeyPEMRoundTrip(t *testing.T) {
	priv := p256.GenerateKey(rng.Default)
	pub, err := p256.PublicFromPrivate(priv)
	require.NoError(t, err)
	scalar := priv.Bytes()
	pubBytes := p256.EncodeCompressed(pub)

	pemBytes, err := EncodeECPrivateKeyPEM(P256, scalar[:], pubBytes)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(pemBytes), "BEGIN EC PRIVATE KEY"))

	parsed, err := DecodeECPrivateKeyPEM(pemBytes)
	require.NoError(t, err)
	require.Equal(t, P256, parsed.Curve)
	require.Equal(t, scalar[:], parsed.Scalar)
}

func TestECPublicKeyPEMRoundTrip(t *testing.T) {
	priv := p256.GenerateKey(rng.Default)
	pub, err := p256.PublicFromPrivate(priv)
	require.NoError(t, err)
	pubBytes := p256.EncodeCompressed(pub)

	pemBytes, err := EncodeECPublicKeyPEM(P256, pubBytes)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(pemBytes), "BEGIN PUBLIC KEY"))

	parsed, err := DecodeECPublicKeyPEM(pemBytes)
	require.NoError(t, err)
	require.Equal(t, P256, parsed.Curve)
	require.Equal(t, pubBytes, parsed.PublicKey)
}

func TestDecodePEMRejectsWrongType(t *testing.T) {
	block := EncodePEM(PEMTypePublicKey, []byte{0x01})
	_, err := DecodePEM(PEMTypeECPrivateKey, block)
	require.Error(t, err)
}

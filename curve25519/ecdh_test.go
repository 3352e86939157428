package curve25519

import (
	"testing"

	"github.com/stretchr/testify/require"
	xcurve25519 "golang.org/x/crypto/curve25519"

	"curvekit.dev/ecc/rng"
)

func TestECDHSharedSecretAgreement(t *testing.T) {
	alicePriv := GenerateKey(rng.Default)
	alicePub, err := PublicFromPrivate(alicePriv)
	require.NoError(t, err)
	bobPriv := GenerateKey(rng.Default)
	bobPub, err := PublicFromPrivate(bobPriv)
	require.NoError(t, err)

	aliceSecret, err := ECDH(alicePriv, bobPub, []byte("session-info"), 32)
	require.NoError(t, err)
	bobSecret, err := ECDH(bobPriv, alicePub, []byte("session-info"), 32)
	require.NoError(t, err)
	require.Equal(t, aliceSecret, bobSecret)
}

func TestECDHRejectsLowOrderPeer(t *testing.T) {
	priv := GenerateKey(rng.Default)
	var lowOrder PublicKey // the all-zero u-coordinate is itself a low-order point
	_, err := ECDH(priv, &lowOrder, nil, 32)
	require.Error(t, err)
}

func TestPublicFromPrivateMatchesXCryptoCurve25519(t *testing.T) {
	priv := GenerateKey(rng.Default)

	wantPub, err := xcurve25519.X25519(priv[:], xcurve25519.Basepoint)
	require.NoError(t, err)

	ourPub, err := PublicFromPrivate(priv)
	require.NoError(t, err)
	require.Equal(t, wantPub, ourPub[:])
}

package secp256k1

import (
	"testing"

	"github.com/stretchr/testify/require"

	"curvekit.dev/ecc/rng"
)

func TestECDHSharedSecretAgreement(t *testing.T) {
	alicePriv := GenerateKey(rng.Default)
	alicePub := PublicFromPrivate(alicePriv)
	bobPriv := GenerateKey(rng.Default)
	bobPub := PublicFromPrivate(bobPriv)

	aliceSecret, err := ECDH(alicePriv, bobPub, []byte("session-info"), 32)
	require.NoError(t, err)
	bobSecret, err := ECDH(bobPriv, alicePub, []byte("session-info"), 32)
	require.NoError(t, err)
	require.Equal(t, aliceSecret, bobSecret)
}

func TestECDHDifferentInfoDifferentOutput(t *testing.T) {
	alicePriv := GenerateKey(rng.Default)
	bobPriv := GenerateKey(rng.Default)
	bobPub := PublicFromPrivate(bobPriv)

	s1, err := ECDH(alicePriv, bobPub, []byte("context-a"), 32)
	require.NoError(t, err)
	s2, err := ECDH(alicePriv, bobPub, []byte("context-b"), 32)
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)
}

func TestECDHRejectsZeroPrivateKey(t *testing.T) {
	var zero Scalar
	bobPriv := GenerateKey(rng.Default)
	bobPub := PublicFromPrivate(bobPriv)
	_, err := ECDH(&zero, bobPub, nil, 32)
	require.Error(t, err)
}

func TestECDHRejectsInfinityPeer(t *testing.T) {
	priv := GenerateKey(rng.Default)
	inf := NewAffine()
	_, err := ECDH(priv, inf, nil, 32)
	require.Error(t, err)
}

func TestECDHOutputLength(t *testing.T) {
	alicePriv := GenerateKey(rng.Default)
	bobPriv := GenerateKey(rng.Default)
	bobPub := PublicFromPrivate(bobPriv)

	secret, err := ECDH(alicePriv, bobPub, nil, 64)
	require.NoError(t, err)
	require.Len(t, secret, 64)
}

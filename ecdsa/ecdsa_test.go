package ecdsa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"curvekit.dev/ecc/rng"
)

func digest32(b byte) []byte {
	d := make([]byte, 32)
	for i := range d {
		d[i] = b
	}
	return d
}

func TestSignVerifyRoundTripBothCurves(t *testing.T) {
	for _, curve := range []Curve{Secp256k1, P256} {
		priv := GenerateKey(curve, rng.Default)
		pub, err := priv.Public()
		require.NoError(t, err)

		digest := digest32(0x42)
		sig, err := Sign(priv, digest)
		require.NoError(t, err)
		require.True(t, Verify(pub, digest, sig))
	}
}

func TestVerifyRejectsCrossCurveSignature(t *testing.T) {
	privK1 := GenerateKey(Secp256k1, rng.Default)
	pubK1, err := privK1.Public()
	require.NoError(t, err)

	privP1 := GenerateKey(P256, rng.Default)
	digest := digest32(0x01)
	sigP1, err := Sign(privP1, digest)
	require.NoError(t, err)

	require.False(t, Verify(pubK1, digest, sigP1))
}

func TestBatchVerify(t *testing.T) {
	var digests [][]byte
	var sigs []*Signature
	var pubs []*PublicKey
	for i := byte(0); i < 4; i++ {
		priv := GenerateKey(Secp256k1, rng.Default)
		pub, err := priv.Public()
		require.NoError(t, err)
		d := digest32(i + 1)
		sig, err := Sign(priv, d)
		require.NoError(t, err)
		digests = append(digests, d)
		sigs = append(sigs, sig)
		pubs = append(pubs, pub)
	}
	require.True(t, BatchVerify(digests, sigs, pubs))

	sigs[1] = sigs[0]
	require.False(t, BatchVerify(digests, sigs, pubs))
}

func TestPublicKeyEncodeDecodeRoundTrip(t *testing.T) {
	for _, curve := range []Curve{Secp256k1, P256} {
		priv := GenerateKey(curve, rng.Default)
		pub, err := priv.Public()
		require.NoError(t, err)

		enc := EncodePublic(pub)
		back, err := DecodePublic(curve, enc)
		require.NoError(t, err)
		require.Equal(t, enc, EncodePublic(back))
	}
}

func TestSignatureCompactEncodeDecodeRoundTrip(t *testing.T) {
	for _, curve := range []Curve{Secp256k1, P256} {
		priv := GenerateKey(curve, rng.Default)
		digest := digest32(0x07)
		sig, err := Sign(priv, digest)
		require.NoError(t, err)

		compact := EncodeCompact(sig)
		back, err := DecodeCompact(curve, compact[:])
		require.NoError(t, err)
		require.Equal(t, compact, EncodeCompact(back))
	}
}

package edwards25519

import (
	stded25519 "crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"curvekit.dev/ecc/rng"
)

func TestEdDSASignVerifyRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rng.Default)
	require.NoError(t, err)

	msg := []byte("the quick brown fox jumps over the lazy dog")
	sig, err := Sign(msg, priv)
	require.NoError(t, err)

	pub := priv.PublicBytes()
	require.True(t, Verify(msg, sig, pub[:]))
}

func TestEdDSAVerifyRejectsTamperedMessage(t *testing.T) {
	priv, err := GenerateKey(rng.Default)
	require.NoError(t, err)

	sig, err := Sign([]byte("original"), priv)
	require.NoError(t, err)

	pub := priv.PublicBytes()
	require.False(t, Verify([]byte("tampered"), sig, pub[:]))
}

func TestEdDSAVerifyRejectsWrongKey(t *testing.T) {
	priv, err := GenerateKey(rng.Default)
	require.NoError(t, err)
	other, err := GenerateKey(rng.Default)
	require.NoError(t, err)

	msg := []byte("message")
	sig, err := Sign(msg, priv)
	require.NoError(t, err)

	otherPub := other.PublicBytes()
	require.False(t, Verify(msg, sig, otherPub[:]))
}

func TestEdDSADeterministic(t *testing.T) {
	priv, err := GenerateKey(rng.Default)
	require.NoError(t, err)

	msg := []byte("deterministic nonce check")
	sig1, err := Sign(msg, priv)
	require.NoError(t, err)
	sig2, err := Sign(msg, priv)
	require.NoError(t, err)
	require.Equal(t, sig1.Bytes(), sig2.Bytes())
}

func TestEdDSASignatureBytesRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rng.Default)
	require.NoError(t, err)
	sig, err := Sign([]byte("round trip"), priv)
	require.NoError(t, err)

	back, err := SignatureFromBytes(sig.Bytes())
	require.NoError(t, err)
	require.Equal(t, sig.R, back.R)
	require.Equal(t, sig.S, back.S)
}

func TestEdDSACrossCheckWithStdlib(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i*17 + 3)
	}

	priv, err := NewPrivateKeyFromSeed(seed)
	require.NoError(t, err)
	pub := priv.PublicBytes()

	stdPriv := stded25519.NewKeyFromSeed(seed)
	require.Equal(t, stdPriv.Public().(stded25519.PublicKey), stded25519.PublicKey(pub[:]))

	msg := []byte("cross-library interop")

	// Sign with our implementation, verify with crypto/ed25519.
	sig, err := Sign(msg, priv)
	require.NoError(t, err)
	require.True(t, stded25519.Verify(stdPriv.Public().(stded25519.PublicKey), msg, sig.Bytes()))

	// Sign with crypto/ed25519, verify with our implementation.
	stdSig := stded25519.Sign(stdPriv, msg)
	ourSig, err := SignatureFromBytes(stdSig)
	require.NoError(t, err)
	require.True(t, Verify(msg, ourSig, pub[:]))
}

func TestValidatePrivateAcceptsGeneratedKey(t *testing.T) {
	priv, err := GenerateKey(rng.Default)
	require.NoError(t, err)
	require.NoError(t, ValidatePrivate(priv))
}

func TestTweakAddMatchesDirectComputation(t *testing.T) {
	priv, err := GenerateKey(rng.Default)
	require.NoError(t, err)
	var tweak Scalar
	tweak.Random(func(buf []byte) {
		for i := range buf {
			buf[i] = byte(i*19 + 7)
		}
	})

	tweaked, err := TweakAdd(priv, &tweak)
	require.NoError(t, err)

	wantPub := Add(priv.Public(), MultiplyGenerator(&tweak))
	require.True(t, tweaked.Public().Equal(wantPub))

	msg := []byte("tweaked key signs fine")
	sig, err := Sign(msg, tweaked)
	require.NoError(t, err)
	pub := tweaked.PublicBytes()
	require.True(t, Verify(msg, sig, pub[:]))
}

func TestTweakAddRejectsCancellingTweak(t *testing.T) {
	priv, err := GenerateKey(rng.Default)
	require.NoError(t, err)
	var negScalar Scalar
	negScalar.Negate(&priv.scalar)
	_, err = TweakAdd(priv, &negScalar)
	require.Error(t, err)
}

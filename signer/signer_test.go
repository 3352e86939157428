package signer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testMessage(b byte) []byte {
	msg := make([]byte, 32)
	msg[0] = b
	return msg
}

func TestNativeSignerRoundTrip(t *testing.T) {
	s := NewNativeSigner()
	require.NoError(t, s.Generate())
	msg := testMessage(1)
	sig, err := s.Sign(msg)
	require.NoError(t, err)
	ok, err := s.Verify(msg, sig)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBtcecSignerRoundTrip(t *testing.T) {
	s := NewBtcecSigner()
	require.NoError(t, s.Generate())
	msg := testMessage(2)
	sig, err := s.Sign(msg)
	require.NoError(t, err)
	ok, err := s.Verify(msg, sig)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestCrossBackendInterop signs with the native backend and verifies with
// btcec, and vice versa, confirming both produce and accept the same
// BIP-340 wire format.
func TestCrossBackendInterop(t *testing.T) {
	native := NewNativeSigner()
	require.NoError(t, native.Generate())
	sec := native.Sec()
	pub := native.Pub()

	btc := NewBtcecSigner()
	require.NoError(t, btc.InitSec(sec))
	require.Equal(t, pub, btc.Pub())

	msg := testMessage(3)

	nativeSig, err := native.Sign(msg)
	require.NoError(t, err)
	ok, err := btc.Verify(msg, nativeSig)
	require.NoError(t, err)
	require.True(t, ok)

	btcSig, err := btc.Sign(msg)
	require.NoError(t, err)
	ok, err = native.Verify(msg, btcSig)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCrossBackendECDHAgreement(t *testing.T) {
	nativeA := NewNativeSigner()
	require.NoError(t, nativeA.Generate())
	nativeB := NewNativeSigner()
	require.NoError(t, nativeB.Generate())

	btcA := NewBtcecSigner()
	require.NoError(t, btcA.InitSec(nativeA.Sec()))
	btcB := NewBtcecSigner()
	require.NoError(t, btcB.InitSec(nativeB.Sec()))

	secretNative, err := nativeA.ECDH(nativeB.Pub())
	require.NoError(t, err)
	secretBtc, err := btcA.ECDH(btcB.Pub())
	require.NoError(t, err)
	require.Equal(t, secretNative, secretBtc)
}

func TestInitPubVerifyOnly(t *testing.T) {
	native := NewNativeSigner()
	require.NoError(t, native.Generate())
	pub := native.Pub()

	verifier := NewNativeSigner()
	require.NoError(t, verifier.InitPub(pub))
	require.Nil(t, verifier.Sec())

	msg := testMessage(4)
	sig, err := native.Sign(msg)
	require.NoError(t, err)
	ok, err := verifier.Verify(msg, sig)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestZeroWipesSecret(t *testing.T) {
	s := NewNativeSigner()
	require.NoError(t, s.Generate())
	s.Zero()
	require.Equal(t, make([]byte, 32), s.Sec())
}

func TestGen(t *testing.T) {
	s, err := Gen(NewNativeSigner)
	require.NoError(t, err)
	require.NotNil(t, s.Pub())
}

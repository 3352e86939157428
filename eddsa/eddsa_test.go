package eddsa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"curvekit.dev/ecc/rng"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	priv, err := GenerateKey(rng.Default)
	require.NoError(t, err)
	pub := priv.PublicBytes()

	msg := []byte("eddsa facade message")
	sig, err := Sign(msg, priv)
	require.NoError(t, err)
	require.True(t, Verify(msg, sig, pub[:]))
}

func TestBatchVerify(t *testing.T) {
	var msgs [][]byte
	var sigs []*Signature
	var pubs [][]byte
	for i := 0; i < 4; i++ {
		priv, err := GenerateKey(rng.Default)
		require.NoError(t, err)
		pub := priv.PublicBytes()
		msg := []byte{byte(i), byte(i + 1)}
		sig, err := Sign(msg, priv)
		require.NoError(t, err)

		msgs = append(msgs, msg)
		sigs = append(sigs, sig)
		pubs = append(pubs, pub[:])
	}
	require.True(t, BatchVerify(msgs, sigs, pubs))

	sigs[2] = sigs[0]
	require.False(t, BatchVerify(msgs, sigs, pubs))
}

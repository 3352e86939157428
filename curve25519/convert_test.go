package curve25519

import (
	"testing"

	"github.com/stretchr/testify/require"

	"curvekit.dev/ecc/edwards25519"
	"curvekit.dev/ecc/rng"
)

func TestEdPrivateSeedToX25519AgreesWithEdPublicKeyToX25519(t *testing.T) {
	var seed [32]byte
	rng.Default.FillBytes(seed[:])

	edPriv, err := edwards25519.NewPrivateKeyFromSeed(seed[:])
	require.NoError(t, err)

	xPriv, err := EdPrivateSeedToX25519(seed[:])
	require.NoError(t, err)
	xPubFromPriv, err := PublicFromPrivate(xPriv)
	require.NoError(t, err)

	edPub := edPriv.PublicBytes()
	xPubFromEdPub, err := EdPublicKeyToX25519(edPub[:])
	require.NoError(t, err)

	require.Equal(t, xPubFromPriv, xPubFromEdPub)
}

func TestEdPublicKeyToX25519RejectsBadEncoding(t *testing.T) {
	_, err := EdPublicKeyToX25519([]byte{0x01, 0x02})
	require.Error(t, err)
}

package curve25519

import (
	"testing"

	"github.com/cloudflare/circl/dh/x25519"
	"github.com/stretchr/testify/require"
	xcurve25519 "golang.org/x/crypto/curve25519"

	"curvekit.dev/ecc/rng"
)

// TestX25519AgreesWithCircl cross-checks the raw RFC 7748 ladder this
// package's ECDH builds on against github.com/cloudflare/circl/dh/x25519,
// an independent X25519 implementation, the same cross-oracle pattern
// other_examples' abdorrahmani-CryptoLens x25519.go uses circl for.
func TestX25519AgreesWithCircl(t *testing.T) {
	alice := GenerateKey(rng.Default)
	bob := GenerateKey(rng.Default)
	bobPub, err := PublicFromPrivate(bob)
	require.NoError(t, err)

	ours, err := xcurve25519.X25519(alice[:], bobPub[:])
	require.NoError(t, err)

	var aliceKey, bobPubKey, shared x25519.Key
	copy(aliceKey[:], alice[:])
	copy(bobPubKey[:], bobPub[:])
	ok := x25519.Shared(&shared, &aliceKey, &bobPubKey)
	require.True(t, ok)

	require.Equal(t, ours, shared[:])
}

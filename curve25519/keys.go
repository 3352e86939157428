package curve25519

import (
	"crypto/subtle"

	xcurve25519 "golang.org/x/crypto/curve25519"

	"curvekit.dev/ecc/core"
)

// ScalarSize and PointSize are both 32: X25519 scalars and u-coordinates
// share the same wire width.
const (
	ScalarSize = 32
	PointSize  = 32
)

// PrivateKey is a 32-byte X25519 private scalar before clamping.
// golang.org/x/crypto/curve25519 applies RFC 7748's clamping internally on
// every call, so the stored bytes are the raw, unclamped scalar.
type PrivateKey [ScalarSize]byte

// PublicKey is a 32-byte X25519 u-coordinate.
type PublicKey [PointSize]byte

// GenerateKey draws a uniformly random 32-byte private scalar from rng.
func GenerateKey(rng core.RNG) *PrivateKey {
	var priv PrivateKey
	rng.FillBytes(priv[:])
	return &priv
}

// PublicFromPrivate computes the public u-coordinate priv*basepoint.
func PublicFromPrivate(priv *PrivateKey) (*PublicKey, error) {
	var pub PublicKey
	out, err := xcurve25519.X25519(priv[:], xcurve25519.Basepoint)
	if err != nil {
		return nil, core.ErrInvalidPrivateKey
	}
	copy(pub[:], out)
	return &pub, nil
}

// ValidatePrivate reports whether priv derives a non-low-order public key.
func ValidatePrivate(priv *PrivateKey) error {
	_, err := PublicFromPrivate(priv)
	return err
}

var zero32 [32]byte

// isLowOrder reports whether b is the all-zero point X25519 returns for a
// low-order (small subgroup) input, per RFC 7748 section 6.1's required
// check.
func isLowOrder(b []byte) bool {
	return subtle.ConstantTimeCompare(b, zero32[:]) == 1
}

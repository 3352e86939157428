package curve25519

import (
	sha256simd "github.com/minio/sha256-simd"
	xcurve25519 "golang.org/x/crypto/curve25519"

	"curvekit.dev/ecc/core"
	"curvekit.dev/ecc/hash"
)

// ECDH computes the raw X25519 shared u-coordinate priv*pub, rejects a
// low-order result per RFC 7748 section 6.1, then derives key material via
// HKDF-SHA256, grounded in stirlingx001-curve25519-voi/x25519.go's X25519
// low-order-point check and paralleling secp256k1/ecdh.go and
// p256/ecdh.go's HKDF-over-raw-shared-point structure.
func ECDH(priv *PrivateKey, pub *PublicKey, info []byte, outLen int) ([]byte, error) {
	shared, err := xcurve25519.X25519(priv[:], pub[:])
	if err != nil {
		return nil, core.ErrInvalidPublicKey
	}
	if isLowOrder(shared) {
		return nil, core.ErrKeyExchangeError
	}

	return hash.HKDFExtractAndExpand(sha256simd.New, shared, nil, info, outLen)
}

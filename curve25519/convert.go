package curve25519

import (
	"crypto/sha512"

	"curvekit.dev/ecc/core"
	"curvekit.dev/ecc/edwards25519"
)

// EdPrivateSeedToX25519 converts an Ed25519 seed into the corresponding
// X25519 private scalar, following the same "hash-and-clamp-on-use"
// derivation RFC 8032 key expansion and RFC 7748 clamping share: both
// start from SHA-512(seed)[:32]. Grounded directly on
// stirlingx001-curve25519-voi/x25519.go's EdPrivateKeyToX25519 (there
// operating on a 64-byte expanded Ed25519 private key, here on the
// 32-byte seed this module's edwards25519.PrivateKey is built from).
func EdPrivateSeedToX25519(seed []byte) (*PrivateKey, error) {
	if len(seed) != 32 {
		return nil, core.ErrInvalidEncoding
	}
	h := sha512.Sum512(seed)
	var priv PrivateKey
	copy(priv[:], h[:32])
	return &priv, nil
}

// EdPublicKeyToX25519 converts a compressed Ed25519 public key into the
// X25519 public key (Montgomery u-coordinate) that corresponds to the same
// underlying point, via the birational map u = (1+y)/(1-y). Grounded on
// stirlingx001-curve25519-voi/x25519.go's EdPublicKeyToX25519, but using
// filippo.io/edwards25519's Point.BytesMontgomery (the same library
// edwards25519.DecodePoint already wraps) instead of a second,
// independently-implemented Edwards curve type.
func EdPublicKeyToX25519(pub []byte) (*PublicKey, error) {
	p, err := edwards25519.DecodePoint(pub)
	if err != nil {
		return nil, err
	}
	var out PublicKey
	copy(out[:], p.BytesMontgomery())
	return &out, nil
}

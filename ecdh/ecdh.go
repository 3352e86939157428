package ecdh

import (
	"curvekit.dev/ecc/core"
	"curvekit.dev/ecc/curve25519"
	"curvekit.dev/ecc/p256"
	"curvekit.dev/ecc/secp256k1"
)

// Curve names which concrete Diffie-Hellman backend a PrivateKey wraps.
type Curve int

const (
	Secp256k1 Curve = iota
	P256
	X25519
)

// PrivateKey is a Diffie-Hellman private key on one of this module's three
// key-exchange curves.
type PrivateKey struct {
	Curve Curve
	k1    secp256k1.Scalar
	p1    p256.Scalar
	x     curve25519.PrivateKey
}

// GenerateKey draws a fresh private key on curve from rng.
func GenerateKey(curve Curve, rng core.RNG) *PrivateKey {
	switch curve {
	case Secp256k1:
		return &PrivateKey{Curve: curve, k1: *secp256k1.GenerateKey(rng)}
	case P256:
		return &PrivateKey{Curve: curve, p1: *p256.GenerateKey(rng)}
	default:
		return &PrivateKey{Curve: curve, x: *curve25519.GenerateKey(rng)}
	}
}

// ValidatePublicKey reports whether b is a well-formed, non-identity
// public key encoding for curve (SEC1 compressed or uncompressed for the
// two short-Weierstrass curves, the raw 32-byte u-coordinate for X25519).
func ValidatePublicKey(curve Curve, b []byte) error {
	switch curve {
	case Secp256k1:
		p, err := secp256k1.DecodePoint(b)
		if err == nil && p.IsIdentity() {
			return core.ErrInvalidPublicKey
		}
		return err
	case P256:
		p, err := p256.DecodePoint(b)
		if err == nil && p.IsIdentity() {
			return core.ErrInvalidPublicKey
		}
		return err
	default:
		if len(b) != curve25519.PointSize {
			return core.ErrInvalidEncoding
		}
		return nil
	}
}

// DeriveSharedSecret runs Diffie-Hellman between priv and the encoded peer
// public key pub, then HKDF-expands the raw shared value under info into
// outLen bytes of key material (DeriveKey's job, folded into one call
// since every concrete ECDH backend already does this internally).
func DeriveSharedSecret(priv *PrivateKey, pub []byte, info []byte, outLen int) ([]byte, error) {
	switch priv.Curve {
	case Secp256k1:
		aff, err := secp256k1.DecodePoint(pub)
		if err != nil {
			return nil, err
		}
		return secp256k1.ECDH(&priv.k1, aff, info, outLen)
	case P256:
		aff, err := p256.DecodePoint(pub)
		if err != nil {
			return nil, err
		}
		return p256.ECDH(&priv.p1, aff, info, outLen)
	default:
		if len(pub) != curve25519.PointSize {
			return nil, core.ErrInvalidEncoding
		}
		var xPub curve25519.PublicKey
		copy(xPub[:], pub)
		return curve25519.ECDH(&priv.x, &xPub, info, outLen)
	}
}

// DeriveKey is an alias for DeriveSharedSecret, named to match this
// module's KeyExchange vocabulary for the HKDF-expansion step specifically
// (every backend already performs it as part of the Diffie-Hellman call,
// so there is no separate raw-secret-then-expand entry point to offer).
func DeriveKey(priv *PrivateKey, pub []byte, info []byte, outLen int) ([]byte, error) {
	return DeriveSharedSecret(priv, pub, info, outLen)
}

// X25519 runs curve25519.ECDH with no info string and a 32-byte output,
// the typical X25519 call shape for a caller that only needs one
// Diffie-Hellman curve rather than the DeriveSharedSecret dispatcher.
func X25519(priv *curve25519.PrivateKey, pub *curve25519.PublicKey) ([]byte, error) {
	return curve25519.ECDH(priv, pub, nil, 32)
}

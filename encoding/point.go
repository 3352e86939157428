package encoding

import (
	"curvekit.dev/ecc/core"
	"curvekit.dev/ecc/curve25519"
	"curvekit.dev/ecc/edwards25519"
	"curvekit.dev/ecc/p256"
	"curvekit.dev/ecc/secp256k1"
)

// Curve names which point format EncodePoint/DecodePoint dispatch to.
type Curve int

const (
	Secp256k1 Curve = iota
	P256
	Ed25519
	X25519
)

// EncodePoint returns the canonical wire encoding for p on curve: SEC1
// compressed (33 bytes) for the two short-Weierstrass curves, the 32-byte
// little-endian encoding for Ed25519, the 32-byte u-coordinate for X25519.
func EncodePoint(curve Curve, p any) ([]byte, error) {
	switch curve {
	case Secp256k1:
		aff, ok := p.(*secp256k1.Affine)
		if !ok {
			return nil, core.ErrInvalidEncoding
		}
		return secp256k1.EncodeCompressed(aff), nil
	case P256:
		aff, ok := p.(*p256.Affine)
		if !ok {
			return nil, core.ErrInvalidEncoding
		}
		return p256.EncodeCompressed(aff), nil
	case Ed25519:
		pt, ok := p.(*edwards25519.Point)
		if !ok {
			return nil, core.ErrInvalidEncoding
		}
		return pt.Bytes(), nil
	default:
		pub, ok := p.(*curve25519.PublicKey)
		if !ok {
			return nil, core.ErrInvalidEncoding
		}
		out := make([]byte, curve25519.PointSize)
		copy(out, pub[:])
		return out, nil
	}
}

// DecodePoint parses b as a point on curve, returning one of
// *secp256k1.Affine, *p256.Affine, *edwards25519.Point, or
// *curve25519.PublicKey depending on curve.
func DecodePoint(curve Curve, b []byte) (any, error) {
	switch curve {
	case Secp256k1:
		return secp256k1.DecodePoint(b)
	case P256:
		return p256.DecodePoint(b)
	case Ed25519:
		return edwards25519.DecodePoint(b)
	default:
		if len(b) != curve25519.PointSize {
			return nil, core.ErrInvalidEncoding
		}
		var pub curve25519.PublicKey
		copy(pub[:], b)
		return &pub, nil
	}
}

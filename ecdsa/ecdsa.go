package ecdsa

import (
	"curvekit.dev/ecc/core"
	"curvekit.dev/ecc/p256"
	"curvekit.dev/ecc/secp256k1"
)

// Curve names which concrete backend a PrivateKey/PublicKey/Signature
// wraps.
type Curve int

const (
	Secp256k1 Curve = iota
	P256
)

// PrivateKey is an ECDSA signing key on one of this module's two
// short-Weierstrass curves.
type PrivateKey struct {
	Curve Curve
	k1    secp256k1.Scalar
	p1    p256.Scalar
}

// PublicKey is the verification half of a PrivateKey.
type PublicKey struct {
	Curve Curve
	k1    secp256k1.Affine
	p1    p256.Affine
}

// Signature is a curve-tagged (r, s) pair.
type Signature struct {
	Curve Curve
	k1    secp256k1.Signature
	p1    p256.Signature
}

// GenerateKey draws a fresh private key on curve from rng.
func GenerateKey(curve Curve, rng core.RNG) *PrivateKey {
	switch curve {
	case Secp256k1:
		return &PrivateKey{Curve: curve, k1: *secp256k1.GenerateKey(rng)}
	default:
		return &PrivateKey{Curve: curve, p1: *p256.GenerateKey(rng)}
	}
}

// Public derives priv's public key.
func (priv *PrivateKey) Public() (*PublicKey, error) {
	switch priv.Curve {
	case Secp256k1:
		return &PublicKey{Curve: priv.Curve, k1: *secp256k1.PublicFromPrivate(&priv.k1)}, nil
	default:
		aff, err := p256.PublicFromPrivate(&priv.p1)
		if err != nil {
			return nil, err
		}
		return &PublicKey{Curve: priv.Curve, p1: *aff}, nil
	}
}

// SignOption configures Sign.
type SignOption func(*signOptions)

type signOptions struct {
	normalizeS bool
}

// WithNormalizeS controls whether Sign normalizes s into the lower half of
// the group order (low-S form). Default true; pass WithNormalizeS(false) to
// get the raw RFC 6979 value, e.g. to reproduce a named test vector that
// pins a high-S signature.
func WithNormalizeS(normalize bool) SignOption {
	return func(o *signOptions) { o.normalizeS = normalize }
}

// Sign produces a deterministic (RFC 6979) signature over a 32-byte
// message digest, low-S normalized by default (see WithNormalizeS).
func Sign(priv *PrivateKey, digest []byte, opts ...SignOption) (*Signature, error) {
	o := signOptions{normalizeS: true}
	for _, opt := range opts {
		opt(&o)
	}
	switch priv.Curve {
	case Secp256k1:
		sig, err := secp256k1.Sign(digest, &priv.k1, secp256k1.WithNormalizeS(o.normalizeS))
		if err != nil {
			return nil, err
		}
		return &Signature{Curve: priv.Curve, k1: *sig}, nil
	default:
		sig, err := p256.Sign(digest, &priv.p1, p256.WithNormalizeS(o.normalizeS))
		if err != nil {
			return nil, err
		}
		return &Signature{Curve: priv.Curve, p1: *sig}, nil
	}
}

// Verify reports whether sig is a valid signature over digest by pub.
// Signatures and keys for mismatched curves never verify.
func Verify(pub *PublicKey, digest []byte, sig *Signature) bool {
	if pub.Curve != sig.Curve {
		return false
	}
	switch pub.Curve {
	case Secp256k1:
		return secp256k1.Verify(digest, &sig.k1, &pub.k1)
	default:
		return p256.Verify(digest, &sig.p1, &pub.p1)
	}
}

// BatchVerify reports whether every (digest, signature, public key) triple
// verifies. All three slices must be the same length and every entry must
// share one curve; BatchVerify returns false immediately otherwise.
func BatchVerify(digests [][]byte, sigs []*Signature, pubs []*PublicKey) bool {
	if len(digests) != len(sigs) || len(sigs) != len(pubs) {
		return false
	}
	for i := range sigs {
		if sigs[i].Curve != sigs[0].Curve || !Verify(pubs[i], digests[i], sigs[i]) {
			return false
		}
	}
	return true
}

// EncodePublic returns pub's SEC1 compressed encoding.
func EncodePublic(pub *PublicKey) []byte {
	switch pub.Curve {
	case Secp256k1:
		return secp256k1.EncodeCompressed(&pub.k1)
	default:
		return p256.EncodeCompressed(&pub.p1)
	}
}

// DecodePublic parses a SEC1-encoded public key for curve.
func DecodePublic(curve Curve, b []byte) (*PublicKey, error) {
	switch curve {
	case Secp256k1:
		aff, err := secp256k1.DecodePoint(b)
		if err != nil {
			return nil, err
		}
		return &PublicKey{Curve: curve, k1: *aff}, nil
	default:
		aff, err := p256.DecodePoint(b)
		if err != nil {
			return nil, err
		}
		return &PublicKey{Curve: curve, p1: *aff}, nil
	}
}

// EncodeCompact returns sig's 64-byte (r || s) compact encoding.
func EncodeCompact(sig *Signature) [64]byte {
	switch sig.Curve {
	case Secp256k1:
		return sig.k1.ToCompact()
	default:
		return sig.p1.ToCompact()
	}
}

// DecodeCompact parses a 64-byte (r || s) compact signature for curve.
func DecodeCompact(curve Curve, b []byte) (*Signature, error) {
	switch curve {
	case Secp256k1:
		sig, err := secp256k1.SignatureFromCompact(b)
		if err != nil {
			return nil, err
		}
		return &Signature{Curve: curve, k1: *sig}, nil
	default:
		sig, err := p256.SignatureFromCompact(b)
		if err != nil {
			return nil, err
		}
		return &Signature{Curve: curve, p1: *sig}, nil
	}
}

package p256

import (
	"crypto/sha256"

	"curvekit.dev/ecc/core"
	"curvekit.dev/ecc/rfc6979"
)

// Signature is an ECDSA signature (r, s).
type Signature struct {
	R, S Scalar
}

// SignOption configures Sign.
type SignOption func(*signOptions)

type signOptions struct {
	normalizeS bool
}

// WithNormalizeS controls whether Sign normalizes s into the lower half of
// the group order (low-S form). Default true; pass WithNormalizeS(false)
// to get the raw RFC 6979 value, needed to reproduce a named test vector
// that pins a high-S signature.
func WithNormalizeS(normalize bool) SignOption {
	return func(o *signOptions) { o.normalizeS = normalize }
}

// Sign produces a deterministic (RFC 6979) ECDSA signature over a 32-byte
// message digest, low-S normalized by default (see WithNormalizeS),
// grounded on open-move-sui-go-sdk/secp256r1-keypair.go's
// deterministicP256Signature but using this module's curve-agnostic
// rfc6979 generator and crypto/ecdh's constant-time base-point
// multiplication instead of hand-rolled HMAC-DRBG and crypto/elliptic's
// deprecated scalar-mult path.
func Sign(digest []byte, priv *Scalar, opts ...SignOption) (*Signature, error) {
	o := signOptions{normalizeS: true}
	for _, opt := range opts {
		opt(&o)
	}
	if len(digest) != 32 {
		return nil, core.ErrInvalidEncoding
	}
	if priv.IsZero() {
		return nil, core.ErrInvalidPrivateKey
	}

	privBytes := priv.Bytes()
	gen := rfc6979.New(sha256.New, privBytes[:], digest, nil)
	defer gen.Clear()

	var nonce Scalar
	var nonceBytes [32]byte
	for {
		gen.Generate(nonceBytes[:])
		inRange, _ := nonce.SetBytes(nonceBytes[:])
		if inRange && !nonce.IsZero() {
			break
		}
		gen.Retry()
	}
	defer nonce.Clear()

	rPoint, err := MultiplyGenerator(&nonce)
	if err != nil || rPoint.infinity {
		return nil, core.ErrInvalidSignature
	}

	var sig Signature
	sig.R.FromBytesReduced(rPoint.X.Bytes())
	if sig.R.IsZero() {
		return nil, core.ErrInvalidSignature
	}

	var msg Scalar
	msg.FromBytesReduced(digest)

	var rTimesPriv, sum, nonceInv Scalar
	rTimesPriv.Mul(&sig.R, priv)
	sum.Add(&rTimesPriv, &msg)
	nonceInv.Invert(&nonce)
	sig.S.Mul(&nonceInv, &sum)

	if o.normalizeS && sig.S.v.Cmp(halfOrder()) > 0 {
		sig.S.Negate(&sig.S)
	}
	if sig.S.IsZero() {
		return nil, core.ErrInvalidSignature
	}
	return &sig, nil
}

// Verify reports whether sig is a valid ECDSA signature over digest by the
// public key pub.
func Verify(digest []byte, sig *Signature, pub *Affine) bool {
	if len(digest) != 32 || pub.infinity {
		return false
	}
	if sig.R.IsZero() || sig.S.IsZero() {
		return false
	}
	if sig.R.v.Cmp(order()) >= 0 || sig.S.v.Cmp(order()) >= 0 {
		return false
	}

	var msg, sInv, u1, u2 Scalar
	msg.FromBytesReduced(digest)
	sInv.Invert(&sig.S)
	u1.Mul(&msg, &sInv)
	u2.Mul(&sig.R, &sInv)

	p1, err := MultiplyGenerator(&u1)
	if err != nil {
		return false
	}
	p2 := Multiply(&u2, pub)
	rPoint := Add(p1, p2)
	if rPoint.infinity {
		return false
	}

	var computedR Scalar
	computedR.FromBytesReduced(rPoint.X.Bytes())
	return sig.R.Equal(&computedR)
}

// ToCompact returns the 64-byte (r || s) compact encoding of sig.
func (sig *Signature) ToCompact() [64]byte {
	var out [64]byte
	rb := sig.R.Bytes()
	sb := sig.S.Bytes()
	copy(out[:32], rb[:])
	copy(out[32:], sb[:])
	return out
}

// SignatureFromCompact parses a 64-byte (r || s) compact signature.
func SignatureFromCompact(b []byte) (*Signature, error) {
	if len(b) != 64 {
		return nil, core.ErrInvalidEncoding
	}
	var sig Signature
	if _, err := sig.R.SetBytes(b[:32]); err != nil {
		return nil, err
	}
	if _, err := sig.S.SetBytes(b[32:64]); err != nil {
		return nil, err
	}
	if sig.R.IsZero() || sig.S.IsZero() {
		return nil, core.ErrInvalidSignature
	}
	return &sig, nil
}

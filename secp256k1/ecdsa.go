package secp256k1

import (
	sha256simd "github.com/minio/sha256-simd"

	"curvekit.dev/ecc/core"
	"curvekit.dev/ecc/rfc6979"
)

// Signature is an ECDSA signature (r, s), grounded in
// mleku-p256k1/ecdsa.go's ECDSASignature.
type Signature struct {
	R, S Scalar
}

// SignOption configures Sign.
type SignOption func(*signOptions)

type signOptions struct {
	normalizeS bool
}

// WithNormalizeS controls whether Sign normalizes s into the lower half of
// the group order (low-S form, the BIP-62/malleability-safe convention).
// Default true; pass WithNormalizeS(false) to get the raw RFC 6979 value,
// needed to reproduce a named test vector that pins a high-S signature.
func WithNormalizeS(normalize bool) SignOption {
	return func(o *signOptions) { o.normalizeS = normalize }
}

// Sign produces a deterministic (RFC 6979) ECDSA signature over a 32-byte
// message digest, low-S normalized by default (see WithNormalizeS).
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
	gen := rfc6979.New(sha256simd.New, privBytes[:], digest, nil)
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

	var rJac Jacobian
	MultiplyGenerator(&rJac, &nonce)
	var rAff Affine
	rAff.ToAffine(&rJac)
	if rAff.infinity {
		return nil, core.ErrInvalidSignature
	}

	var sig Signature
	xN := rAff.x
	xN.normalize()
	xb := xN.Bytes()
	sig.R.FromBytesReduced(xb[:])
	if sig.R.IsZero() {
		return nil, core.ErrInvalidSignature
	}

	var msg Scalar
	msg.FromBytesReduced(digest)

	var rTimesPriv, sum Scalar
	rTimesPriv.Mul(&sig.R, priv)
	sum.Add(&rTimesPriv, &msg)

	var nonceInv Scalar
	nonceInv.Invert(&nonce)
	sig.S.Mul(&nonceInv, &sum)

	if o.normalizeS && groupOrderHalf0().Less(&sig.S) {
		sig.S.Negate(&sig.S)
	}
	if sig.S.IsZero() {
		return nil, core.ErrInvalidSignature
	}
	return &sig, nil
}

// groupOrderHalf0 returns floor(n/2) as a Scalar, for the low-S check.
func groupOrderHalf0() *Scalar {
	return &Scalar{d: groupOrderHalf}
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
	if !lessUint256(sig.R.d, groupOrder) || !lessUint256(sig.S.d, groupOrder) {
		return false
	}

	var msg Scalar
	msg.FromBytesReduced(digest)

	var sInv Scalar
	sInv.Invert(&sig.S)

	var u1, u2 Scalar
	u1.Mul(&msg, &sInv)
	u2.Mul(&sig.R, &sInv)

	var rPoint Jacobian
	DoubleMultiplyVar(&rPoint, &u1, &Generator, &u2, pub)
	if rPoint.infinity {
		return false
	}

	var rAff Affine
	rAff.ToAffine(&rPoint)
	xN := rAff.x
	xN.normalize()
	xb := xN.Bytes()

	var computedR Scalar
	computedR.FromBytesReduced(xb[:])
	return sig.R.Equal(&computedR)
}

// BatchVerify reports whether every signature in sigs is valid against its
// corresponding digest and public key. This checks each signature
// independently rather than using a randomized linear combination, giving
// precise per-signature failure attribution at the cost of the speedup a
// batched check would offer.
func BatchVerify(digests [][]byte, sigs []*Signature, pubs []*Affine) bool {
	if len(digests) != len(sigs) || len(sigs) != len(pubs) {
		return false
	}
	for i := range sigs {
		if !Verify(digests[i], sigs[i], pubs[i]) {
			return false
		}
	}
	return true
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

package secp256k1

import (
	"curvekit.dev/ecc/core"
	"curvekit.dev/ecc/hash"
)

// BIP-340 tag strings, grounded in mleku-p256k1/schnorr.go's
// bip340NonceTag/bip340AuxTag/bip340ChallengeTag.
const (
	bip340AuxTag       = "BIP0340/aux"
	bip340NonceTag     = "BIP0340/nonce"
	bip340ChallengeTag = "BIP0340/challenge"
)

// SchnorrSignature is a BIP-340 64-byte Schnorr signature (r || s).
type SchnorrSignature struct {
	R FieldElement // x-only nonce commitment
	S Scalar
}

// XOnlyPubkey is a BIP-340 32-byte x-only public key: the x coordinate of a
// point with even y.
type XOnlyPubkey struct {
	X FieldElement
}

// evenY returns the point (x, y) with even y, given that x lies on the
// curve, per BIP-340's x-only public key convention.
func evenY(p *Affine) *Affine {
	var out Affine
	out = *p
	out.y.normalize()
	if out.y.IsOdd() {
		out.Negate(&out)
	}
	return &out
}

// XOnlyFromScalar derives the BIP-340 x-only public key and the possibly
// negated private scalar (so that the stored key always corresponds to an
// even-y point) for priv.
func XOnlyFromScalar(priv *Scalar) (*XOnlyPubkey, Scalar) {
	var pj Jacobian
	MultiplyGenerator(&pj, priv)
	var p Affine
	p.ToAffine(&pj)
	p.x.normalize()
	p.y.normalize()

	adjusted := *priv
	if p.y.IsOdd() {
		adjusted.Negate(&adjusted)
	}
	return &XOnlyPubkey{X: p.x}, adjusted
}

func bip340Nonce(key32, msg32, xonly32, auxRand32 []byte) [32]byte {
	var masked [32]byte
	if auxRand32 != nil {
		auxHash := hash.TaggedHash(bip340AuxTag, auxRand32)
		for i := range masked {
			masked[i] = key32[i] ^ auxHash[i]
		}
	} else {
		zero := hash.TaggedHash(bip340AuxTag, make([]byte, 32))
		for i := range masked {
			masked[i] = key32[i] ^ zero[i]
		}
	}
	return hash.TaggedHash(bip340NonceTag, masked[:], xonly32, msg32)
}

// SchnorrSign produces a BIP-340 signature over a 32-byte message, using
// auxRand32 (may be nil) as auxiliary randomness for nonce generation.
func SchnorrSign(msg32 []byte, priv *Scalar, auxRand32 []byte) (*SchnorrSignature, error) {
	if len(msg32) != 32 {
		return nil, core.ErrInvalidEncoding
	}
	if priv.IsZero() {
		return nil, core.ErrInvalidPrivateKey
	}

	xonly, sk := XOnlyFromScalar(priv)
	skBytes := sk.Bytes()
	xonlyX := xonly.X
	xonlyX.normalize()
	xonlyBytes := xonlyX.Bytes()

	nonce32 := bip340Nonce(skBytes[:], msg32, xonlyBytes[:], auxRand32)
	var k Scalar
	_, _ = k.SetBytes(nonce32[:])
	if k.IsZero() {
		return nil, core.ErrInvalidSignature
	}

	var rj Jacobian
	MultiplyGenerator(&rj, &k)
	var r Affine
	r.ToAffine(&rj)
	r.y.normalize()
	if r.y.IsOdd() {
		k.Negate(&k)
		MultiplyGenerator(&rj, &k)
		r.ToAffine(&rj)
	}
	r.x.normalize()
	rBytes := r.x.Bytes()

	e := challengeScalar(rBytes[:], xonlyBytes[:], msg32)

	var sig SchnorrSignature
	sig.R = r.x
	sig.S.Mul(&e, &sk)
	sig.S.Add(&sig.S, &k)
	return &sig, nil
}

func challengeScalar(r, xonly, msg []byte) Scalar {
	h := hash.TaggedHash(bip340ChallengeTag, r, xonly, msg)
	var e Scalar
	e.FromBytesReduced(h[:])
	return e
}

// SchnorrVerify verifies a BIP-340 signature over a 32-byte message against
// an x-only public key.
func SchnorrVerify(msg32 []byte, sig *SchnorrSignature, pub *XOnlyPubkey) bool {
	if len(msg32) != 32 {
		return false
	}
	if !lessUint256(sig.S.d, groupOrder) {
		return false
	}

	var p Affine
	px := pub.X
	px.normalize()
	if !p.SetXOdd(&px, false) {
		return false
	}

	rBytes := sig.R.Bytes()
	xonlyBytes := px.Bytes()
	e := challengeScalar(rBytes[:], xonlyBytes[:], msg32)
	e.Negate(&e)

	var sG, candidate Jacobian
	MultiplyVar(&sG, &sig.S, &Generator)
	var negEP Jacobian
	MultiplyVar(&negEP, &e, &p)
	candidate.AddVar(&sG, &negEP)

	if candidate.infinity {
		return false
	}
	var rAff Affine
	rAff.ToAffine(&candidate)
	rAff.y.normalize()
	if rAff.y.IsOdd() {
		return false
	}
	rAff.x.normalize()
	return rAff.x.Equal(&sig.R)
}

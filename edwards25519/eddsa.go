package edwards25519

import (
	"crypto/sha512"

	"curvekit.dev/ecc/core"
)

// PrivateKey is an expanded Ed25519 private key: the original 32-byte
// seed plus its SHA-512 expansion into a clamped scalar and a nonce
// prefix, per RFC 8032 section 5.1.5.
type PrivateKey struct {
	seed   [32]byte
	scalar Scalar
	prefix [32]byte
	pubEnc [32]byte
	pub    Point
}

// Seed returns the original 32-byte seed this key was derived from.
func (k *PrivateKey) Seed() [32]byte { return k.seed }

// Public returns the public point s*B.
func (k *PrivateKey) Public() *Point { return &k.pub }

// PublicBytes returns the 32-byte compressed encoding of the public point.
func (k *PrivateKey) PublicBytes() [32]byte { return k.pubEnc }

// expand derives scalar, prefix, pub and pubEnc from seed, per RFC 8032's
// "INTERNAL: secret expansion" step, grounded in agl ed25519 ref.go's
// GenerateKey.
func (k *PrivateKey) expand() error {
	h := sha512.Sum512(k.seed[:])
	if err := k.scalar.SetClamped(h[:32]); err != nil {
		return err
	}
	copy(k.prefix[:], h[32:])
	k.pub = *MultiplyGenerator(&k.scalar)
	copy(k.pubEnc[:], k.pub.Bytes())
	return nil
}

// NewPrivateKeyFromSeed expands a 32-byte seed into a full private key.
func NewPrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != 32 {
		return nil, core.ErrInvalidEncoding
	}
	var k PrivateKey
	copy(k.seed[:], seed)
	if err := k.expand(); err != nil {
		return nil, err
	}
	return &k, nil
}

// GenerateKey draws a random 32-byte seed from rng and expands it.
func GenerateKey(rng core.RNG) (*PrivateKey, error) {
	var seed [32]byte
	rng.FillBytes(seed[:])
	return NewPrivateKeyFromSeed(seed[:])
}

// Signature is a detached Ed25519 signature (R, S).
type Signature struct {
	R [32]byte
	S [32]byte
}

// Bytes returns the 64-byte wire encoding R || S.
func (sig *Signature) Bytes() []byte {
	out := make([]byte, 64)
	copy(out[:32], sig.R[:])
	copy(out[32:], sig.S[:])
	return out
}

// SignatureFromBytes parses a 64-byte R || S signature.
func SignatureFromBytes(b []byte) (*Signature, error) {
	if len(b) != 64 {
		return nil, core.ErrInvalidEncoding
	}
	var sig Signature
	copy(sig.R[:], b[:32])
	copy(sig.S[:], b[32:])
	return &sig, nil
}

// Sign produces a deterministic Ed25519 signature over message, per
// RFC 8032 section 5.1.6.
func Sign(message []byte, priv *PrivateKey) (*Signature, error) {
	h := sha512.New()
	h.Write(priv.prefix[:])
	h.Write(message)
	var rDigest Scalar
	if err := rDigest.SetUniformBytes(h.Sum(nil)); err != nil {
		return nil, err
	}

	R := MultiplyGenerator(&rDigest)
	rEnc := R.Bytes()

	h2 := sha512.New()
	h2.Write(rEnc)
	h2.Write(priv.pubEnc[:])
	h2.Write(message)
	var k Scalar
	if err := k.SetUniformBytes(h2.Sum(nil)); err != nil {
		return nil, err
	}

	var s Scalar
	s.Mul(&k, &priv.scalar)
	s.Add(&s, &rDigest)

	var sig Signature
	copy(sig.R[:], rEnc)
	copy(sig.S[:], s.Bytes())
	return &sig, nil
}

// Verify reports whether sig is a valid Ed25519 signature over message
// under the public key encoded by pubBytes.
func Verify(message []byte, sig *Signature, pubBytes []byte) bool {
	A, err := DecodePoint(pubBytes)
	if err != nil {
		return false
	}
	R, err := DecodePoint(sig.R[:])
	if err != nil {
		return false
	}
	var s Scalar
	if err := s.SetCanonicalBytes(sig.S[:]); err != nil {
		return false
	}

	h := sha512.New()
	h.Write(sig.R[:])
	h.Write(pubBytes)
	h.Write(message)
	var k Scalar
	if err := k.SetUniformBytes(h.Sum(nil)); err != nil {
		return false
	}

	var negK Scalar
	negK.Negate(&k)

	// Checks S*B == R + k*A by computing S*B - k*A and comparing to R.
	candidate := DoubleMultiplyGeneratorVar(&negK, A, &s)
	return candidate.Equal(R)
}

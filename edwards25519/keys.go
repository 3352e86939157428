package edwards25519

import (
	"crypto/sha512"

	"curvekit.dev/ecc/core"
)

// ValidatePrivate reports whether priv carries a usable signing scalar:
// nonzero and producing a non-identity public point. Both should always
// hold for any key produced by GenerateKey or NewPrivateKeyFromSeed; this
// exists for callers receiving a PrivateKey from elsewhere.
func ValidatePrivate(priv *PrivateKey) error {
	if priv.scalar.IsZero() {
		return core.ErrInvalidPrivateKey
	}
	if priv.pub.IsIdentity() {
		return core.ErrInvalidPrivateKey
	}
	return nil
}

// TweakAdd returns a key whose scalar is priv's expanded scalar plus
// tweak, BIP32/Taproot-style. Ed25519 private keys are seeds, not bare
// scalars: RFC 8032 derives both the signing scalar and the nonce prefix
// by hashing the seed, and a tweaked scalar has no seed that would
// re-expand to it. The returned key's Seed() is therefore the zero
// value and must not be used; a fresh nonce prefix is instead derived
// deterministically from the tweaked scalar so Sign stays deterministic.
func TweakAdd(priv *PrivateKey, tweak *Scalar) (*PrivateKey, error) {
	var newScalar Scalar
	newScalar.Add(&priv.scalar, tweak)
	if newScalar.IsZero() {
		return nil, core.ErrInvalidPrivateKey
	}

	var out PrivateKey
	out.scalar = newScalar
	h := sha512.New()
	h.Write([]byte("curvekit-ed25519-tweak-prefix-v1:"))
	h.Write(newScalar.Bytes())
	prefixDigest := h.Sum(nil)
	copy(out.prefix[:], prefixDigest[:32])
	out.pub = *MultiplyGenerator(&newScalar)
	copy(out.pubEnc[:], out.pub.Bytes())
	return &out, nil
}

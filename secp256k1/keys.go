package secp256k1

import (
	"curvekit.dev/ecc/core"
)

// GenerateKey draws a uniformly random valid private scalar from rng,
// grounded in mleku-p256k1/eckey.go's ECSeckeyGenerate.
func GenerateKey(rng core.RNG) *Scalar {
	var k Scalar
	k.Random(rng.FillBytes)
	return &k
}

// PublicFromPrivate computes priv*G in affine coordinates.
func PublicFromPrivate(priv *Scalar) *Affine {
	var pj Jacobian
	MultiplyGenerator(&pj, priv)
	var p Affine
	p.ToAffine(&pj)
	return &p
}

// ValidatePrivate reports whether k is a valid ECDSA/Schnorr private
// scalar: nonzero and less than the group order.
func ValidatePrivate(k *Scalar) error {
	if k.IsZero() {
		return core.ErrInvalidPrivateKey
	}
	return nil
}

// TweakAdd returns priv + tweak mod n, grounded in
// mleku-p256k1/eckey.go's ECSeckeyTweakAdd (BIP-32/Taproot-style key
// tweaking).
func TweakAdd(priv *Scalar, tweak *Scalar) (*Scalar, error) {
	var out Scalar
	out.Add(priv, tweak)
	if out.IsZero() {
		return nil, core.ErrInvalidPrivateKey
	}
	return &out, nil
}

package p256

import (
	"curvekit.dev/ecc/core"
)

// GenerateKey draws a uniformly random valid private scalar from rng.
func GenerateKey(rng core.RNG) *Scalar {
	var k Scalar
	k.Random(rng.FillBytes)
	return &k
}

// PublicFromPrivate computes priv*G in affine coordinates.
func PublicFromPrivate(priv *Scalar) (*Affine, error) {
	return MultiplyGenerator(priv)
}

// ValidatePrivate reports whether k is a valid ECDSA/ECDH private scalar:
// nonzero and less than the group order.
func ValidatePrivate(k *Scalar) error {
	if k.IsZero() {
		return core.ErrInvalidPrivateKey
	}
	return nil
}

// TweakAdd returns priv + tweak mod n.
func TweakAdd(priv *Scalar, tweak *Scalar) (*Scalar, error) {
	var out Scalar
	out.Add(priv, tweak)
	if out.IsZero() {
		return nil, core.ErrInvalidPrivateKey
	}
	return &out, nil
}

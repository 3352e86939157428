package secp256k1

import (
	sha256simd "github.com/minio/sha256-simd"

	"curvekit.dev/ecc/core"
	"curvekit.dev/ecc/hash"
)

// ECDH computes the raw shared point priv*pub, then derives key material
// from its x coordinate via HKDF-SHA256, grounded in mleku-p256k1/ecdh.go's
// ECDHHashFunction hook but using a real KDF instead of a bare SHA-256 of
// (x||y).
func ECDH(priv *Scalar, pub *Affine, info []byte, outLen int) ([]byte, error) {
	if priv.IsZero() {
		return nil, core.ErrInvalidPrivateKey
	}
	if pub.infinity || !pub.IsOnCurve() {
		return nil, core.ErrInvalidPublicKey
	}

	var shared Jacobian
	Multiply(&shared, priv, pub)
	var sharedAff Affine
	sharedAff.ToAffine(&shared)
	if sharedAff.infinity {
		return nil, core.ErrKeyExchangeError
	}

	sharedAff.x.normalize()
	xb := sharedAff.x.Bytes()

	return hash.HKDFExtractAndExpand(sha256simd.New, xb[:], nil, info, outLen)
}

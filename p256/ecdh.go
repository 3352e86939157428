package p256

import (
	"crypto/ecdh"

	sha256simd "github.com/minio/sha256-simd"

	"curvekit.dev/ecc/core"
	"curvekit.dev/ecc/hash"
)

// ECDH computes the P-256 Diffie-Hellman shared point via crypto/ecdh, then
// derives key material from its x coordinate via HKDF-SHA256, grounded on
// open-move-sui-go-sdk secp256r1-keypair.go's use of crypto/ecdh for the
// group operation.
func ECDH(priv *Scalar, pub *Affine, info []byte, outLen int) ([]byte, error) {
	if priv.IsZero() {
		return nil, core.ErrInvalidPrivateKey
	}
	if pub.infinity || !pub.IsOnCurve() {
		return nil, core.ErrInvalidPublicKey
	}

	privBytes := priv.Bytes()
	ecdhPriv, err := ecdh.P256().NewPrivateKey(privBytes[:])
	if err != nil {
		return nil, core.ErrInvalidPrivateKey
	}
	ecdhPub, err := ecdh.P256().NewPublicKey(pub.Bytes())
	if err != nil {
		return nil, core.ErrInvalidPublicKey
	}

	shared, err := ecdhPriv.ECDH(ecdhPub)
	if err != nil {
		return nil, core.ErrKeyExchangeError
	}

	return hash.HKDFExtractAndExpand(sha256simd.New, shared, nil, info, outLen)
}

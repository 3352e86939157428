package eddsa

import (
	"curvekit.dev/ecc/core"
	"curvekit.dev/ecc/edwards25519"
)

// PrivateKey is an Ed25519 signing key.
type PrivateKey = edwards25519.PrivateKey

// Signature is an Ed25519 signature.
type Signature = edwards25519.Signature

// GenerateKey draws a fresh Ed25519 key pair from rng.
func GenerateKey(rng core.RNG) (*PrivateKey, error) {
	return edwards25519.GenerateKey(rng)
}

// Sign produces a deterministic EdDSA signature over message.
func Sign(message []byte, priv *PrivateKey) (*Signature, error) {
	return edwards25519.Sign(message, priv)
}

// Verify reports whether sig is a valid signature over message by the
// 32-byte compressed public key pubBytes.
func Verify(message []byte, sig *Signature, pubBytes []byte) bool {
	return edwards25519.Verify(message, sig, pubBytes)
}

// BatchVerify reports whether every (message, signature, public key)
// triple verifies.
func BatchVerify(messages [][]byte, sigs []*Signature, pubs [][]byte) bool {
	if len(messages) != len(sigs) || len(sigs) != len(pubs) {
		return false
	}
	for i := range sigs {
		if !Verify(messages[i], sigs[i], pubs[i]) {
			return false
		}
	}
	return true
}

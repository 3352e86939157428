package schnorr

import (
	"curvekit.dev/ecc/secp256k1"
)

// Signature is a BIP-340 64-byte Schnorr signature.
type Signature = secp256k1.SchnorrSignature

// XOnlyPubkey is a BIP-340 32-byte x-only public key.
type XOnlyPubkey = secp256k1.XOnlyPubkey

// XOnlyFromScalar derives the BIP-340 x-only public key and the possibly
// negated private scalar for priv.
func XOnlyFromScalar(priv *secp256k1.Scalar) (*XOnlyPubkey, secp256k1.Scalar) {
	return secp256k1.XOnlyFromScalar(priv)
}

// Sign produces a BIP-340 signature over a 32-byte message, using
// auxRand32 (may be nil) as auxiliary randomness for nonce generation.
func Sign(msg32 []byte, priv *secp256k1.Scalar, auxRand32 []byte) (*Signature, error) {
	return secp256k1.SchnorrSign(msg32, priv, auxRand32)
}

// Verify reports whether sig is a valid BIP-340 signature over msg32
// against the x-only public key pub.
func Verify(msg32 []byte, sig *Signature, pub *XOnlyPubkey) bool {
	return secp256k1.SchnorrVerify(msg32, sig, pub)
}

// BatchVerify reports whether every (message, signature, public key)
// triple verifies.
func BatchVerify(msgs32 [][]byte, sigs []*Signature, pubs []*XOnlyPubkey) bool {
	if len(msgs32) != len(sigs) || len(sigs) != len(pubs) {
		return false
	}
	for i := range sigs {
		if !Verify(msgs32[i], sigs[i], pubs[i]) {
			return false
		}
	}
	return true
}

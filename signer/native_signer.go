package signer

import (
	"curvekit.dev/ecc/core"
	"curvekit.dev/ecc/rng"
	"curvekit.dev/ecc/secp256k1"
)

// NativeSigner implements I using this module's own secp256k1 package for
// BIP-340 Schnorr signing/verification and ECDH. Grounded on
// mleku-p256k1/signer/p256k1_signer.go's P256K1Signer, including its
// even-Y-coordinate normalization on key generation and loading so that
// Pub() always returns the x-only key matching Sec()'s scalar.
type NativeSigner struct {
	sec secp256k1.Scalar
	pub secp256k1.XOnlyPubkey
}

var _ I = (*NativeSigner)(nil)

// NewNativeSigner returns an empty NativeSigner ready for Generate, InitSec,
// or InitPub.
func NewNativeSigner() I {
	return &NativeSigner{}
}

// Generate draws a fresh key pair, normalizing the private scalar so its
// public key has even y per BIP-340.
func (s *NativeSigner) Generate() error {
	priv := secp256k1.GenerateKey(rng.Default)
	xonly, adjusted := secp256k1.XOnlyFromScalar(priv)
	s.sec = adjusted
	s.pub = *xonly
	return nil
}

// InitSec loads a 32-byte big-endian private scalar, negating it if needed
// so the derived public key has even y, mirroring p256k1_signer.go's
// InitSec.
func (s *NativeSigner) InitSec(sec []byte) error {
	var k secp256k1.Scalar
	inRange, err := k.SetBytes(sec)
	if err != nil {
		return err
	}
	if !inRange || k.IsZero() {
		return core.ErrInvalidPrivateKey
	}
	xonly, adjusted := secp256k1.XOnlyFromScalar(&k)
	s.sec = adjusted
	s.pub = *xonly
	return nil
}

// InitPub loads a 32-byte BIP-340 x-only public key, leaving the private
// scalar zeroed (a verify-only signer).
func (s *NativeSigner) InitPub(pub []byte) error {
	if len(pub) != 32 {
		return core.ErrInvalidEncoding
	}
	var x secp256k1.FieldElement
	if err := x.SetBytes(pub); err != nil {
		return err
	}
	compressed := append([]byte{0x02}, pub...)
	if _, err := secp256k1.DecodePoint(compressed); err != nil {
		return err
	}
	s.sec = secp256k1.ScalarZero
	s.pub = secp256k1.XOnlyPubkey{X: x}
	return nil
}

// Sec returns the 32-byte big-endian private scalar.
func (s *NativeSigner) Sec() []byte {
	b := s.sec.Bytes()
	return b[:]
}

// Pub returns the 32-byte BIP-340 x-only public key.
func (s *NativeSigner) Pub() []byte {
	x := s.pub.X
	b := x.Bytes()
	return b[:]
}

// Sign produces a BIP-340 signature over a 32-byte message digest.
func (s *NativeSigner) Sign(msg []byte) ([]byte, error) {
	sig, err := secp256k1.SchnorrSign(msg, &s.sec, nil)
	if err != nil {
		return nil, err
	}
	rb := sig.R.Bytes()
	sb := sig.S.Bytes()
	out := make([]byte, 64)
	copy(out[:32], rb[:])
	copy(out[32:], sb[:])
	return out, nil
}

// Verify reports whether sig is a valid BIP-340 signature over msg by this
// signer's public key.
func (s *NativeSigner) Verify(msg, sig []byte) (bool, error) {
	if len(sig) != 64 {
		return false, core.ErrInvalidEncoding
	}
	var r secp256k1.FieldElement
	if err := r.SetBytes(sig[:32]); err != nil {
		return false, err
	}
	var sc secp256k1.Scalar
	if _, err := sc.SetBytes(sig[32:]); err != nil {
		return false, err
	}
	schnorrSig := &secp256k1.SchnorrSignature{R: r, S: sc}
	return secp256k1.SchnorrVerify(msg, schnorrSig, &s.pub), nil
}

// Zero wipes the private scalar, matching p256k1_signer.go's Zero.
func (s *NativeSigner) Zero() {
	s.sec = secp256k1.ScalarZero
}

// ECDH derives a shared secret with the peer's x-only public key pub,
// reconstructing its even-y affine point before calling secp256k1.ECDH.
func (s *NativeSigner) ECDH(pub []byte) ([]byte, error) {
	if len(pub) != 32 {
		return nil, core.ErrInvalidEncoding
	}
	compressed := append([]byte{0x02}, pub...)
	peer, err := secp256k1.DecodePoint(compressed)
	if err != nil {
		return nil, err
	}
	return secp256k1.ECDH(&s.sec, peer, nil, 32)
}

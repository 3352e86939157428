package signer

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"curvekit.dev/ecc/core"
)

// BtcecSigner implements I using github.com/btcsuite/btcd/btcec/v2, a
// widely-audited independent secp256k1 implementation, for
// differential-testing this module's NativeSigner against. Grounded
// directly on mleku-p256k1/signer/btcec_signer.go, including its
// even-Y-coordinate normalization on Generate/InitSec.
type BtcecSigner struct {
	privKey   *btcec.PrivateKey
	pubKey    *btcec.PublicKey
	xonlyPub  []byte
	hasSecret bool
}

var _ I = (*BtcecSigner)(nil)

// NewBtcecSigner returns an empty BtcecSigner ready for Generate, InitSec,
// or InitPub.
func NewBtcecSigner() I {
	return &BtcecSigner{}
}

// Generate draws a fresh key pair, negating the private key if needed so
// the public key has even y.
func (s *BtcecSigner) Generate() error {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return err
	}
	s.setFromPrivate(privKey)
	return nil
}

// InitSec loads a 32-byte private scalar, negating it if needed so the
// derived public key has even y.
func (s *BtcecSigner) InitSec(sec []byte) error {
	if len(sec) != 32 {
		return core.ErrInvalidEncoding
	}
	privKey, _ := btcec.PrivKeyFromBytes(sec)
	s.setFromPrivate(privKey)
	return nil
}

func (s *BtcecSigner) setFromPrivate(privKey *btcec.PrivateKey) {
	pubKey := privKey.PubKey()
	if pubKey.SerializeCompressed()[0] == 0x03 {
		scalar := privKey.Key
		scalar.Negate()
		privKey = &btcec.PrivateKey{Key: scalar}
		pubKey = privKey.PubKey()
	}
	s.privKey = privKey
	s.pubKey = pubKey
	s.xonlyPub = schnorr.SerializePubKey(pubKey)
	s.hasSecret = true
}

// InitPub loads a 32-byte BIP-340 x-only public key, leaving this signer
// verify-only.
func (s *BtcecSigner) InitPub(pub []byte) error {
	if len(pub) != 32 {
		return core.ErrInvalidEncoding
	}
	pubKey, err := schnorr.ParsePubKey(pub)
	if err != nil {
		return err
	}
	s.pubKey = pubKey
	s.xonlyPub = pub
	s.privKey = nil
	s.hasSecret = false
	return nil
}

// Sec returns the 32-byte private scalar, or nil if this signer is
// verify-only.
func (s *BtcecSigner) Sec() []byte {
	if !s.hasSecret || s.privKey == nil {
		return nil
	}
	return s.privKey.Serialize()
}

// Pub returns the 32-byte BIP-340 x-only public key.
func (s *BtcecSigner) Pub() []byte {
	return s.xonlyPub
}

// Sign produces a BIP-340 signature over a 32-byte message digest.
func (s *BtcecSigner) Sign(msg []byte) ([]byte, error) {
	if !s.hasSecret || s.privKey == nil {
		return nil, core.ErrInvalidPrivateKey
	}
	if len(msg) != 32 {
		return nil, core.ErrInvalidEncoding
	}
	sig, err := schnorr.Sign(s.privKey, msg)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

// Verify reports whether sig is a valid BIP-340 signature over msg by this
// signer's public key.
func (s *BtcecSigner) Verify(msg, sig []byte) (bool, error) {
	if s.pubKey == nil {
		return false, core.ErrInvalidPublicKey
	}
	if len(msg) != 32 || len(sig) != 64 {
		return false, core.ErrInvalidEncoding
	}
	signature, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false, err
	}
	return signature.Verify(msg, s.pubKey), nil
}

// Zero wipes the private key.
func (s *BtcecSigner) Zero() {
	if s.privKey != nil {
		s.privKey.Zero()
		s.privKey = nil
	}
	s.hasSecret = false
	s.pubKey = nil
	s.xonlyPub = nil
}

// ECDH derives a shared secret with the peer's x-only public key pub via
// btcec.GenerateSharedSecret.
func (s *BtcecSigner) ECDH(pub []byte) ([]byte, error) {
	if !s.hasSecret || s.privKey == nil {
		return nil, core.ErrInvalidPrivateKey
	}
	if len(pub) != 32 {
		return nil, core.ErrInvalidEncoding
	}
	pubKey, err := schnorr.ParsePubKey(pub)
	if err != nil {
		return nil, err
	}
	return btcec.GenerateSharedSecret(s.privKey, pubKey), nil
}

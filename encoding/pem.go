package encoding

import (
	"encoding/pem"

	"curvekit.dev/ecc/core"
)

// PEM block types, matching what OpenSSL writes for SEC1/SPKI keys and what
// original_source/examples/openssl_interop.rs names in its PEM headers.
const (
	PEMTypeECPrivateKey = "EC PRIVATE KEY"
	PEMTypePublicKey    = "PUBLIC KEY"
)

// EncodePEM armors der under the given PEM block type.
func EncodePEM(blockType string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
}

// DecodePEM strips PEM armor, checking the block type matches wantType, and
// returns the enclosed DER bytes.
func DecodePEM(wantType string, data []byte) ([]byte, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != wantType {
		return nil, core.ErrInvalidEncoding
	}
	return block.Bytes, nil
}

// EncodeECPrivateKeyPEM marshals and PEM-armors a SEC1 ECPrivateKey, the
// same "EC PRIVATE KEY" header openssl_interop.rs documents as
// OpenSSL-compatible.
func EncodeECPrivateKeyPEM(curve Curve, scalar, publicKey []byte) ([]byte, error) {
	der, err := MarshalECPrivateKey(curve, scalar, publicKey)
	if err != nil {
		return nil, err
	}
	return EncodePEM(PEMTypeECPrivateKey, der), nil
}

// DecodeECPrivateKeyPEM reverses EncodeECPrivateKeyPEM.
func DecodeECPrivateKeyPEM(data []byte) (*ParsedECPrivateKey, error) {
	der, err := DecodePEM(PEMTypeECPrivateKey, data)
	if err != nil {
		return nil, err
	}
	return ParseECPrivateKey(der)
}

// EncodeECPublicKeyPEM marshals and PEM-armors a SubjectPublicKeyInfo, the
// "PUBLIC KEY" header OpenSSL writes for "openssl ec -pubout".
func EncodeECPublicKeyPEM(curve Curve, publicKey []byte) ([]byte, error) {
	der, err := MarshalECPublicKey(curve, publicKey)
	if err != nil {
		return nil, err
	}
	return EncodePEM(PEMTypePublicKey, der), nil
}

// DecodeECPublicKeyPEM reverses EncodeECPublicKeyPEM.
func DecodeECPublicKeyPEM(data []byte) (*ParsedECPublicKey, error) {
	der, err := DecodePEM(PEMTypePublicKey, data)
	if err != nil {
		return nil, err
	}
	return ParseECPublicKey(der)
}

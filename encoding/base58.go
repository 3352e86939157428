package encoding

import (
	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/mr-tron/base58"

	"curvekit.dev/ecc/core"
)

// Base58 encodes payload with the Bitcoin Base58 alphabet, grounded in the
// other_examples walletgen address.go pattern of wrapping a third-party
// base58 codec rather than hand-rolling the big-integer division.
func Base58(payload []byte) string {
	return base58.Encode(payload)
}

// Base58Decode reverses Base58.
func Base58Decode(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, core.ErrInvalidEncoding
	}
	return b, nil
}

// Base58Check encodes version||payload with a 4-byte double-SHA256
// checksum appended before Base58, the WIF/address encoding every Bitcoin
// descendant (including secp256k1 key export) uses. The checksum step uses
// chainhash.DoubleHashB rather than a hand-rolled double SHA-256.
func Base58Check(version byte, payload []byte) string {
	body := make([]byte, 0, 1+len(payload)+4)
	body = append(body, version)
	body = append(body, payload...)
	checksum := chainhash.DoubleHashB(body)
	body = append(body, checksum[:4]...)
	return base58.Encode(body)
}

// Base58CheckDecode reverses Base58Check, verifying the checksum and
// splitting off the version byte.
func Base58CheckDecode(s string) (version byte, payload []byte, err error) {
	body, err := base58.Decode(s)
	if err != nil {
		return 0, nil, core.ErrInvalidEncoding
	}
	if len(body) < 5 {
		return 0, nil, core.ErrInvalidEncoding
	}
	data, checksum := body[:len(body)-4], body[len(body)-4:]
	want := chainhash.DoubleHashB(data)
	for i := 0; i < 4; i++ {
		if checksum[i] != want[i] {
			return 0, nil, core.ErrInvalidEncoding
		}
	}
	return data[0], data[1:], nil
}

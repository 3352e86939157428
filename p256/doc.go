// Package p256 implements NIST P-256 (secp256r1) ECDSA and ECDH on top of
// the standard library's crypto/ecdh and crypto/elliptic, grounded in
// other_examples' Dustin-Ray-secp256r1_ecdsa and open-move-sui-go-sdk
// secp256r1-keypair.go.
//
// Unlike secp256k1 (for which no constant-time standard-library
// implementation exists, forcing this module to carry its own field/point
// arithmetic), the Go standard library already ships an audited,
// constant-time P-256 scalar multiplication in crypto/ecdh. Re-implementing
// that arithmetic by hand here would just be a worse copy of code the
// runtime already provides, so this package uses crypto/ecdh.P256() for all
// point-group operations and math/big (scoped to the curve order) for
// scalar field arithmetic, the same division of labor open-move-sui's
// secp256r1 keypair code uses.
package p256

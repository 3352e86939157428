// Package h2c implements the hash-to-curve building blocks from RFC 9380:
// expand_message-driven hash_to_field, and the three point-encoding maps
// the RFC standardizes (Simplified SWU, Icart, and Elligator 2). The maps
// use ordinary uint256 arithmetic, and MapSSWU and MapElligator2 choose
// between candidate values with if-statements, so they are not
// constant-time.
//
// hash_to_field's wide-to-field reduction is built on
// github.com/holiman/uint256 rather than math/big: every curve this module
// cares about (secp256k1, P-256) has a 256-bit prime field, and uint256's
// MulMod gives a fixed-size, allocation-free modular multiply instead of
// math/big's arbitrary-precision one. The generic reduction loop is
// grounded on the expand_message_xmd/hash_to_field split in
// wyf-ACCEPT-eth2030's pkg/crypto/hash_to_curve.go (there specialized to
// BLS12-381 over math/big); this package generalizes the same shape to any
// 256-bit modulus via uint256 instead.
//
// The maps themselves (MapSSWU, MapIcart, MapElligator2) are parameterized
// over curve constants (A, B, Z, p) rather than hardwired to one curve, so
// a concrete curve package supplies its own constants and decides which
// map its RFC 9380 suite calls for: MapSSWU for curves with nonzero A, B
// (directly, or via an isogenous curve plus the curve's own isogeny map),
// MapIcart for curves over a field with p = 2 mod 3, MapElligator2 for
// Montgomery-form curves over a field with p = 3 mod 4. curve25519's field
// (2^255-19 = 1 mod 4) does not qualify, and neither the curve25519 nor the
// edwards25519 package offers a hash-to-curve map. MapSSWU's shape is grounded on
// wyf-ACCEPT-eth2030's SimplifiedSWU (written there for BLS12-381's G1);
// MapElligator2's shape is grounded on Yawning-edwards25519-extra's
// elligator2.go.
package h2c

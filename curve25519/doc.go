// Package curve25519 implements X25519 (RFC 7748) Diffie-Hellman key
// agreement over the Montgomery curve v^2 = u^3 + 486662*u^2 + u in F_p,
// p = 2^255 - 19.
//
// The Montgomery ladder itself is not hand-rolled here: this package
// wraps golang.org/x/crypto/curve25519, which is already a pinned
// dependency (it ships inside the golang.org/x/crypto module every other
// package in this tree also draws HKDF and other primitives from) and is
// the audited, constant-time reference implementation the broader Go
// ecosystem standardizes on for X25519 — the same role crypto/ecdh.P256()
// plays for the p256 package. stirlingx001-curve25519-voi's x25519.go
// grounds the function-level shape (a scalar/point-bytes X25519 entry
// point, clamping, and low-order-point rejection) without its dependency
// on a second, independent from-scratch curve25519 implementation
// (curve25519-voi), which would duplicate what x/crypto/curve25519
// already provides correctly.
package curve25519

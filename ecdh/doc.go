// Package ecdh is the curve-agnostic facade over this module's three
// Diffie-Hellman implementations (secp256k1.ECDH, p256.ECDH,
// curve25519.ECDH). A caller picks a Curve and gets one DeriveSharedSecret
// entry point regardless of which concrete key type backs it, the way
// crypto/ecdh itself unifies NIST curves and X25519 behind one ecdh.Curve
// interface — the difference being this module also exposes each curve's
// native key type directly, rather than only the unified one, since
// secp256k1 and the Schnorr/ECDSA code elsewhere in this module need the
// concrete Scalar/Affine types on their own signing paths.
package ecdh

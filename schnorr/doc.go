// Package schnorr is the curve-agnostic facade over this module's BIP-340
// Schnorr implementation (secp256k1.SchnorrSign/SchnorrVerify). BIP-340 is
// specific to secp256k1 (it relies on that curve's x-only public key and
// even-y conventions), so unlike ecdsa this facade has exactly one
// backend; it exists to keep the "a caller imports one signature-scheme
// package" shape consistent across ecdsa, eddsa, and schnorr.
package schnorr

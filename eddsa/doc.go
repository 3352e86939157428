// Package eddsa is the curve-agnostic facade over this module's Ed25519
// implementation (edwards25519.PrivateKey/Sign/Verify). It exists for the
// same reason ecdsa and schnorr do: so a caller working in terms of "a
// signature scheme" rather than "a specific curve package" has one import
// to reach for. RFC 8032 only standardizes EdDSA over edwards25519 and
// Ed448; this module implements the former, so today's facade has exactly
// one backend to dispatch to.
package eddsa

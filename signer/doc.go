// Package signer abstracts the signature algorithm from its usage behind
// one interface, I, so calling code can hold a single value instead of a
// concrete key type.
//
// mleku-p256k1/signer defines this same shape as a pair of aliases onto
// next.orly.dev/pkg/interfaces/signer.I/Gen, so its own package is a
// drop-in replacement for that external project's signer interface. This
// module has no next.orly.dev dependency to be a drop-in replacement for,
// so I is defined natively here instead of aliased, with the same method
// set mleku-p256k1/signer/p256k1_signer.go and btcec_signer.go implement
// (Generate, InitSec, InitPub, Sec, Pub, Sign, Verify, Zero, ECDH).
//
// Two backends implement I: NativeSigner (this module's own secp256k1
// BIP-340 Schnorr implementation, grounded on
// mleku-p256k1/signer/p256k1_signer.go) and BtcecSigner (a cross-check
// backend over github.com/btcsuite/btcd/btcec/v2, grounded on
// mleku-p256k1/signer/btcec_signer.go) — the same native-vs-btcec pairing
// mleku-p256k1 itself offers, useful for differential testing and for
// callers that specifically want the widely-audited btcec
// implementation.
package signer

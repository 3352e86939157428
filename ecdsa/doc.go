// Package ecdsa is the curve-agnostic facade over this module's per-curve
// ECDSA implementations (secp256k1.Sign/Verify, p256.Sign/Verify): a
// caller that only knows "which curve" rather than which concrete Go type
// backs it gets one PrivateKey/PublicKey pair and one Sign/Verify/
// BatchVerify entry point, the way mleku-p256k1's signer package lets a
// caller hold a single interface value instead of a concrete secp256k1
// key. Unlike that package, this one is a dispatcher over two concrete
// backends rather than a single-curve interface, since this module (unlike
// mleku-p256k1) implements more than one curve.
package ecdsa

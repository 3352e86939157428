// Package core defines the small interfaces shared by this module's curve
// packages (FieldElement, Scalar, PointAffine, RNG) and the error taxonomy
// shared across the whole library.
//
// The point and scalar interfaces serve as documentation and, for
// PointAffine, as compile-time conformance checks in the secp256k1 and p256
// packages. Concrete curve packages do not dispatch through
// these interfaces on their hot paths: scalar multiplication and field
// arithmetic are monomorphic, matching how mleku-p256k1 and the rest of the
// pack are written.
package core

import "errors"

// Error is a comparable, string-backed error type in the style of
// ModChain-secp256k1's error2.go sentinel errors: every distinct failure
// mode gets its own wrappable sentinel.
type Error string

func (e Error) Error() string { return string(e) }

// Sentinel errors shared across every curve package.
const (
	// ErrInvalidEncoding covers malformed bytes: wrong length, bad prefix,
	// a non-canonical field element (>= p) or scalar (>= n), or a
	// structural DER/Base58/PEM violation.
	ErrInvalidEncoding = Error("ecc: invalid encoding")

	// ErrPointNotOnCurve is returned when a decoded (x, y) fails the curve
	// equation, or square-root recovery of y hits a non-residue.
	ErrPointNotOnCurve = Error("ecc: point not on curve")

	// ErrInvalidPublicKey covers an identity point, or a point failing
	// subgroup membership.
	ErrInvalidPublicKey = Error("ecc: invalid public key")

	// ErrInvalidPrivateKey covers a scalar that is zero or >= the group order.
	ErrInvalidPrivateKey = Error("ecc: invalid private key")

	// ErrInvalidSignature covers out-of-range (r, s) or a failed
	// verification equation.
	ErrInvalidSignature = Error("ecc: invalid signature")

	// ErrDomainSeparationFailure covers an empty or oversized DST passed to
	// hash-to-curve.
	ErrDomainSeparationFailure = Error("ecc: invalid domain separation tag")

	// ErrInvalidHashToCurveParameters covers an unsupported map/curve pairing.
	ErrInvalidHashToCurveParameters = Error("ecc: unsupported hash-to-curve parameters")

	// ErrKeyExchangeError covers a shared point that reduces to the identity.
	ErrKeyExchangeError = Error("ecc: key exchange produced identity point")
)

// Is allows errors.Is(err, core.ErrXxx) to match errors wrapped with %w.
func (e Error) Is(target error) bool {
	var ce Error
	if errors.As(target, &ce) {
		return ce == e
	}
	return false
}

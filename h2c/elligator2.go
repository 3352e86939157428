package h2c

import (
	"github.com/holiman/uint256"

	"curvekit.dev/ecc/core"
)

// MapElligator2 implements map_to_curve_elligator2 (RFC 9380 section 6.7.1)
// for a Montgomery curve v^2 = u^3 + A*u^2 + u over F_p (B is fixed at 1,
// matching curve25519's own B=1 normalization), given a non-square Z.
//
// This requires p = 3 mod 4 for the final square root, which holds for
// secp256k1's and P-256's field primes but not for curve25519's own
// (2^255-19 = 1 mod 4), so it cannot be applied to curve25519; the
// curve25519 and edwards25519 packages in this module offer no
// hash-to-curve map. MapElligator2 exists as a
// standalone, independently testable implementation of the RFC's general
// Montgomery-curve suite for any curve that does satisfy p = 3 mod 4.
//
// Grounded on Yawning-edwards25519-extra's elligator2.go, generalized from
// that file's curve25519-specific constants to arbitrary (A, Z, p).
func MapElligator2(p, a, z, t *uint256.Int) (u, v *uint256.Int, err error) {
	four := uint256.NewInt(4)
	if new(uint256.Int).Mod(p, four).Uint64() != 3 {
		return nil, nil, core.ErrInvalidHashToCurveParameters
	}

	tv1 := new(uint256.Int).MulMod(t, t, p)
	tv1 = new(uint256.Int).MulMod(z, tv1, p)

	negOne := subMod(new(uint256.Int), uint256.NewInt(1), p)
	if tv1.Eq(negOne) {
		tv1 = new(uint256.Int)
	}

	x1 := new(uint256.Int).AddMod(tv1, uint256.NewInt(1), p)
	x1 = modInverse(x1, p)
	x1 = subMod(new(uint256.Int), new(uint256.Int).MulMod(a, x1, p), p)

	gx1 := new(uint256.Int).AddMod(x1, a, p)
	gx1 = new(uint256.Int).MulMod(gx1, x1, p)
	gx1 = new(uint256.Int).AddMod(gx1, uint256.NewInt(1), p)
	gx1 = new(uint256.Int).MulMod(gx1, x1, p)

	x2 := subMod(subMod(new(uint256.Int), x1, p), new(uint256.Int).Mod(a, p), p)
	gx2 := new(uint256.Int).MulMod(tv1, gx1, p)

	e2 := isSquare(gx1, p)
	var x, y2 *uint256.Int
	if e2 {
		x, y2 = x1, gx1
	} else {
		x, y2 = x2, gx2
	}

	y := sqrt3mod4(y2, p)
	e3 := sgn0(y) == 1
	if e2 != e3 {
		y = subMod(new(uint256.Int), y, p)
	}

	return x, y, nil
}

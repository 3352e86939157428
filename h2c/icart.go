package h2c

import (
	"github.com/holiman/uint256"

	"curvekit.dev/ecc/core"
)

// subMod computes (a - b) mod p for a, b already in [0, p).
func subMod(a, b, p *uint256.Int) *uint256.Int {
	diff := new(uint256.Int).Add(a, p)
	diff.Sub(diff, b)
	return diff.Mod(diff, p)
}

// MapIcart implements Icart's deterministic encoding (Icart, "How to Hash
// into Elliptic Curves", CRYPTO 2009) for a short Weierstrass curve
// y^2 = x^3 + A*x + B over F_p. It only applies when p = 2 mod 3, which
// makes cube roots computable directly as a^((2p-1)/3); callers must check
// this precondition (ErrInvalidHashToCurveParameters is returned
// otherwise) since neither secp256k1 nor P-256's field prime satisfies it
// — both are covered by MapSSWU instead, which is why RFC 9380 standardizes
// SSWU rather than Icart for them.
func MapIcart(c WeierstrassParams, u *uint256.Int) (x, y *uint256.Int, err error) {
	p := c.P
	three := uint256.NewInt(3)
	if new(uint256.Int).Mod(p, three).Uint64() != 2 {
		return nil, nil, core.ErrInvalidHashToCurveParameters
	}
	if u.IsZero() {
		// Icart's map sends 0 to a curve-dependent fixed point; hash_to_field's
		// output lands on zero with negligible probability, so the degenerate
		// case is rejected rather than special-cased.
		return nil, nil, core.ErrInvalidHashToCurveParameters
	}

	u2 := new(uint256.Int).MulMod(u, u, p)
	u4 := new(uint256.Int).MulMod(u2, u2, p)
	u6 := new(uint256.Int).MulMod(u4, u2, p)

	// v = (3A - u^4) / (6u)
	threeA := new(uint256.Int).MulMod(three, c.A, p)
	num := subMod(threeA, u4, p)
	sixUInv := modInverse(new(uint256.Int).MulMod(uint256.NewInt(6), u, p), p)
	v := new(uint256.Int).MulMod(num, sixUInv, p)

	// w = v^2 - B - u^6/27
	v2 := new(uint256.Int).MulMod(v, v, p)
	u6Over27 := new(uint256.Int).MulMod(u6, modInverse(uint256.NewInt(27), p), p)
	w := subMod(subMod(v2, c.B, p), u6Over27, p)

	// cube root: w^((2p-1)/3), valid since p = 2 mod 3.
	cubeRootExp := new(uint256.Int).Mul(uint256.NewInt(2), p)
	cubeRootExp.Sub(cubeRootExp, uint256.NewInt(1))
	cubeRootExp.Div(cubeRootExp, three)
	wCubeRoot := modExp(w, cubeRootExp, p)

	u2Over3 := new(uint256.Int).MulMod(u2, modInverse(three, p), p)
	x = new(uint256.Int).AddMod(wCubeRoot, u2Over3, p)

	ux := new(uint256.Int).MulMod(u, x, p)
	y = new(uint256.Int).AddMod(ux, v, p)

	return x, y, nil
}

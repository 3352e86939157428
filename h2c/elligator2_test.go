package h2c

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestMapElligator2LandsOnMontgomeryCurve(t *testing.T) {
	c := p256Params(t)
	// Reuse P-256's field (p = 3 mod 4) with an arbitrary Montgomery A and
	// non-square Z, purely to exercise the map's algebra.
	a := uint256.NewInt(2)
	z := subMod(new(uint256.Int), uint256.NewInt(2), c.P)

	for tVal := uint64(1); tVal < 10; tVal++ {
		u, v, err := MapElligator2(c.P, a, z, uint256.NewInt(tVal))
		require.NoError(t, err)

		// v^2 == u^3 + a*u^2 + u  (B fixed at 1)
		lhs := new(uint256.Int).MulMod(v, v, c.P)
		u2 := new(uint256.Int).MulMod(u, u, c.P)
		u3 := new(uint256.Int).MulMod(u2, u, c.P)
		au2 := new(uint256.Int).MulMod(a, u2, c.P)
		rhs := new(uint256.Int).AddMod(u3, au2, c.P)
		rhs = new(uint256.Int).AddMod(rhs, u, c.P)
		require.True(t, lhs.Eq(rhs), "t=%d not on Montgomery curve", tVal)
	}
}

func TestMapElligator2RejectsWrongCongruence(t *testing.T) {
	// curve25519's own field (2^255 - 19) is 1 mod 4, not 3 mod 4 — which
	// is exactly why this module's curve25519/edwards25519 packages wrap
	// filippo.io/edwards25519 instead of calling this generic map.
	p := uint256.MustFromHex("0x7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")
	_, _, err := MapElligator2(p, uint256.NewInt(486662), uint256.NewInt(2), uint256.NewInt(5))
	require.Error(t, err)
}

package h2c

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

// toyIcartCurve is a small curve over a prime field with p = 2 mod 3 (101
// mod 3 == 2), used only to exercise MapIcart's algebra: none of this
// module's real curves (secp256k1, P-256) satisfy Icart's precondition, so
// there is no production (A, B, p) to test against instead.
func toyIcartCurve() WeierstrassParams {
	p := uint256.NewInt(101)
	a := uint256.NewInt(2)
	b := uint256.NewInt(3)
	return WeierstrassParams{P: p, A: a, B: b}
}

func TestMapIcartLandsOnCurve(t *testing.T) {
	c := toyIcartCurve()
	for u := uint64(1); u < 30; u++ {
		x, y, err := MapIcart(c, uint256.NewInt(u))
		require.NoError(t, err)
		lhs := new(uint256.Int).MulMod(y, y, c.P)
		require.True(t, lhs.Eq(c.rhs(x)), "u=%d not on curve", u)
	}
}

func TestMapIcartRejectsWrongCongruence(t *testing.T) {
	// secp256k1's field prime is 1 mod 3, not 2 mod 3.
	p := uint256.MustFromHex("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	c := WeierstrassParams{P: p, A: new(uint256.Int), B: uint256.NewInt(7)}
	_, _, err := MapIcart(c, uint256.NewInt(1))
	require.Error(t, err)
}

func TestMapIcartRejectsZero(t *testing.T) {
	c := toyIcartCurve()
	_, _, err := MapIcart(c, new(uint256.Int))
	require.Error(t, err)
}

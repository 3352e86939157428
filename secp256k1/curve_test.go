package secp256k1

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurveParamsMatchDomainConstants(t *testing.T) {
	c := S256()
	require.Equal(t, "secp256k1", c.Params().Name)
	require.Equal(t, 256, c.Params().BitSize)
}

func TestCurveScalarBaseMultMatchesGenerator(t *testing.T) {
	c := S256()
	one := big.NewInt(1)
	x, y := c.ScalarBaseMult(one.Bytes())

	gxN, gyN := GeneratorX, GeneratorY
	gxN.normalize()
	gyN.normalize()
	gxb := gxN.Bytes()
	gyb := gyN.Bytes()
	require.Equal(t, new(big.Int).SetBytes(gxb[:]), x)
	require.Equal(t, new(big.Int).SetBytes(gyb[:]), y)
}

func TestCurveIsOnCurve(t *testing.T) {
	c := S256()
	gxN, gyN := GeneratorX, GeneratorY
	gxN.normalize()
	gyN.normalize()
	gxb := gxN.Bytes()
	gyb := gyN.Bytes()
	x := new(big.Int).SetBytes(gxb[:])
	y := new(big.Int).SetBytes(gyb[:])
	require.True(t, c.IsOnCurve(x, y))
	require.False(t, c.IsOnCurve(big.NewInt(1), big.NewInt(2)))
}

func TestCurveAddMatchesDouble(t *testing.T) {
	c := S256()
	gxN, gyN := GeneratorX, GeneratorY
	gxN.normalize()
	gyN.normalize()
	gxb := gxN.Bytes()
	gyb := gyN.Bytes()
	x := new(big.Int).SetBytes(gxb[:])
	y := new(big.Int).SetBytes(gyb[:])

	x1, y1 := c.Add(x, y, x, y)
	x2, y2 := c.Double(x, y)
	require.Equal(t, x2, x1)
	require.Equal(t, y2, y1)
}

func TestCurveScalarMultByTwoMatchesDouble(t *testing.T) {
	c := S256()
	gxN, gyN := GeneratorX, GeneratorY
	gxN.normalize()
	gyN.normalize()
	gxb := gxN.Bytes()
	gyb := gyN.Bytes()
	x := new(big.Int).SetBytes(gxb[:])
	y := new(big.Int).SetBytes(gyb[:])

	x1, y1 := c.ScalarMult(x, y, big.NewInt(2).Bytes())
	x2, y2 := c.Double(x, y)
	require.Equal(t, x2, x1)
	require.Equal(t, y2, y1)
}

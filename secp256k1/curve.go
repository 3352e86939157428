package secp256k1

import (
	"crypto/elliptic"
	"math/big"
	"sync"
)

// Curve adapts this package's native field/point arithmetic to the
// standard library's crypto/elliptic.Curve interface, grounded in
// ModChain-secp256k1/ellipticadaptor.go's KoblitzCurve. Most of this
// module's own code never goes through big.Int; this adaptor exists only
// for interop with code (e.g. crypto/ecdsa-based callers, or third-party
// libraries expecting elliptic.Curve) that has no other way to address the
// curve.
type Curve struct {
	params *elliptic.CurveParams
}

var (
	curveOnce   sync.Once
	curveParams elliptic.CurveParams
	curveInst   Curve
)

func fromHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: invalid hex constant: " + s)
	}
	return n
}

func initCurve() {
	curveParams = elliptic.CurveParams{
		P:       fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
		N:       fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		B:       fromHex("0000000000000000000000000000000000000000000000000000000000000007"),
		Gx:      fromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		Gy:      fromHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
		BitSize: 256,
		Name:    "secp256k1",
	}
	curveInst = Curve{params: &curveParams}
}

// S256 returns the shared Curve value for secp256k1, matching the
// conventional name crypto/elliptic callers expect (after btcec's S256()).
func S256() *Curve {
	curveOnce.Do(initCurve)
	return &curveInst
}

// Params returns the curve's domain parameters.
func (c *Curve) Params() *elliptic.CurveParams { return c.params }

func bigToAffine(x, y *big.Int) *Affine {
	var xf, yf FieldElement
	xb, yb := make([]byte, 32), make([]byte, 32)
	x.FillBytes(xb)
	y.FillBytes(yb)
	_ = xf.SetBytes(xb)
	_ = yf.SetBytes(yb)
	return &Affine{x: xf, y: yf}
}

func affineToBig(p *Affine) (*big.Int, *big.Int) {
	if p.infinity {
		return new(big.Int), new(big.Int)
	}
	xN, yN := p.x, p.y
	xN.normalize()
	yN.normalize()
	xb := xN.Bytes()
	yb := yN.Bytes()
	return new(big.Int).SetBytes(xb[:]), new(big.Int).SetBytes(yb[:])
}

// IsOnCurve reports whether (x, y) satisfies the curve equation.
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	return bigToAffine(x, y).IsOnCurve()
}

// Add returns (x1,y1) + (x2,y2).
func (c *Curve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	if x1.Sign() == 0 && y1.Sign() == 0 {
		return x2, y2
	}
	if x2.Sign() == 0 && y2.Sign() == 0 {
		return x1, y1
	}
	var p1, p2, sum Jacobian
	p1.SetAffine(bigToAffine(x1, y1))
	p2.SetAffine(bigToAffine(x2, y2))
	sum.AddVar(&p1, &p2)
	var out Affine
	out.ToAffine(&sum)
	return affineToBig(&out)
}

// Double returns 2*(x1,y1).
func (c *Curve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	var p, dbl Jacobian
	p.SetAffine(bigToAffine(x1, y1))
	dbl.Double(&p)
	var out Affine
	out.ToAffine(&dbl)
	return affineToBig(&out)
}

func scalarFromBytesReduced(k []byte) *Scalar {
	var s Scalar
	s.FromBytesReduced(k)
	return &s
}

// ScalarMult returns k*(Bx, By), k given as a big-endian byte slice reduced
// mod the curve order.
func (c *Curve) ScalarMult(Bx, By *big.Int, k []byte) (*big.Int, *big.Int) {
	s := scalarFromBytesReduced(k)
	p := bigToAffine(Bx, By)
	var result Jacobian
	Multiply(&result, s, p)
	var out Affine
	out.ToAffine(&result)
	return affineToBig(&out)
}

// ScalarBaseMult returns k*G, k given as a big-endian byte slice reduced mod
// the curve order.
func (c *Curve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	s := scalarFromBytesReduced(k)
	var result Jacobian
	MultiplyGenerator(&result, s)
	var out Affine
	out.ToAffine(&result)
	return affineToBig(&out)
}

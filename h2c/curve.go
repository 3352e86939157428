package h2c

import "github.com/holiman/uint256"

// AffinePoint is a point on a WeierstrassParams curve, or the point at
// infinity (Infinity == true, in which case X and Y are ignored).
type AffinePoint struct {
	X, Y     *uint256.Int
	Infinity bool
}

func identity() AffinePoint { return AffinePoint{Infinity: true} }

// Add implements short-Weierstrass affine point addition, including the
// doubling and identity special cases.
func (c WeierstrassParams) Add(p1, p2 AffinePoint) AffinePoint {
	p := c.P
	if p1.Infinity {
		return p2
	}
	if p2.Infinity {
		return p1
	}
	if p1.X.Eq(p2.X) {
		if p1.Y.Eq(p2.Y) && !p1.Y.IsZero() {
			return c.double(p1)
		}
		// p1.X == p2.X with differing (or zero) Y: p2 == -p1.
		return identity()
	}

	num := subMod(p2.Y, p1.Y, p)
	den := subMod(p2.X, p1.X, p)
	lambda := new(uint256.Int).MulMod(num, modInverse(den, p), p)
	return c.combine(lambda, p1, p2)
}

func (c WeierstrassParams) double(p1 AffinePoint) AffinePoint {
	p := c.P
	x1sq := new(uint256.Int).MulMod(p1.X, p1.X, p)
	num := new(uint256.Int).MulMod(uint256.NewInt(3), x1sq, p)
	num = new(uint256.Int).AddMod(num, c.A, p)
	den := new(uint256.Int).MulMod(uint256.NewInt(2), p1.Y, p)
	lambda := new(uint256.Int).MulMod(num, modInverse(den, p), p)
	return c.combine(lambda, p1, p1)
}

func (c WeierstrassParams) combine(lambda *uint256.Int, p1, p2 AffinePoint) AffinePoint {
	p := c.P
	lambdaSq := new(uint256.Int).MulMod(lambda, lambda, p)
	x3 := subMod(subMod(lambdaSq, p1.X, p), p2.X, p)
	y3 := new(uint256.Int).MulMod(lambda, subMod(p1.X, x3, p), p)
	y3 = subMod(y3, p1.Y, p)
	return AffinePoint{X: x3, Y: y3}
}

// ScalarMult returns k*p via double-and-add over k's bits from the least
// significant up; it branches on each bit and stops after the top set bit,
// so its running time depends on k. Used to clear a curve's cofactor after
// hash_to_curve's point addition.
func (c WeierstrassParams) ScalarMult(k *uint256.Int, p1 AffinePoint) AffinePoint {
	result := identity()
	addend := p1
	e := new(uint256.Int).Set(k)
	one := uint256.NewInt(1)
	for !e.IsZero() {
		var lsb uint256.Int
		lsb.And(e, one)
		if !lsb.IsZero() {
			result = c.Add(result, addend)
		}
		addend = c.double(addend)
		e.Rsh(e, 1)
	}
	return result
}

// HashToCurve implements the random-oracle hash_to_curve construction (RFC
// 9380 section 3): hash msg to two field elements under dst, map each with
// mapToCurve, add the results, and clear the cofactor with ScalarMult. For
// curves with cofactor 1 (secp256k1, P-256) the caller passes a cofactor
// of 1.
func HashToCurve(c WeierstrassParams, cofactor *uint256.Int, mapToCurve func(WeierstrassParams, *uint256.Int) (x, y *uint256.Int), dst, msg []byte) (AffinePoint, error) {
	us, err := HashToFieldSHA256(dst, msg, 2, 48, c.P)
	if err != nil {
		return AffinePoint{}, err
	}
	x0, y0 := mapToCurve(c, us[0])
	x1, y1 := mapToCurve(c, us[1])
	sum := c.Add(AffinePoint{X: x0, Y: y0}, AffinePoint{X: x1, Y: y1})
	return c.ScalarMult(cofactor, sum), nil
}

// EncodeToCurve implements the non-uniform encode_to_curve construction
// (RFC 9380 section 3): hash msg to a single field element, map it, and
// clear the cofactor. Faster than HashToCurve but not indifferentiable
// from a random oracle.
func EncodeToCurve(c WeierstrassParams, cofactor *uint256.Int, mapToCurve func(WeierstrassParams, *uint256.Int) (x, y *uint256.Int), dst, msg []byte) (AffinePoint, error) {
	us, err := HashToFieldSHA256(dst, msg, 1, 48, c.P)
	if err != nil {
		return AffinePoint{}, err
	}
	x, y := mapToCurve(c, us[0])
	return c.ScalarMult(cofactor, AffinePoint{X: x, Y: y}), nil
}

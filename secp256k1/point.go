package secp256k1

import "curvekit.dev/ecc/core"

// curveB is the secp256k1 curve parameter b in y^2 = x^3 + 7.
var curveB = FieldElement{n: [5]uint64{7, 0, 0, 0, 0}, magnitude: 1, normalized: true}

// Affine is a point on secp256k1 in affine (x, y) coordinates.
type Affine struct {
	x, y     FieldElement
	infinity bool
}

// Jacobian is a point on secp256k1 in Jacobian projective coordinates,
// where the affine point is (x/z^2, y/z^3).
type Jacobian struct {
	x, y, z  FieldElement
	infinity bool
}

var _ core.PointAffine = (*Affine)(nil)

// Generator and its coordinates, per the secp256k1 domain parameters.
var (
	GeneratorX FieldElement
	GeneratorY FieldElement
	Generator  Affine
)

func init() {
	gx := [32]byte{
		0x79, 0xBE, 0x66, 0x7E, 0xF9, 0xDC, 0xBB, 0xAC, 0x55, 0xA0, 0x62, 0x95, 0xCE, 0x87, 0x0B, 0x07,
		0x02, 0x9B, 0xFC, 0xDB, 0x2D, 0xCE, 0x28, 0xD9, 0x59, 0xF2, 0x81, 0x5B, 0x16, 0xF8, 0x17, 0x98,
	}
	gy := [32]byte{
		0x48, 0x3A, 0xDA, 0x77, 0x26, 0xA3, 0xC4, 0x65, 0x5D, 0xA4, 0xFB, 0xFC, 0x0E, 0x11, 0x08, 0xA8,
		0xFD, 0x17, 0xB4, 0x48, 0xA6, 0x85, 0x54, 0x19, 0x9C, 0x47, 0xD0, 0x8F, 0xFB, 0x10, 0xD4, 0xB8,
	}
	_ = GeneratorX.SetBytes(gx[:])
	_ = GeneratorY.SetBytes(gy[:])
	Generator = Affine{x: GeneratorX, y: GeneratorY}
}

// NewAffine returns the point at infinity in affine coordinates.
func NewAffine() *Affine {
	return &Affine{infinity: true}
}

// NewJacobian returns the point at infinity in Jacobian coordinates.
func NewJacobian() *Jacobian {
	return &Jacobian{y: FieldOne, infinity: true}
}

// SetXY sets r to the point (x, y), assumed already on the curve.
func (r *Affine) SetXY(x, y *FieldElement) {
	r.x, r.y, r.infinity = *x, *y, false
}

// SetXOdd sets r to the point with the given x coordinate and the given
// oddness for y, reporting false if x is not on the curve ("lift_x").
func (r *Affine) SetXOdd(x *FieldElement, odd bool) bool {
	var x2, x3, y2 FieldElement
	x2.Sqr(x)
	x3.Mul(&x2, x)
	y2 = x3
	y2.Add(&curveB)

	var y FieldElement
	if !y.Sqrt(&y2) {
		return false
	}
	y.normalize()
	if y.IsOdd() != odd {
		y.Negate(&y, 1)
		y.normalize()
	}
	r.SetXY(x, &y)
	return true
}

// IsIdentity reports whether r is the point at infinity.
func (r *Affine) IsIdentity() bool { return r.infinity }

// SetInfinity sets r to the point at infinity.
func (r *Affine) SetInfinity() { *r = Affine{infinity: true} }

// IsOnCurve reports whether r satisfies y^2 = x^3 + 7.
func (r *Affine) IsOnCurve() bool {
	if r.infinity {
		return true
	}
	var lhs, rhs, x2, x3, xN, yN FieldElement
	xN, yN = r.x, r.y
	xN.normalize()
	yN.normalize()
	lhs.Sqr(&yN)
	x2.Sqr(&xN)
	x3.Mul(&x2, &xN)
	rhs = x3
	rhs.Add(&curveB)
	lhs.normalize()
	rhs.normalize()
	return lhs.Equal(&rhs)
}

// Negate sets r to -a.
func (r *Affine) Negate(a *Affine) {
	if a.infinity {
		r.SetInfinity()
		return
	}
	r.x = a.x
	r.y.Negate(&a.y, a.y.magnitude)
	r.infinity = false
}

// Equal reports whether r and a represent the same point. Not constant time
// (coordinates are public once a point is in affine form).
func (r *Affine) Equal(a *Affine) bool {
	if r.infinity && a.infinity {
		return true
	}
	if r.infinity || a.infinity {
		return false
	}
	rN, aN := *r, *a
	rN.x.normalize()
	rN.y.normalize()
	aN.x.normalize()
	aN.y.normalize()
	return rN.x.Equal(&aN.x) && rN.y.Equal(&aN.y)
}

// Bytes returns the uncompressed 64-byte (x || y) encoding of r. The point
// at infinity encodes as 64 zero bytes.
func (r *Affine) Bytes() [64]byte {
	var out [64]byte
	if r.infinity {
		return out
	}
	xN, yN := r.x, r.y
	xN.normalize()
	yN.normalize()
	xb := xN.Bytes()
	yb := yN.Bytes()
	copy(out[:32], xb[:])
	copy(out[32:], yb[:])
	return out
}

// SetInfinity sets r to the point at infinity in Jacobian coordinates.
func (r *Jacobian) SetInfinity() { *r = Jacobian{y: FieldOne, infinity: true} }

// IsIdentity reports whether r is the point at infinity.
func (r *Jacobian) IsIdentity() bool { return r.infinity }

// SetAffine sets r from the affine point a.
func (r *Jacobian) SetAffine(a *Affine) {
	if a.infinity {
		r.SetInfinity()
		return
	}
	r.x, r.y, r.z, r.infinity = a.x, a.y, FieldOne, false
}

// ToAffine sets r to the affine representation of a: a single field
// inversion of z, then the standard z^-2/z^-3 rescale. Unlike setGEJ in the
// upstream secp256k1 C library (which is explicitly "_var", i.e. variable
// time), this uses the constant-time Invert.
func (r *Affine) ToAffine(a *Jacobian) {
	if a.infinity {
		r.SetInfinity()
		return
	}
	var zInv, zInv2, zInv3 FieldElement
	zInv.Invert(&a.z)
	zInv2.Sqr(&zInv)
	zInv3.Mul(&zInv, &zInv2)

	var x, y FieldElement
	x.Mul(&a.x, &zInv2)
	y.Mul(&a.y, &zInv3)
	r.x, r.y, r.infinity = x, y, false
}

// Negate sets r to -a.
func (r *Jacobian) Negate(a *Jacobian) {
	if a.infinity {
		r.SetInfinity()
		return
	}
	r.x = a.x
	r.y.Negate(&a.y, a.y.magnitude)
	r.z = a.z
	r.infinity = false
}

// Double sets r = 2a, using the standard a=0 Jacobian doubling formula
// (secp256k1's b-curve doubling, ported from the reference libsecp256k1
// algorithm).
func (r *Jacobian) Double(a *Jacobian) {
	var l, s, t FieldElement
	r.infinity = a.infinity

	r.z.Mul(&a.z, &a.y)
	s.Sqr(&a.y)
	l.Sqr(&a.x)
	l.MulInt(3)
	l.Half(&l)
	t.Negate(&s, 1)
	t.Mul(&t, &a.x)
	r.x.Sqr(&l)
	r.x.Add(&t)
	r.x.Add(&t)
	s.Sqr(&s)
	t.Add(&r.x)
	r.y.Mul(&t, &l)
	r.y.Add(&s)
	r.y.Negate(&r.y, 2)
}

// AddVar sets r = a + b, in variable time (branches on whether the inputs
// coincide or are inverses, which is not secret-dependent for the call
// sites that use it: batch verification and public-key recovery).
func (r *Jacobian) AddVar(a, b *Jacobian) {
	if a.infinity {
		*r = *b
		return
	}
	if b.infinity {
		*r = *a
		return
	}

	var z22, z12, u1, u2, s1, s2, h, i, h2, h3, t FieldElement
	z22.Sqr(&b.z)
	z12.Sqr(&a.z)
	u1.Mul(&a.x, &z22)
	u2.Mul(&b.x, &z12)
	s1.Mul(&a.y, &z22)
	s1.Mul(&s1, &b.z)
	s2.Mul(&b.y, &z12)
	s2.Mul(&s2, &a.z)

	h.Negate(&u1, 1)
	h.Add(&u2)
	i.Negate(&s2, 1)
	i.Add(&s1)

	if h.normalizesToZeroVar() {
		if i.normalizesToZeroVar() {
			r.Double(a)
			return
		}
		r.SetInfinity()
		return
	}

	r.infinity = false
	t.Mul(&h, &b.z)
	r.z.Mul(&a.z, &t)
	h2.Sqr(&h)
	h2.Negate(&h2, 1)
	h3.Mul(&h2, &h)
	t.Mul(&u1, &h2)
	r.x.Sqr(&i)
	r.x.Add(&h3)
	r.x.Add(&t)
	r.x.Add(&t)
	t.Add(&r.x)
	r.y.Mul(&t, &i)
	h3.Mul(&h3, &s1)
	r.y.Add(&h3)
}

// AddAffineVar sets r = a + b where b is affine, in variable time.
func (r *Jacobian) AddAffineVar(a *Jacobian, b *Affine) {
	if a.infinity {
		r.SetAffine(b)
		return
	}
	if b.infinity {
		*r = *a
		return
	}

	var z12, u1, u2, s1, s2, h, i, h2, h3, t FieldElement
	z12.Sqr(&a.z)
	u1 = a.x
	u2.Mul(&b.x, &z12)
	s1 = a.y
	s2.Mul(&b.y, &z12)
	s2.Mul(&s2, &a.z)

	h.Negate(&u1, a.x.magnitude)
	h.Add(&u2)
	i.Negate(&s2, 1)
	i.Add(&s1)

	if h.normalizesToZeroVar() {
		if i.normalizesToZeroVar() {
			r.Double(a)
			return
		}
		r.SetInfinity()
		return
	}

	r.infinity = false
	r.z.Mul(&a.z, &h)
	h2.Sqr(&h)
	h2.Negate(&h2, 1)
	h3.Mul(&h2, &h)
	t.Mul(&u1, &h2)
	r.x.Sqr(&i)
	r.x.Add(&h3)
	r.x.Add(&t)
	r.x.Add(&t)
	t.Add(&r.x)
	r.y.Mul(&t, &i)
	h3.Mul(&h3, &s1)
	r.y.Add(&h3)
}

// Clear zeroizes r's coordinates.
func (r *Jacobian) Clear() {
	r.x.Clear()
	r.y.Clear()
	r.z.Clear()
	r.infinity = true
}

// Clear zeroizes r's coordinates.
func (r *Affine) Clear() {
	r.x.Clear()
	r.y.Clear()
	r.infinity = true
}

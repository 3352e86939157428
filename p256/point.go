package p256

import (
	"crypto/ecdh"
	"crypto/elliptic"
	"math/big"

	"curvekit.dev/ecc/core"
)

// Affine is a point on P-256 in affine (X, Y) coordinates, represented with
// math/big since crypto/elliptic's API is itself big.Int-shaped.
type Affine struct {
	X, Y     *big.Int
	infinity bool
}

var _ core.PointAffine = (*Affine)(nil)

// Generator is the P-256 base point.
var Generator Affine

func init() {
	params := elliptic.P256().Params()
	Generator = Affine{X: params.Gx, Y: params.Gy}
}

// NewAffine returns the point at infinity.
func NewAffine() *Affine {
	return &Affine{X: new(big.Int), Y: new(big.Int), infinity: true}
}

// IsIdentity reports whether p is the point at infinity.
func (p *Affine) IsIdentity() bool { return p.infinity }

// IsOnCurve reports whether p satisfies the P-256 curve equation.
func (p *Affine) IsOnCurve() bool {
	if p.infinity {
		return true
	}
	return elliptic.P256().IsOnCurve(p.X, p.Y)
}

// Equal reports whether p and q represent the same point.
func (p *Affine) Equal(q *Affine) bool {
	if p.infinity && q.infinity {
		return true
	}
	if p.infinity || q.infinity {
		return false
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Add sets r = p + q, via crypto/elliptic's constant-time-ish affine add
// (kept for interop only; scalar multiplication below goes through
// crypto/ecdh, the constant-time path the standard library recommends).
func Add(p, q *Affine) *Affine {
	if p.infinity {
		return q
	}
	if q.infinity {
		return p
	}
	x, y := elliptic.P256().Add(p.X, p.Y, q.X, q.Y)
	return &Affine{X: x, Y: y}
}

// MultiplyGenerator sets r = k*G using crypto/ecdh's constant-time scalar
// multiplication.
func MultiplyGenerator(k *Scalar) (*Affine, error) {
	kb := k.Bytes()
	priv, err := ecdh.P256().NewPrivateKey(kb[:])
	if err != nil {
		return nil, core.ErrInvalidPrivateKey
	}
	return decodeUncompressedECDH(priv.PublicKey().Bytes())
}

// Multiply sets r = k*p using crypto/elliptic's scalar multiplication. p is
// not the fixed generator, so this cannot go through crypto/ecdh (whose API
// only exposes base-point and ECDH-peer multiplication); elliptic.ScalarMult
// is still constant time in the standard library's P-256 implementation.
func Multiply(k *Scalar, p *Affine) *Affine {
	if p.infinity || k.IsZero() {
		return NewAffine()
	}
	kb := k.Bytes()
	x, y := elliptic.P256().ScalarMult(p.X, p.Y, kb[:])
	if x.Sign() == 0 && y.Sign() == 0 {
		return NewAffine()
	}
	return &Affine{X: x, Y: y}
}

func decodeUncompressedECDH(b []byte) (*Affine, error) {
	x, y := elliptic.Unmarshal(elliptic.P256(), b)
	if x == nil {
		return nil, core.ErrInvalidEncoding
	}
	return &Affine{X: x, Y: y}, nil
}

// Bytes returns the uncompressed SEC1 encoding (0x04 || X || Y).
func (p *Affine) Bytes() []byte {
	if p.infinity {
		return []byte{0x00}
	}
	return elliptic.Marshal(elliptic.P256(), p.X, p.Y)
}

// EncodeCompressed returns the compressed SEC1 encoding.
func EncodeCompressed(p *Affine) []byte {
	if p.infinity {
		return []byte{0x00}
	}
	return elliptic.MarshalCompressed(elliptic.P256(), p.X, p.Y)
}

// DecodePoint parses a SEC1-encoded point (compressed, uncompressed, or the
// single-byte infinity encoding), validating that it lies on the curve.
func DecodePoint(b []byte) (*Affine, error) {
	if len(b) == 1 && b[0] == 0x00 {
		return NewAffine(), nil
	}
	curve := elliptic.P256()
	var x, y *big.Int
	switch {
	case len(b) == 33:
		x, y = elliptic.UnmarshalCompressed(curve, b)
	case len(b) == 65:
		x, y = elliptic.Unmarshal(curve, b)
	default:
		return nil, core.ErrInvalidEncoding
	}
	if x == nil {
		return nil, core.ErrPointNotOnCurve
	}
	return &Affine{X: x, Y: y}, nil
}

package p256

import (
	"crypto/elliptic"
	"math/big"

	"curvekit.dev/ecc/core"
)

// Scalar is a value in F_n, n the order of the P-256 group, backed by
// math/big scoped to the curve order.
type Scalar struct {
	v big.Int
}

func order() *big.Int {
	return elliptic.P256().Params().N
}

// ScalarZero and ScalarOne are the additive/multiplicative identities.
var (
	ScalarZero = Scalar{}
	ScalarOne  = Scalar{v: *big.NewInt(1)}
)

// SetBytes sets r to the big-endian 32-byte value b reduced mod n,
// reporting whether b was already in [0, n).
func (r *Scalar) SetBytes(b []byte) (inRange bool, err error) {
	if len(b) != 32 {
		return false, core.ErrInvalidEncoding
	}
	v := new(big.Int).SetBytes(b)
	inRange = v.Cmp(order()) < 0
	if !inRange {
		v.Mod(v, order())
	}
	r.v = *v
	return inRange, nil
}

// FromBytesReduced sets r to b interpreted as a big-endian integer, reduced
// mod n unconditionally. Used for hash outputs wider than or not guaranteed
// to fall inside [0, n).
func (r *Scalar) FromBytesReduced(b []byte) {
	v := new(big.Int).SetBytes(b)
	v.Mod(v, order())
	r.v = *v
}

// Bytes returns the canonical big-endian 32-byte encoding of r.
func (r *Scalar) Bytes() [32]byte {
	var out [32]byte
	r.v.FillBytes(out[:])
	return out
}

// IsZero reports whether r is zero.
func (r *Scalar) IsZero() bool { return r.v.Sign() == 0 }

// IsOdd reports whether r is odd.
func (r *Scalar) IsOdd() bool { return r.v.Bit(0) == 1 }

// Equal reports whether r == a.
func (r *Scalar) Equal(a *Scalar) bool { return r.v.Cmp(&a.v) == 0 }

// Less reports whether r < a.
func (r *Scalar) Less(a *Scalar) bool { return r.v.Cmp(&a.v) < 0 }

// Clear zeroizes r.
func (r *Scalar) Clear() { r.v.SetInt64(0) }

// Add sets r = a + b mod n.
func (r *Scalar) Add(a, b *Scalar) {
	v := new(big.Int).Add(&a.v, &b.v)
	v.Mod(v, order())
	r.v = *v
}

// Sub sets r = a - b mod n.
func (r *Scalar) Sub(a, b *Scalar) {
	v := new(big.Int).Sub(&a.v, &b.v)
	v.Mod(v, order())
	r.v = *v
}

// Negate sets r = -a mod n (0 maps to 0).
func (r *Scalar) Negate(a *Scalar) {
	v := new(big.Int).Neg(&a.v)
	v.Mod(v, order())
	r.v = *v
}

// Mul sets r = a * b mod n.
func (r *Scalar) Mul(a, b *Scalar) {
	v := new(big.Int).Mul(&a.v, &b.v)
	v.Mod(v, order())
	r.v = *v
}

// Invert sets r = a^-1 mod n.
func (r *Scalar) Invert(a *Scalar) {
	v := new(big.Int).ModInverse(&a.v, order())
	if v == nil {
		r.v.SetInt64(0)
		return
	}
	r.v = *v
}

// Random sets r to a uniformly random scalar read from fill, via rejection
// sampling against n.
func (r *Scalar) Random(fill func([]byte)) {
	var b [32]byte
	for {
		fill(b[:])
		if ok, _ := r.SetBytes(b[:]); ok && !r.IsZero() {
			return
		}
	}
}

// halfOrder returns floor(n/2), used by ECDSA low-S normalization.
func halfOrder() *big.Int {
	return new(big.Int).Rsh(order(), 1)
}
